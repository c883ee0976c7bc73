// Command tutorial02 draws a single point from a vertex buffer on a GL 2.0
// context.
package main

import (
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/gltut"
	"github.com/vktec/gltut/config"
	"github.com/vktec/gltut/gpu/compat"
	"github.com/vktec/gltut/logx"
	"github.com/vktec/gltut/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := config.Legacy("Tutorial02")
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	win, err := window.Open(cfg.Window, gl.Init)
	if err != nil {
		logx.Fatal("tutorial02", err)
	}
	defer win.Destroy()

	vbo := compat.NewArrayBuffer([]mgl32.Vec3{gltut.Point})
	defer gl.DeleteBuffers(1, &vbo)

	gl.ClearColor(0, 0, 0, 0)
	gl.PointSize(4)

	win.Run(func(t float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)
		gl.DrawArrays(gl.POINTS, 0, 1)
	})
}
