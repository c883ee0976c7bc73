// Command tutorial03 draws a white triangle from a vertex buffer using the
// fixed function pipeline.
package main

import (
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
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
	cfg := config.Legacy("Tutorial03")
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	win, err := window.Open(cfg.Window, gl.Init)
	if err != nil {
		logx.Fatal("tutorial03", err)
	}
	defer win.Destroy()

	vbo := compat.NewArrayBuffer(gltut.Triangle[:])
	defer gl.DeleteBuffers(1, &vbo)

	gl.ClearColor(0, 0, 0, 0)

	win.Run(func(t float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
	})
}
