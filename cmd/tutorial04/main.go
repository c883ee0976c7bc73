// Command tutorial04 draws a red triangle through a GLSL 110 program.
package main

import (
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"
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
	cfg := config.Legacy("Tutorial04")
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	if err := run(cfg); err != nil {
		logx.Fatal("tutorial04", err)
	}
}

func run(cfg config.Config) error {
	win, err := window.Open(cfg.Window, gl.Init)
	if err != nil {
		return err
	}
	defer win.Destroy()

	prog, err := compat.BuildShader(vertShader, fragShader)
	if err != nil {
		return errors.Wrap(err, "build shader")
	}
	defer gl.DeleteProgram(prog)

	loc := gl.GetAttribLocation(prog, gl.Str("position\x00"))
	if loc < 0 {
		return errors.New("shader has no position attribute")
	}
	position := uint32(loc)

	vbo := compat.NewArrayBuffer(gltut.Triangle[:])
	defer gl.DeleteBuffers(1, &vbo)

	gl.ClearColor(0, 0, 0, 0)

	win.Run(func(t float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(prog)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.EnableVertexAttribArray(position)
		gl.VertexAttribPointer(position, 3, gl.FLOAT, false, 0, nil)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
	})
	return nil
}
