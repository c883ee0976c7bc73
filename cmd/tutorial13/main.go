// Command tutorial13 draws a spinning indexed pyramid coloured by position
// through a fixed camera.
package main

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/vktec/gltut"
	"github.com/vktec/gltut/camera"
	"github.com/vktec/gltut/config"
	"github.com/vktec/gltut/gpu"
	"github.com/vktec/gltut/logx"
	"github.com/vktec/gltut/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default("Tutorial13")
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	if err := run(cfg); err != nil {
		logx.Fatal("tutorial13", err)
	}
}

func run(cfg config.Config) error {
	win, err := window.Open(cfg.Window, gpu.Init)
	if err != nil {
		return err
	}
	defer win.Destroy()
	gpu.EnableDebugOutput()

	prog, err := gpu.BuildShader(vertShader, fragShader)
	if err != nil {
		return errors.Wrap(err, "build shader")
	}
	defer prog.Delete()

	vbo := gpu.NewBuffer(gltut.PyramidPositions())
	defer vbo.Delete()
	ibo := gpu.NewBuffer(gltut.PyramidIndices[:])
	defer ibo.Delete()

	vao := gpu.NewVertexArray(gpu.Attrib{Index: 0, Size: 3})
	defer vao.Delete()
	vao.SetElementBuffer(ibo)

	uMvp := prog.Uniform("uMvp")
	stride := int(unsafe.Sizeof(mgl32.Vec3{}))
	proj := gltut.Perspective(cfg.Window.Width, cfg.Window.Height, 1)
	view := camera.New().ViewMatrix()

	gl.ClearColor(0, 0, 0, 0)

	win.Run(func(t float32) {
		mvp := proj.Mul4(view).Mul4(gltut.Spin(t))

		gl.Clear(gl.COLOR_BUFFER_BIT)

		prog.Use()
		gl.UniformMatrix4fv(uMvp, 1, false, &mvp[0])

		vao.Bind(vbo, stride)
		gl.DrawElements(gl.TRIANGLES, int32(len(gltut.PyramidIndices)), gl.UNSIGNED_SHORT, nil)
	})
	return nil
}
