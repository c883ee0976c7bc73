// Command tutorial07 rotates a triangle about the z axis, uploading its
// geometry with direct state access.
package main

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/vktec/gltut"
	"github.com/vktec/gltut/config"
	"github.com/vktec/gltut/gpu"
	"github.com/vktec/gltut/logx"
	"github.com/vktec/gltut/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default("Tutorial07")
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	if err := run(cfg); err != nil {
		logx.Fatal("tutorial07", err)
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

	vbo := gpu.NewBuffer(gltut.Triangle[:])
	defer vbo.Delete()

	vao := gpu.NewVertexArray(gpu.Attrib{Index: 0, Size: 3})
	defer vao.Delete()

	uModel := prog.Uniform("uModel")
	stride := int(unsafe.Sizeof(mgl32.Vec3{}))

	gl.ClearColor(0, 0, 0, 0)

	win.Run(func(t float32) {
		model := mgl32.HomogRotate3DZ(t)

		gl.Clear(gl.COLOR_BUFFER_BIT)

		prog.Use()
		gl.UniformMatrix4fv(uModel, 1, false, &model[0])

		vao.Bind(vbo, stride)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
	})
	return nil
}
