// Command tutorial17 moves the shader inputs into a persistently mapped
// uniform buffer and lights the pyramid with an adjustable ambient term.
package main

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
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
	cfg := config.Default("Tutorial17")
	cfg.Scene.AmbientIntensity = 0.5
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	if err := run(cfg); err != nil {
		logx.Fatal("tutorial17", err)
	}
}

func run(cfg config.Config) error {
	if err := gltut.CheckBlocks(); err != nil {
		return err
	}

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
	if prog.UniformBlock("Data") == gl.INVALID_INDEX {
		return errors.New("program has no Data block")
	}

	vbo := gpu.NewBuffer(gltut.TexturedPyramid())
	defer vbo.Delete()
	ibo := gpu.NewBuffer(gltut.PyramidIndices[:])
	defer ibo.Delete()

	ubo := gpu.NewMappedBuffer(int(unsafe.Sizeof(gltut.AmbientBlock{})))
	defer ubo.Delete()
	data := gpu.Block[gltut.AmbientBlock](ubo, 0)

	vao := gpu.NewVertexArray(
		gpu.Attrib{Index: 0, Size: 3},
		gpu.Attrib{Index: 1, Size: 2, Offset: uint32(unsafe.Offsetof(gltut.TexVertex{}.TexCoord))},
	)
	defer vao.Delete()
	vao.SetElementBuffer(ibo)

	tex, err := gpu.LoadTexture(gl.TEXTURE_2D, cfg.Texture)
	if err != nil {
		return err
	}
	defer tex.Delete()

	cam := camera.New()
	cam.Sensitivity = cfg.Scene.MouseSensitivity
	ambient := window.Ambient{Intensity: cfg.Scene.AmbientIntensity, Step: cfg.Scene.AmbientStep}
	win.OnKey(func(key glfw.Key, action glfw.Action) {
		cam.OnKeyboard(key, action)
		ambient.OnKey(key, action)
	})
	win.OnCursor(cam.OnMouse)

	uImage := prog.Uniform("uImage")
	stride := int(unsafe.Sizeof(gltut.TexVertex{}))
	proj := gltut.Perspective(cfg.Window.Width, cfg.Window.Height, 1)

	gl.ClearColor(0, 0, 0, 0)
	gl.Enable(gl.DEPTH_TEST)

	win.Run(func(t float32) {
		data.MVP = proj.Mul4(cam.ViewMatrix()).Mul4(gltut.Spin(t))
		data.Color = mgl32.Vec4{1, 1, 1, 1}
		data.AmbientIntensity = ambient.Intensity

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		prog.Use()
		gl.Uniform1i(uImage, 0)
		ubo.BindBase(0)
		tex.Bind(0)

		vao.Bind(vbo, stride)
		gl.DrawElements(gl.TRIANGLES, int32(len(gltut.PyramidIndices)), gl.UNSIGNED_SHORT, nil)

		cam.Update(cfg.Scene.CameraStep)
	})
	return nil
}
