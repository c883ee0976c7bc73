// Command tutorial18 adds a directional light with a diffuse term, using
// vertex normals averaged from the pyramid's faces.
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
	cfg := config.Default("Tutorial18")
	cfg.Scene.DiffuseIntensity = 0.75
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	if err := run(cfg); err != nil {
		logx.Fatal("tutorial18", err)
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

	vbo := gpu.NewBuffer(gltut.LitPyramid())
	defer vbo.Delete()
	ibo := gpu.NewBuffer(gltut.PyramidIndices[:])
	defer ibo.Delete()

	ubo := gpu.NewMappedBuffer(int(unsafe.Sizeof(gltut.DirectionalBlock{})))
	defer ubo.Delete()
	data := gpu.Block[gltut.DirectionalBlock](ubo, 0)

	vao := gpu.NewVertexArray(
		gpu.Attrib{Index: 0, Size: 3},
		gpu.Attrib{Index: 1, Size: 2, Offset: uint32(unsafe.Offsetof(gltut.LitVertex{}.TexCoord))},
		gpu.Attrib{Index: 2, Size: 3, Offset: uint32(unsafe.Offsetof(gltut.LitVertex{}.Normal))},
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
	stride := int(unsafe.Sizeof(gltut.LitVertex{}))
	proj := gltut.Perspective(cfg.Window.Width, cfg.Window.Height, 1)

	gl.ClearColor(0, 0, 0, 0)
	gl.Enable(gl.DEPTH_TEST)

	win.Run(func(t float32) {
		tr := gltut.NewTransforms(proj, cam.ViewMatrix(), gltut.Spin(t))
		data.MVP = tr.MVP
		// Normals are transformed by the block's world matrix.
		data.World = tr.Normal
		data.Color = mgl32.Vec3{1, 1, 1}
		data.AmbientIntensity = ambient.Intensity
		data.Direction = mgl32.Vec3{1, 0, 0}
		data.DiffuseIntensity = cfg.Scene.DiffuseIntensity

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
