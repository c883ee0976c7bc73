// Command tutorial20 splits the uniforms into camera, material, sun and
// point light blocks packed into one buffer, and adds two moving point
// lights.
package main

import (
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
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

// Uniform block bindings, in buffer order.
const (
	bindCamera = iota
	bindMaterial
	bindSun
	bindPointLights
)

func main() {
	cfg := config.Default("Tutorial20")
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	if err := run(cfg); err != nil {
		logx.Fatal("tutorial20", err)
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

	layout := gltut.NewBlockLayout(gpu.UniformBufferOffsetAlignment(),
		int(unsafe.Sizeof(gltut.CameraBlock{})),
		int(unsafe.Sizeof(gltut.MaterialBlock{})),
		int(unsafe.Sizeof(gltut.DirectionalLight{})),
		int(unsafe.Sizeof(gltut.PointLightsBlock{})),
	)
	slog.Debug("uniform buffer layout", "blocks", layout.Len(), "total", humanize.Bytes(uint64(layout.Total())))

	ubo := gpu.NewMappedBuffer(layout.Total())
	defer ubo.Delete()
	cameraData := gpu.Block[gltut.CameraBlock](ubo, layout.Offset(bindCamera))
	material := gpu.Block[gltut.MaterialBlock](ubo, layout.Offset(bindMaterial))
	sun := gpu.Block[gltut.DirectionalLight](ubo, layout.Offset(bindSun))
	pointLights := gpu.Block[gltut.PointLightsBlock](ubo, layout.Offset(bindPointLights))

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
		lights := gltut.SwingingLights(t)

		cameraData.MVP = tr.MVP
		cameraData.Normal = tr.Normal
		cameraData.World = tr.World
		cameraData.Eye = cam.Position().Vec4(1)
		cameraData.NumPointLights = int32(copy(pointLights.Lights[:], lights[:]))
		cameraData.NumSpotLights = 0

		material.SpecularIntensity = cfg.Scene.SpecularIntensity
		material.SpecularPower = cfg.Scene.SpecularPower

		*sun = gltut.Sun(ambient.Intensity, cfg.Scene.DiffuseIntensity)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		prog.Use()
		gl.Uniform1i(uImage, 0)
		for i := 0; i < layout.Len(); i++ {
			ubo.BindRange(uint32(i), layout.Offset(i), layout.Size(i))
		}
		tex.Bind(0)

		vao.Bind(vbo, stride)
		gl.DrawElements(gl.TRIANGLES, int32(len(gltut.PyramidIndices)), gl.UNSIGNED_SHORT, nil)

		cam.Update(cfg.Scene.CameraStep)
	})
	return nil
}
