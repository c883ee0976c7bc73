package gltut

import "github.com/go-gl/mathgl/mgl32"

// Perspective is the 90 degree projection used by every 3D tutorial.
func Perspective(width, height int, near float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(90), float32(width)/float32(height), near, 100)
}

// Spin places a model five units down -z, rotated t radians about y.
func Spin(t float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -5).Mul4(mgl32.HomogRotate3DY(t))
}

type Transforms struct {
	MVP mgl32.Mat4
	// Normal is the inverse transpose of view*model, for transforming normals.
	Normal mgl32.Mat4
	// World is view*model; lighting happens in this space.
	World mgl32.Mat4
}

func NewTransforms(proj, view, model mgl32.Mat4) Transforms {
	mv := view.Mul4(model)
	return Transforms{
		MVP:    proj.Mul4(mv),
		Normal: mv.Inv().Transpose(),
		World:  mv,
	}
}
