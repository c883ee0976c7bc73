package gltut

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSpin(t *testing.T) {
	origin := Spin(0).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDeltaSlice(t, []float32{0, 0, -5, 1}, origin[:], 1e-5, "%v", origin)

	// cos(pi/2) in float32 is not zero, so x lands a few ulps off the axis.
	x := Spin(math.Pi/2).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDeltaSlice(t, []float32{0, 0, -6, 1}, x[:], 1e-5, "%v", x)
}

func TestPerspectiveAspect(t *testing.T) {
	p := Perspective(640, 480, 1)
	// With a 90 degree fov, y scale is cot(45deg) = 1 and x scale is 1/aspect.
	assert.InDelta(t, 1, p.At(1, 1), 1e-6)
	assert.InDelta(t, 0.75, p.At(0, 0), 1e-6)

	near := p.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	assert.InDelta(t, -1, near.Z()/near.W(), 1e-5)
	far := p.Mul4x1(mgl32.Vec4{0, 0, -100, 1})
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-5)
}

func TestTransformsRigid(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	tr := NewTransforms(Perspective(640, 480, 1), view, Spin(0.7))

	world := view.Mul4(Spin(0.7))
	assert.InDeltaSlice(t, world[:], tr.World[:], 1e-5)
	// Rigid motions leave normals rotated exactly like positions.
	normal, rot := tr.Normal.Mat3(), tr.World.Mat3()
	assert.InDeltaSlice(t, rot[:], normal[:], 1e-5)
}

func TestTransformsScaledNormal(t *testing.T) {
	model := mgl32.Scale3D(2, 1, 1)
	tr := NewTransforms(mgl32.Ident4(), mgl32.Ident4(), model)

	// A plane tilted 45 degrees in xy keeps its normal perpendicular after
	// non-uniform scaling only when transformed by the inverse transpose.
	tangent := tr.World.Mul4x1(mgl32.Vec4{1, -1, 0, 0}).Vec3()
	normal := tr.Normal.Mul4x1(mgl32.Vec4{1, 1, 0, 0}).Vec3()
	assert.InDelta(t, 0, tangent.Dot(normal), 1e-6)
}
