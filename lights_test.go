package gltut

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSun(t *testing.T) {
	s := Sun(0.1, 0.25)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, s.Direction)
	assert.Equal(t, float32(0.1), s.AmbientIntensity)
	assert.Equal(t, float32(0.25), s.DiffuseIntensity)
}

func TestSwingingLights(t *testing.T) {
	ls := SwingingLights(0)
	assert.Equal(t, mgl32.Vec4{3, 1, 0, 0}, ls[0].Position)
	assert.Equal(t, mgl32.Vec4{7, 1, 20, 0}, ls[1].Position)
	assert.Equal(t, float32(0.1), ls[0].AttenuationConstant)
	assert.Equal(t, float32(0.1), ls[1].AttenuationLinear)

	ls = SwingingLights(math32.Pi / 2)
	assert.InDelta(t, 20, ls[0].Position.Z(), 1e-4)
	assert.InDelta(t, 0, ls[1].Position.Z(), 1e-4)
}

func TestHeadlight(t *testing.T) {
	l := Headlight(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, -2}, 0)
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, l.Position)
	assert.Equal(t, mgl32.Vec4{0, 0, -1, 0}, l.Direction)
	assert.InDelta(t, math32.Sqrt(2)/2, l.Cutoff, 1e-6)

	wider := Headlight(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 15)
	assert.InDelta(t, 0.5, wider.Cutoff, 1e-6)
}
