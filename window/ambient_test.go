package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestAmbientKeys(t *testing.T) {
	a := Ambient{Intensity: 0.5, Step: 0.05}

	a.OnKey(glfw.KeyA, glfw.Press)
	assert.InDelta(t, 0.55, a.Intensity, 1e-6)

	a.OnKey(glfw.KeyA, glfw.Repeat)
	assert.InDelta(t, 0.6, a.Intensity, 1e-6)

	a.OnKey(glfw.KeyA, glfw.Release)
	assert.InDelta(t, 0.6, a.Intensity, 1e-6)

	a.OnKey(glfw.KeyS, glfw.Press)
	a.OnKey(glfw.KeyS, glfw.Press)
	assert.InDelta(t, 0.5, a.Intensity, 1e-6)

	a.OnKey(glfw.KeyUp, glfw.Press)
	assert.InDelta(t, 0.5, a.Intensity, 1e-6)
}

func TestAmbientCanGoNegative(t *testing.T) {
	a := Ambient{Intensity: 0, Step: 0.05}
	a.OnKey(glfw.KeyS, glfw.Press)
	assert.Less(t, a.Intensity, float32(0))
}
