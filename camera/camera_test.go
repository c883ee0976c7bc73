package camera

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-4

func approx(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], eps, "want %v, got %v", want, got)
}

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Position())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, c.Target())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())

	h, v := c.Angles()
	assert.InDelta(t, 90, h, eps)
	assert.InDelta(t, 0, v, eps)
}

func TestNewAtNormalizes(t *testing.T) {
	c := NewAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, -4}, mgl32.Vec3{0, 2, 0})
	approx(t, mgl32.Vec3{0, 0, -1}, c.Target())
	approx(t, mgl32.Vec3{0, 1, 0}, c.Up())
}

func TestAnglesRoundTrip(t *testing.T) {
	targets := []mgl32.Vec3{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 0, 1},
		{0, 0, -1},
		{1, 0, 1},
		{-1, 0.5, -1},
		{0.3, -0.4, 0.8},
	}
	for _, target := range targets {
		c := NewAt(mgl32.Vec3{}, target, mgl32.Vec3{0, 1, 0})
		want := c.Target()
		c.updateTarget()
		approx(t, want, c.Target())

		h, _ := c.Angles()
		assert.True(t, h >= 0 && h <= 360, "angle %v for %v", h, target)
	}
}

func TestViewMatrix(t *testing.T) {
	c := NewAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	view := c.ViewMatrix()

	eye := view.Mul4x1(c.Position().Vec4(1)).Vec3()
	approx(t, mgl32.Vec3{}, eye)

	ahead := view.Mul4x1(c.Position().Add(c.Target()).Vec4(1)).Vec3()
	approx(t, mgl32.Vec3{0, 0, -1}, ahead)
}

func TestForwardAndBack(t *testing.T) {
	c := New()
	c.OnKeyboard(glfw.KeyUp, glfw.Press)
	c.Update(0.5)
	approx(t, mgl32.Vec3{0, 0, -0.5}, c.Position())

	c.OnKeyboard(glfw.KeyUp, glfw.Repeat)
	c.Update(0.5)
	approx(t, mgl32.Vec3{0, 0, -1}, c.Position())

	c.OnKeyboard(glfw.KeyUp, glfw.Release)
	c.OnKeyboard(glfw.KeyDown, glfw.Press)
	c.Update(2)
	approx(t, mgl32.Vec3{0, 0, 1}, c.Position())

	c.OnKeyboard(glfw.KeyDown, glfw.Release)
	c.Update(2)
	approx(t, mgl32.Vec3{0, 0, 1}, c.Position())
}

func TestStrafe(t *testing.T) {
	c := New()
	c.OnKeyboard(glfw.KeyLeft, glfw.Press)
	c.Update(1)
	approx(t, mgl32.Vec3{-1, 0, 0}, c.Position())
	c.OnKeyboard(glfw.KeyLeft, glfw.Release)

	c.OnKeyboard(glfw.KeyRight, glfw.Press)
	c.Update(3)
	approx(t, mgl32.Vec3{2, 0, 0}, c.Position())
}

func TestStrafeOverridesForward(t *testing.T) {
	c := New()
	c.OnKeyboard(glfw.KeyUp, glfw.Press)
	c.OnKeyboard(glfw.KeyRight, glfw.Press)
	c.Update(1)
	approx(t, mgl32.Vec3{1, 0, 0}, c.Position())
}

func TestOtherKeysIgnored(t *testing.T) {
	c := New()
	c.OnKeyboard(glfw.KeyW, glfw.Press)
	c.Update(1)
	assert.Equal(t, mgl32.Vec3{}, c.Position())
}

func TestMouseLook(t *testing.T) {
	c := New()
	c.OnMouse(100, 100)
	approx(t, mgl32.Vec3{0, 0, -1}, c.Target())

	// 900 pixels at 0.1 degrees per pixel turns a quarter to the right.
	c.OnMouse(1000, 100)
	h, v := c.Angles()
	assert.InDelta(t, 0, h, eps)
	assert.InDelta(t, 0, v, eps)
	approx(t, mgl32.Vec3{1, 0, 0}, c.Target())

	c.OnMouse(100, 100)
	approx(t, mgl32.Vec3{0, 0, -1}, c.Target())
}

func TestMousePitchClamped(t *testing.T) {
	c := New()
	c.OnMouse(0, 0)
	c.OnMouse(0, 10000)
	_, v := c.Angles()
	assert.InDelta(t, maxPitch, v, eps)
	assert.Less(t, c.Target().Y(), float32(0))
	assert.InDelta(t, 1, c.Target().Len(), eps)
}
