// Package camera implements the keyboard and mouse driven camera used from
// the camera tutorials onwards.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89

type Camera struct {
	pos, target, up mgl32.Vec3

	// Horizontal and vertical view angles in degrees.
	angleH, angleV float32

	upPressed, downPressed, leftPressed, rightPressed bool

	Sensitivity float32
	mouseSeen   bool
	mx, my      float64
}

// New returns a camera at the origin looking down -z.
func New() *Camera {
	return NewAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
}

func NewAt(pos, target, up mgl32.Vec3) *Camera {
	c := &Camera{
		pos:         pos,
		target:      target.Normalize(),
		up:          up.Normalize(),
		Sensitivity: 0.1,
	}
	c.initAngles()
	return c
}

func (c *Camera) initAngles() {
	h := mgl32.Vec3{c.target.X(), 0, c.target.Z()}
	if h.Len() > 0 {
		h = h.Normalize()
	}

	if h.Z() >= 0 {
		if h.X() >= 0 {
			c.angleH = 360 - mgl32.RadToDeg(math32.Asin(h.Z()))
		} else {
			c.angleH = 180 + mgl32.RadToDeg(math32.Asin(h.Z()))
		}
	} else {
		if h.X() >= 0 {
			c.angleH = mgl32.RadToDeg(math32.Asin(-h.Z()))
		} else {
			c.angleH = 180 - mgl32.RadToDeg(math32.Asin(-h.Z()))
		}
	}

	c.angleV = -mgl32.RadToDeg(math32.Asin(c.target.Y()))
}

func (c *Camera) Position() mgl32.Vec3 { return c.pos }
func (c *Camera) Target() mgl32.Vec3   { return c.target }
func (c *Camera) Up() mgl32.Vec3       { return c.up }

// Angles returns the horizontal and vertical view angles in degrees.
func (c *Camera) Angles() (h, v float32) { return c.angleH, c.angleV }

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.pos, c.pos.Add(c.target), c.up)
}

// OnKeyboard tracks the arrow keys. Held keys keep moving the camera on
// every Update until released.
func (c *Camera) OnKeyboard(key glfw.Key, action glfw.Action) {
	held := action != glfw.Release
	switch key {
	case glfw.KeyUp:
		c.upPressed = held
	case glfw.KeyDown:
		c.downPressed = held
	case glfw.KeyLeft:
		c.leftPressed = held
	case glfw.KeyRight:
		c.rightPressed = held
	}
}

// Update moves the camera by step along the view direction, or sideways
// when a strafe key is held. Strafing takes precedence.
func (c *Camera) Update(step float32) {
	var move mgl32.Vec3

	if c.upPressed {
		move = c.target.Mul(step)
	} else if c.downPressed {
		move = c.target.Mul(-step)
	}

	if c.leftPressed {
		move = strafe(c.up, c.target, step)
	} else if c.rightPressed {
		move = strafe(c.target, c.up, step)
	}

	c.pos = c.pos.Add(move)
}

func strafe(a, b mgl32.Vec3, step float32) mgl32.Vec3 {
	side := a.Cross(b)
	if side.Len() == 0 {
		return mgl32.Vec3{}
	}
	return side.Normalize().Mul(step)
}

// OnMouse turns the camera by the cursor movement since the previous call.
// Moving right turns right and moving down looks down.
func (c *Camera) OnMouse(x, y float64) {
	if !c.mouseSeen {
		c.mouseSeen = true
		c.mx, c.my = x, y
		return
	}
	dx, dy := float32(x-c.mx), float32(y-c.my)
	c.mx, c.my = x, y
	if dx == 0 && dy == 0 {
		return
	}

	c.angleH -= dx * c.Sensitivity
	c.angleV = mgl32.Clamp(c.angleV+dy*c.Sensitivity, -maxPitch, maxPitch)
	c.updateTarget()
}

// updateTarget recomputes the view direction from the angles, inverting
// initAngles.
func (c *Camera) updateTarget() {
	h := mgl32.DegToRad(c.angleH)
	v := mgl32.DegToRad(c.angleV)
	cosV := math32.Cos(v)
	c.target = mgl32.Vec3{
		math32.Cos(h) * cosV,
		-math32.Sin(v),
		-math32.Sin(h) * cosV,
	}.Normalize()
}
