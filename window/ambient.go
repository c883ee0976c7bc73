package window

import "github.com/go-gl/glfw/v3.3/glfw"

// Ambient is an ambient light intensity the A and S keys turn up and down.
type Ambient struct {
	Intensity float32
	Step      float32
}

func (a *Ambient) OnKey(key glfw.Key, action glfw.Action) {
	if action == glfw.Release {
		return
	}
	switch key {
	case glfw.KeyA:
		a.Intensity += a.Step
	case glfw.KeyS:
		a.Intensity -= a.Step
	}
}
