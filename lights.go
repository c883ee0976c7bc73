package gltut

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sun is the white light shining along +x in the lighting tutorials.
func Sun(ambient, diffuse float32) DirectionalLight {
	return DirectionalLight{
		Color:            mgl32.Vec4{1, 1, 1, 1},
		Direction:        mgl32.Vec4{1, 0, 0, 1},
		AmbientIntensity: ambient,
		DiffuseIntensity: diffuse,
	}
}

// SwingingLights returns an orange and a blue point light that swing along
// z, 20 units either side of the origin, as t advances.
func SwingingLights(t float32) [2]PointLight {
	var ls [2]PointLight

	ls[0].Color = mgl32.Vec4{1, 0.5, 0, 1}
	ls[0].Position = mgl32.Vec4{3, 1, 20 * math32.Sin(t), 0}
	ls[0].DiffuseIntensity = 0.5
	ls[0].SetAttenuation(Attenuation{Constant: 0.1})

	ls[1].Color = mgl32.Vec4{0, 0.5, 1, 1}
	ls[1].Position = mgl32.Vec4{7, 1, 20 * math32.Cos(t), 0}
	ls[1].DiffuseIntensity = 0.5
	ls[1].SetAttenuation(Attenuation{Constant: 1, Linear: 0.1})

	return ls
}

// Headlight returns a white spot light at pos shining along dir. Its cone
// half angle starts at 45 degrees and opens by one degree per unit of t.
func Headlight(pos, dir mgl32.Vec3, t float32) SpotLight {
	l := SpotLight{
		Color:            mgl32.Vec4{1, 1, 1, 1},
		Position:         pos.Vec4(1),
		Direction:        dir.Normalize().Vec4(0),
		DiffuseIntensity: 0.9,
		Cutoff:           math32.Cos(mgl32.DegToRad(45 + t)),
	}
	l.SetAttenuation(Attenuation{Constant: 1, Linear: 0.1})
	return l
}
