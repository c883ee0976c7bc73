package gltut

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/vktec/gltut/std140"
)

// Go mirrors of the GLSL uniform blocks. Every struct is laid out so that it
// can be copied straight into a std140 uniform buffer; the blank fields are
// the padding std140 inserts.

const (
	MaxPointLights = 8
	MaxSpotLights  = 8
)

type AmbientBlock struct {
	MVP              mgl32.Mat4
	Color            mgl32.Vec4
	AmbientIntensity float32
	_                [3]float32
}

type DirectionalBlock struct {
	MVP              mgl32.Mat4
	World            mgl32.Mat4
	Color            mgl32.Vec3
	AmbientIntensity float32
	Direction        mgl32.Vec3
	DiffuseIntensity float32
}

type SpecularBlock struct {
	MVP               mgl32.Mat4
	Normal            mgl32.Mat4
	World             mgl32.Mat4
	Color             mgl32.Vec4
	Direction         mgl32.Vec4
	Eye               mgl32.Vec4
	AmbientIntensity  float32
	DiffuseIntensity  float32
	SpecularIntensity float32
	SpecularPower     float32
}

type CameraBlock struct {
	MVP            mgl32.Mat4
	Normal         mgl32.Mat4
	World          mgl32.Mat4
	Eye            mgl32.Vec4
	NumPointLights int32
	NumSpotLights  int32
	_              [2]int32
}

type MaterialBlock struct {
	SpecularIntensity float32
	SpecularPower     float32
	_                 [2]float32
}

type DirectionalLight struct {
	Color            mgl32.Vec4
	Direction        mgl32.Vec4
	AmbientIntensity float32
	DiffuseIntensity float32
	_                [2]float32
}

// Attenuation divides a light's contribution by
// Constant + Linear*d + Exponential*d*d at distance d.
type Attenuation struct {
	Constant, Linear, Exponential float32
}

type PointLight struct {
	Color                  mgl32.Vec4
	Position               mgl32.Vec4
	AmbientIntensity       float32
	DiffuseIntensity       float32
	AttenuationConstant    float32
	AttenuationLinear      float32
	AttenuationExponential float32
	_                      [3]float32
}

func (l *PointLight) SetAttenuation(a Attenuation) {
	l.AttenuationConstant = a.Constant
	l.AttenuationLinear = a.Linear
	l.AttenuationExponential = a.Exponential
}

type SpotLight struct {
	Color                  mgl32.Vec4
	Position               mgl32.Vec4
	Direction              mgl32.Vec4
	AmbientIntensity       float32
	DiffuseIntensity       float32
	AttenuationConstant    float32
	AttenuationLinear      float32
	AttenuationExponential float32
	// Cutoff is the cosine of the cone's half angle.
	Cutoff float32
	_      [2]float32
}

func (l *SpotLight) SetAttenuation(a Attenuation) {
	l.AttenuationConstant = a.Constant
	l.AttenuationLinear = a.Linear
	l.AttenuationExponential = a.Exponential
}

type PointLightsBlock struct {
	Lights [MaxPointLights]PointLight
}

type SpotLightsBlock struct {
	Lights [MaxSpotLights]SpotLight
}

func member(name string, t std140.Type) std140.Field {
	return std140.Field{Name: name, Type: t}
}

var (
	AmbientLayout = std140.Struct("Data",
		member("mvp", std140.Mat4),
		member("color", std140.Vec4),
		member("ambientIntensity", std140.Float),
	)
	DirectionalLayout = std140.Struct("Data",
		member("mvp", std140.Mat4),
		member("world", std140.Mat4),
		member("color", std140.Vec3),
		member("ambientIntensity", std140.Float),
		member("direction", std140.Vec3),
		member("diffuseIntensity", std140.Float),
	)
	SpecularLayout = std140.Struct("Data",
		member("mvp", std140.Mat4),
		member("normal", std140.Mat4),
		member("world", std140.Mat4),
		member("color", std140.Vec4),
		member("direction", std140.Vec4),
		member("eye", std140.Vec4),
		member("ambientIntensity", std140.Float),
		member("diffuseIntensity", std140.Float),
		member("specularIntensity", std140.Float),
		member("specularPower", std140.Float),
	)
	CameraLayout = std140.Struct("CameraData",
		member("mvp", std140.Mat4),
		member("normal", std140.Mat4),
		member("world", std140.Mat4),
		member("eye", std140.Vec4),
		member("numPointLights", std140.Int),
		member("numSpotLights", std140.Int),
	)
	MaterialLayout = std140.Struct("Material",
		member("specularIntensity", std140.Float),
		member("specularPower", std140.Float),
	)
	DirectionalLightLayout = std140.Struct("DirectionalLight",
		member("color", std140.Vec4),
		member("direction", std140.Vec4),
		member("ambientIntensity", std140.Float),
		member("diffuseIntensity", std140.Float),
	)
	PointLightLayout = std140.Struct("PointLight",
		member("color", std140.Vec4),
		member("position", std140.Vec4),
		member("ambientIntensity", std140.Float),
		member("diffuseIntensity", std140.Float),
		member("attenuationConstant", std140.Float),
		member("attenuationLinear", std140.Float),
		member("attenuationExponential", std140.Float),
	)
	SpotLightLayout = std140.Struct("SpotLight",
		member("color", std140.Vec4),
		member("position", std140.Vec4),
		member("direction", std140.Vec4),
		member("ambientIntensity", std140.Float),
		member("diffuseIntensity", std140.Float),
		member("attenuationConstant", std140.Float),
		member("attenuationLinear", std140.Float),
		member("attenuationExponential", std140.Float),
		member("cutoff", std140.Float),
	)
	PointLightsLayout = std140.Struct("PointLights",
		member("light", std140.Array(PointLightLayout, MaxPointLights)),
	)
	SpotLightsLayout = std140.Struct("SpotLights",
		member("light", std140.Array(SpotLightLayout, MaxSpotLights)),
	)
)

var blockChecks = []struct {
	v      interface{}
	layout std140.StructType
}{
	{AmbientBlock{}, AmbientLayout},
	{DirectionalBlock{}, DirectionalLayout},
	{SpecularBlock{}, SpecularLayout},
	{CameraBlock{}, CameraLayout},
	{MaterialBlock{}, MaterialLayout},
	{DirectionalLight{}, DirectionalLightLayout},
	{PointLight{}, PointLightLayout},
	{SpotLight{}, SpotLightLayout},
	{PointLightsBlock{}, PointLightsLayout},
	{SpotLightsBlock{}, SpotLightsLayout},
}

// CheckBlocks verifies that every block struct matches its GLSL declaration.
func CheckBlocks() error {
	for _, c := range blockChecks {
		if err := std140.Check(c.v, c.layout); err != nil {
			return errors.Wrap(err, "uniform block layout")
		}
	}
	return nil
}
