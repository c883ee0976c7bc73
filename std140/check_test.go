package std140

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lightLayout = Struct("Light",
	Field{"color", Vec4},
	Field{"position", Vec4},
	Field{"intensity", Float},
)

var sceneLayout = Struct("Scene",
	Field{"mvp", Mat4},
	Field{"color", Vec3},
	Field{"ambient", Float},
	Field{"lights", Array(lightLayout, 2)},
)

type goodLight struct {
	Color     mgl32.Vec4
	Position  mgl32.Vec4
	Intensity float32
	_         [3]float32
}

type goodScene struct {
	MVP     mgl32.Mat4
	Color   mgl32.Vec3
	Ambient float32
	Lights  [2]goodLight
}

type unpaddedLight struct {
	Color     mgl32.Vec4
	Position  mgl32.Vec4
	Intensity float32
}

type unpaddedScene struct {
	MVP     mgl32.Mat4
	Color   mgl32.Vec3
	Ambient float32
	Lights  [2]unpaddedLight
}

type misplacedScene struct {
	MVP     mgl32.Mat4
	Ambient float32
	Color   mgl32.Vec3
	Lights  [2]goodLight
}

func TestCheckAccepts(t *testing.T) {
	require.NoError(t, Check(goodScene{}, sceneLayout))
	require.NoError(t, Check(&goodScene{}, sceneLayout))
}

func TestCheckStride(t *testing.T) {
	err := Check(unpaddedScene{}, sceneLayout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stride 36")
}

func TestCheckOffset(t *testing.T) {
	err := Check(misplacedScene{}, sceneLayout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "misplacedScene.Ambient")
}

func TestCheckMissingField(t *testing.T) {
	type short struct {
		MVP mgl32.Mat4
	}
	err := Check(short{}, sceneLayout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Scene.color")
}

func TestCheckVec3AsVec4(t *testing.T) {
	type wide struct {
		Color mgl32.Vec4
	}
	err := Check(wide{}, Struct("Narrow", Field{"color", Vec3}))
	require.Error(t, err)
}

func TestCheckNotStruct(t *testing.T) {
	assert.Error(t, Check(3, sceneLayout))
	assert.Error(t, Check(nil, sceneLayout))
}

func TestCheckComponentType(t *testing.T) {
	counts := Struct("Counts",
		Field{"numPointLights", Int},
		Field{"numSpotLights", Uint},
		Field{"enabled", Bool},
		Field{"tint", IVec4},
	)

	type good struct {
		NumPointLights int32
		NumSpotLights  uint32
		Enabled        uint32
		_              uint32
		Tint           [4]int32
	}
	require.NoError(t, Check(good{}, counts))

	type floatCount struct {
		NumPointLights float32
		NumSpotLights  uint32
		Enabled        uint32
		_              uint32
		Tint           [4]int32
	}
	err := Check(floatCount{}, counts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floatCount.NumPointLights")
	assert.Contains(t, err.Error(), "int components")

	type floatTint struct {
		NumPointLights int32
		NumSpotLights  uint32
		Enabled        uint32
		_              uint32
		Tint           mgl32.Vec4
	}
	err = Check(floatTint{}, counts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floatTint.Tint")
}

func TestCheckMatrixComponents(t *testing.T) {
	type intMatrix struct {
		M [16]int32
	}
	require.Error(t, Check(intMatrix{}, Struct("M", Field{"m", Mat4})))

	type floatMatrix struct {
		M mgl32.Mat4
	}
	require.NoError(t, Check(floatMatrix{}, Struct("M", Field{"m", Mat4})))
}
