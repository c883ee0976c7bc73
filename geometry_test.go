package gltut

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, "want %v, got %v", want, got)
}

func TestVertexPacking(t *testing.T) {
	assert.EqualValues(t, 20, unsafe.Sizeof(TexVertex{}))
	assert.EqualValues(t, 12, unsafe.Offsetof(TexVertex{}.TexCoord))

	assert.EqualValues(t, 32, unsafe.Sizeof(LitVertex{}))
	assert.EqualValues(t, 12, unsafe.Offsetof(LitVertex{}.TexCoord))
	assert.EqualValues(t, 20, unsafe.Offsetof(LitVertex{}.Normal))
}

func TestPyramidIndicesInRange(t *testing.T) {
	for _, idx := range PyramidIndices {
		assert.Less(t, int(idx), len(pyramidPositions))
	}
}

func TestComputeNormalsQuad(t *testing.T) {
	vs := []LitVertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{1, 1, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
	}
	ComputeNormals(vs, []uint16{0, 1, 2, 0, 2, 3})

	for _, v := range vs {
		assertVec3(t, mgl32.Vec3{0, 0, 1}, v.Normal)
	}
}

func TestComputeNormalsSharedEdge(t *testing.T) {
	// Two faces folded at a right angle along the x axis.
	vs := []LitVertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
		{Position: mgl32.Vec3{0, 0, 1}},
	}
	ComputeNormals(vs, []uint16{0, 1, 2, 0, 3, 1})

	assertVec3(t, mgl32.Vec3{0, 0, 1}, vs[2].Normal)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, vs[3].Normal)

	s := float32(1 / 1.4142135)
	assertVec3(t, mgl32.Vec3{0, s, s}, vs[0].Normal)
	assertVec3(t, mgl32.Vec3{0, s, s}, vs[1].Normal)
}

func TestComputeNormalsDegenerate(t *testing.T) {
	vs := []LitVertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{2, 0, 0}},
	}
	ComputeNormals(vs, []uint16{0, 1, 2})
	for _, v := range vs {
		assert.Equal(t, mgl32.Vec3{}, v.Normal)
	}
}

func TestComputeNormalsResets(t *testing.T) {
	vs := []LitVertex{
		{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{5, 5, 5}},
		{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{5, 5, 5}},
		{Position: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{5, 5, 5}},
	}
	ComputeNormals(vs, []uint16{0, 1, 2})
	assertVec3(t, mgl32.Vec3{0, 0, 1}, vs[0].Normal)
}

func TestLitPyramidNormals(t *testing.T) {
	vs := LitPyramid()
	require.Len(t, vs, 4)

	for i, v := range vs {
		assert.InDelta(t, 1, v.Normal.Len(), 1e-5, "vertex %d", i)
	}
	// The apex only touches the three side faces so its normal points up.
	assert.Greater(t, vs[3].Normal.Y(), float32(0.9))
	// Normals point away from the centroid.
	var centroid mgl32.Vec3
	for _, v := range vs {
		centroid = centroid.Add(v.Position)
	}
	centroid = centroid.Mul(0.25)
	for i, v := range vs {
		assert.Greater(t, v.Normal.Dot(v.Position.Sub(centroid)), float32(0), "vertex %d", i)
	}
}

func TestTexturedPyramid(t *testing.T) {
	vs := TexturedPyramid()
	require.Len(t, vs, 4)
	assert.Equal(t, mgl32.Vec2{0.5, 1}, vs[3].TexCoord)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, vs[3].Position)
}
