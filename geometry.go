package gltut

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/gltut/util"
)

// TexVertex is a position with a texture coordinate, packed into 20 bytes.
type TexVertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

// LitVertex adds a normal to TexVertex, packed into 32 bytes.
type LitVertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// Point is the single vertex drawn by the point tutorial.
var Point = mgl32.Vec3{0, 0, 0}

var Triangle = [3]mgl32.Vec3{
	{-1, -1, 0},
	{1, -1, 0},
	{0, 1, 0},
}

var pyramidPositions = [4]mgl32.Vec3{
	{-1, -1, 0.5773},
	{0, -1, -1.15475},
	{1, -1, 0.5773},
	{0, 1, 0},
}

var pyramidTexCoords = [4]mgl32.Vec2{
	{0, 0},
	{0.5, 0},
	{1, 0},
	{0.5, 1},
}

// PyramidIndices are the four faces of the pyramid, counter-clockwise when
// seen from outside.
var PyramidIndices = [12]uint16{
	0, 3, 1,
	1, 3, 2,
	2, 3, 0,
	0, 1, 2,
}

func PyramidPositions() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), pyramidPositions[:]...)
}

func TexturedPyramid() []TexVertex {
	vs := make([]TexVertex, len(pyramidPositions))
	for i := range vs {
		vs[i] = TexVertex{pyramidPositions[i], pyramidTexCoords[i]}
	}
	return vs
}

// LitPyramid returns the textured pyramid with smoothed vertex normals.
func LitPyramid() []LitVertex {
	vs := make([]LitVertex, len(pyramidPositions))
	for i := range vs {
		vs[i] = LitVertex{Position: pyramidPositions[i], TexCoord: pyramidTexCoords[i]}
	}
	ComputeNormals(vs, PyramidIndices[:])
	return vs
}

// ComputeNormals sets each vertex normal to the normalized sum of the face
// normals of the triangles that use it. Degenerate triangles are ignored.
func ComputeNormals(vs []LitVertex, indices []uint16) {
	util.Assert(len(indices)%3 == 0, "index count %d is not a multiple of 3", len(indices))

	for i := range vs {
		vs[i].Normal = mgl32.Vec3{}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		p0 := &vs[indices[i]]
		p1 := &vs[indices[i+1]]
		p2 := &vs[indices[i+2]]

		n := p1.Position.Sub(p0.Position).Cross(p2.Position.Sub(p0.Position))
		if n.Len() == 0 {
			continue
		}
		n = n.Normalize()

		p0.Normal = p0.Normal.Add(n)
		p1.Normal = p1.Normal.Add(n)
		p2.Normal = p2.Normal.Add(n)
	}

	for i := range vs {
		if vs[i].Normal.Len() > 0 {
			vs[i].Normal = vs[i].Normal.Normalize()
		}
	}
}
