// Package std140 computes GLSL std140 uniform block layouts and checks that
// Go structs mirror them byte for byte.
package std140

import "fmt"

// Type is a GLSL type with a std140 base alignment and size.
type Type interface {
	Align() int
	Size() int
	String() string
}

// Scalar is the component type of a GLSL type.
type Scalar int

const (
	FloatScalar Scalar = iota
	IntScalar
	UintScalar
	BoolScalar
)

type basic struct {
	name        string
	scalar      Scalar
	align, size int
}

func (b basic) Align() int     { return b.align }
func (b basic) Size() int      { return b.size }
func (b basic) String() string { return b.name }

var (
	Float Type = basic{"float", FloatScalar, 4, 4}
	Int   Type = basic{"int", IntScalar, 4, 4}
	Uint  Type = basic{"uint", UintScalar, 4, 4}
	Bool  Type = basic{"bool", BoolScalar, 4, 4}
	Vec2  Type = basic{"vec2", FloatScalar, 8, 8}
	Vec3  Type = basic{"vec3", FloatScalar, 16, 12}
	Vec4  Type = basic{"vec4", FloatScalar, 16, 16}
	IVec4 Type = basic{"ivec4", IntScalar, 16, 16}

	// Column-major matrices are laid out as arrays of column vectors.
	Mat3 Type = matrix{"mat3", Array(Vec3, 3)}
	Mat4 Type = matrix{"mat4", Array(Vec4, 4)}
)

type matrix struct {
	name string
	cols ArrayType
}

func (m matrix) Align() int     { return m.cols.Align() }
func (m matrix) Size() int      { return m.cols.Size() }
func (m matrix) String() string { return m.name }

func roundUp(a, b int) int {
	return (a + b - 1) / b * b
}

// ArrayType is a fixed length GLSL array. Every element is aligned to at
// least a vec4.
type ArrayType struct {
	Elem Type
	Len  int
}

func Array(elem Type, n int) ArrayType {
	return ArrayType{elem, n}
}

func (a ArrayType) Align() int {
	return roundUp(a.Elem.Align(), 16)
}

// Stride is the distance in bytes between consecutive elements.
func (a ArrayType) Stride() int {
	return roundUp(a.Elem.Size(), a.Align())
}

func (a ArrayType) Size() int {
	return a.Stride() * a.Len
}

func (a ArrayType) String() string {
	return fmt.Sprintf("%s[%d]", a.Elem, a.Len)
}

type Field struct {
	Name string
	Type Type
}

// StructType describes a GLSL struct or uniform block.
type StructType struct {
	Name   string
	Fields []Field
}

func Struct(name string, fields ...Field) StructType {
	return StructType{name, fields}
}

func (s StructType) Align() int {
	align := 16
	for _, f := range s.Fields {
		if a := f.Type.Align(); a > align {
			align = a
		}
	}
	return roundUp(align, 16)
}

// Offsets returns the byte offset of each field, in declaration order.
func (s StructType) Offsets() []int {
	offsets := make([]int, len(s.Fields))
	off := 0
	for i, f := range s.Fields {
		off = roundUp(off, f.Type.Align())
		offsets[i] = off
		off += f.Type.Size()
	}
	return offsets
}

func (s StructType) Size() int {
	end := 0
	if n := len(s.Fields); n > 0 {
		end = s.Offsets()[n-1] + s.Fields[n-1].Type.Size()
	}
	return roundUp(end, s.Align())
}

func (s StructType) String() string {
	return s.Name
}
