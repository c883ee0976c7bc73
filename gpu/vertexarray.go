package gpu

import "github.com/go-gl/gl/v4.5-core/gl"

// Attrib describes one float vertex attribute read from binding 0.
type Attrib struct {
	Index  uint32
	Size   int32
	Offset uint32
}

type VertexArray struct {
	ID uint32
}

func NewVertexArray(attribs ...Attrib) *VertexArray {
	va := &VertexArray{}
	gl.CreateVertexArrays(1, &va.ID)
	for _, a := range attribs {
		gl.EnableVertexArrayAttrib(va.ID, a.Index)
		gl.VertexArrayAttribFormat(va.ID, a.Index, a.Size, gl.FLOAT, false, a.Offset)
		gl.VertexArrayAttribBinding(va.ID, a.Index, 0)
	}
	return va
}

// SetElementBuffer attaches ibo as the index buffer of the vertex array.
func (va *VertexArray) SetElementBuffer(ibo *Buffer) {
	gl.VertexArrayElementBuffer(va.ID, ibo.ID)
}

// Bind makes va current with vbo at binding 0.
func (va *VertexArray) Bind(vbo *Buffer, stride int) {
	gl.BindVertexArray(va.ID)
	gl.BindVertexBuffer(0, vbo.ID, 0, int32(stride))
}

func (va *VertexArray) Delete() { gl.DeleteVertexArrays(1, &va.ID) }
