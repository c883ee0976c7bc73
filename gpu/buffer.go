package gpu

import (
	"log/slog"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/vktec/gltut/util"
)

// Buffer is a GL buffer object with immutable contents.
type Buffer struct {
	ID   uint32
	Size int
}

// NewBuffer uploads data into a new static buffer.
func NewBuffer[T any](data []T) *Buffer {
	util.Assert(len(data) > 0, "empty buffer")
	var zero T
	b := &Buffer{Size: len(data) * int(unsafe.Sizeof(zero))}
	gl.CreateBuffers(1, &b.ID)
	gl.NamedBufferData(b.ID, b.Size, gl.Ptr(data), gl.STATIC_DRAW)
	slog.Debug("created buffer", "id", b.ID, "size", humanize.Bytes(uint64(b.Size)))
	return b
}

func (b *Buffer) Delete() { gl.DeleteBuffers(1, &b.ID) }

const mapFlags = gl.MAP_WRITE_BIT | gl.MAP_PERSISTENT_BIT | gl.MAP_COHERENT_BIT

// MappedBuffer is a uniform buffer that stays mapped for its whole life.
// Writes to Bytes are visible to the GPU without a flush.
type MappedBuffer struct {
	ID    uint32
	Bytes []byte
}

func NewMappedBuffer(size int) *MappedBuffer {
	util.Assert(size > 0, "mapped buffer size %d", size)
	mb := &MappedBuffer{}
	gl.CreateBuffers(1, &mb.ID)
	gl.NamedBufferStorage(mb.ID, size, nil, mapFlags)
	ptr := gl.MapNamedBufferRange(mb.ID, 0, size, mapFlags)
	mb.Bytes = unsafe.Slice((*byte)(ptr), size)
	slog.Debug("mapped uniform buffer", "id", mb.ID, "size", humanize.Bytes(uint64(size)))
	return mb
}

// Block views the bytes at offset as a *T. T must be a uniform block struct
// laid out to match its GLSL declaration.
func Block[T any](mb *MappedBuffer, offset int) *T {
	var zero T
	util.Assert(offset >= 0 && offset+int(unsafe.Sizeof(zero)) <= len(mb.Bytes),
		"block of %d bytes at %d overflows %d byte buffer", unsafe.Sizeof(zero), offset, len(mb.Bytes))
	return (*T)(unsafe.Pointer(&mb.Bytes[offset]))
}

func (mb *MappedBuffer) BindBase(index uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, index, mb.ID)
}

func (mb *MappedBuffer) BindRange(index uint32, offset, size int) {
	gl.BindBufferRange(gl.UNIFORM_BUFFER, index, mb.ID, offset, size)
}

func (mb *MappedBuffer) Delete() {
	gl.UnmapNamedBuffer(mb.ID)
	mb.Bytes = nil
	gl.DeleteBuffers(1, &mb.ID)
}

// UniformBufferOffsetAlignment is the alignment BindRange offsets must have.
func UniformBufferOffsetAlignment() int {
	var align int32
	gl.GetIntegerv(gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT, &align)
	return int(align)
}
