package gltut

import "github.com/vktec/gltut/util"

// AlignUp rounds a up to the next multiple of b.
func AlignUp(a, b int) int {
	util.Assert(b > 0, "alignment %d must be positive", b)
	return (a + b - 1) / b * b
}

// BlockLayout places several uniform blocks back to back in a single
// buffer so that every block starts on a multiple of the implementation's
// GL_UNIFORM_BUFFER_OFFSET_ALIGNMENT.
type BlockLayout struct {
	offsets []int
	sizes   []int
	total   int
}

func NewBlockLayout(alignment int, sizes ...int) BlockLayout {
	l := BlockLayout{
		offsets: make([]int, len(sizes)),
		sizes:   make([]int, len(sizes)),
	}
	for i, size := range sizes {
		l.offsets[i] = l.total
		l.sizes[i] = AlignUp(size, alignment)
		l.total += l.sizes[i]
	}
	return l
}

// Offset is where block i starts.
func (l BlockLayout) Offset(i int) int { return l.offsets[i] }

// Size is the aligned size of block i, suitable for glBindBufferRange.
func (l BlockLayout) Size(i int) int { return l.sizes[i] }

// Total is the buffer size needed for all blocks.
func (l BlockLayout) Total() int { return l.total }

func (l BlockLayout) Len() int { return len(l.sizes) }
