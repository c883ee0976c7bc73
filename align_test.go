package gltut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignUp(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
		{212, 256, 256},
		{640, 256, 768},
		{7, 1, 7},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AlignUp(c.a, c.b), "AlignUp(%d, %d)", c.a, c.b)
	}
}

func TestBlockLayout(t *testing.T) {
	l := NewBlockLayout(256, 224, 16, 48, 512, 640)
	assert.Equal(t, 5, l.Len())

	wantOffsets := []int{0, 256, 512, 768, 1280}
	wantSizes := []int{256, 256, 256, 512, 768}
	for i := 0; i < l.Len(); i++ {
		assert.Equal(t, wantOffsets[i], l.Offset(i), "offset %d", i)
		assert.Equal(t, wantSizes[i], l.Size(i), "size %d", i)
		assert.Zero(t, l.Offset(i)%256, "block %d misaligned", i)
	}
	assert.Equal(t, 2048, l.Total())
}

func TestBlockLayoutSmallAlignment(t *testing.T) {
	l := NewBlockLayout(16, 224, 16, 48)
	assert.Equal(t, 0, l.Offset(0))
	assert.Equal(t, 224, l.Offset(1))
	assert.Equal(t, 240, l.Offset(2))
	assert.Equal(t, 288, l.Total())
}

func TestBlockLayoutEmpty(t *testing.T) {
	l := NewBlockLayout(256)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Total())
}
