package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vktec/gltut"
	"github.com/vktec/gltut/util"
)

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := util.GenChecker(16, 4)

	for _, name := range []string{"a.png", "b.bmp", "c.tiff", "nested/d.PNG"} {
		path := filepath.Join(dir, name)
		require.NoError(t, write(path, src), name)

		got, err := gltut.LoadImage(path)
		require.NoError(t, err, name)
		assert.Equal(t, src.Rect, got.Rect, name)
		assert.Equal(t, src.Pix, got.Pix, name)
	}
}

func TestWriteUnsupported(t *testing.T) {
	err := write(filepath.Join(t.TempDir(), "x.jpg"), util.GenChecker(4, 2))
	assert.EqualError(t, err, `unsupported image format ".jpg"`)
}
