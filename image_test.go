package gltut

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 128})
	return img
}

func TestLoadImagePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Rect)
	assert.Equal(t, 12, img.Stride)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 255, 0, 128}, img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, img.NRGBAAt(2, 1))
}

func TestDecodeImageBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(1, 1, color.RGBA{10, 20, 30, 255})

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, src))

	img, err := DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(1, 1))
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 0).A)
}

func TestDecodeImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(-2, -2, 2, 2))
	src.SetNRGBA(-2, -2, color.NRGBA{1, 2, 3, 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Point{}, img.Rect.Min)
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, img.NRGBAAt(0, 0))
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.png")
}

func TestLoadImageGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadImage(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "garbage.png")
}
