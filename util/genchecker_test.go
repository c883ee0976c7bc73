package util

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenChecker(t *testing.T) {
	img := GenChecker(64, 8)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	assert.Equal(t, checkerLight, img.NRGBAAt(0, 0))
	assert.Equal(t, checkerDark, img.NRGBAAt(8, 0))
	assert.Equal(t, checkerDark, img.NRGBAAt(0, 8))
	assert.Equal(t, checkerLight, img.NRGBAAt(8, 8))
	assert.Equal(t, checkerLight, img.NRGBAAt(63, 63))
}

func TestGenCheckerMoreCellsThanPixels(t *testing.T) {
	img := GenChecker(4, 16)
	assert.Equal(t, checkerLight, img.NRGBAAt(0, 0))
	assert.Equal(t, checkerDark, img.NRGBAAt(1, 0))
}

func TestDrawCheckerWorkers(t *testing.T) {
	serial := image.NewNRGBA(image.Rect(0, 0, 50, 30))
	DrawChecker(1, serial, 7)

	parallel := image.NewNRGBA(image.Rect(0, 0, 50, 30))
	DrawChecker(4, parallel, 7)

	assert.Equal(t, serial.Pix, parallel.Pix)
	assert.Equal(t, checkerDark, serial.NRGBAAt(7, 0))
	assert.Equal(t, checkerLight, serial.NRGBAAt(42, 28))
}

func TestDrawCheckerOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 20, 20))
	DrawChecker(2, img, 5)
	assert.Equal(t, checkerLight, img.NRGBAAt(10, 10))
	assert.Equal(t, checkerDark, img.NRGBAAt(15, 10))
}
