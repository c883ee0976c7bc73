package gltut

import (
	"image"
	"image/draw"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage reads and decodes an image file into tightly packed,
// non-premultiplied RGBA8 rows, top row first.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load image")
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load image %q", path)
	}
	return img, nil
}

func DecodeImage(r io.Reader) (*image.NRGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Stride == 4*nrgba.Rect.Dx() && nrgba.Rect.Min == (image.Point{}) {
		return nrgba, nil
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	if dst.Rect.Empty() {
		return nil, errors.Errorf("empty %s image", format)
	}
	return dst, nil
}
