// Command gentexture writes the checkerboard texture the texture tutorials
// load by default.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/vktec/gltut/logx"
	"github.com/vktec/gltut/util"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, errors.Errorf("unsupported image format %q", ext)
	}
}

func write(path string, img image.Image) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()
	return errors.Wrapf(encode(f, img), "encode %s", path)
}

func main() {
	out := flag.String("o", "data/test.png", "output `file` (.png, .bmp or .tiff)")
	size := flag.Int("size", 256, "image width and height in pixels")
	cells := flag.Int("cells", 8, "checker cells along each side")
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-o file] [-size n] [-cells n]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	logx.Setup(false)

	if *size <= 0 || *cells <= 0 {
		fmt.Fprintln(os.Stderr, "size and cells must be positive")
		os.Exit(2)
	}

	img := util.GenChecker(*size, *cells)
	if err := write(*out, img); err != nil {
		logx.Fatal("gentexture", err)
	}

	info, err := os.Stat(*out)
	if err != nil {
		logx.Fatal("gentexture", err)
	}
	slog.Info("wrote texture", "path", *out, "size", humanize.Bytes(uint64(info.Size())))
}
