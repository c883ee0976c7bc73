package util

import (
	"image"
	"image/color"
	"image/draw"
	"runtime"
	"sync"
)

var (
	checkerLight = color.NRGBA{0xe0, 0xe0, 0xe0, 0xff}
	checkerDark  = color.NRGBA{0x40, 0x60, 0xa0, 0xff}
)

// GenChecker draws a size x size checkerboard with cells x cells squares.
func GenChecker(size, cells int) *image.NRGBA {
	Assert(size > 0 && cells > 0, "checker size %d and cell count %d must be positive", size, cells)
	if cells > size {
		cells = size
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	DrawChecker(0, img, size/cells)
	return img
}

// DrawChecker fills dst with squares of cell pixels, one row of squares per
// job, spread over workerCount goroutines. A workerCount <= 0 uses
// GOMAXPROCS.
func DrawChecker(workerCount int, dst draw.Image, cell int) {
	Assert(cell > 0, "checker cell size %d", cell)
	if workerCount <= 0 {
		workerCount = runtime.GOMAXPROCS(0)
	}

	bounds := dst.Bounds()
	rowCh := make(chan int, 8)
	go func() {
		for y := bounds.Min.Y; y < bounds.Max.Y; y += cell {
			rowCh <- y
		}
		close(rowCh)
	}()

	wgroup := new(sync.WaitGroup)
	wgroup.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func() {
			defer wgroup.Done()
			for y0 := range rowCh {
				drawCheckerRow(dst, cell, y0, min(y0+cell, bounds.Max.Y))
			}
		}()
	}
	wgroup.Wait()
}

func drawCheckerRow(dst draw.Image, cell, y0, y1 int) {
	bounds := dst.Bounds()
	for y := y0; y < y1; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := checkerLight
			if ((x-bounds.Min.X)/cell+(y-bounds.Min.Y)/cell)%2 == 1 {
				c = checkerDark
			}
			dst.Set(x, y, c)
		}
	}
}
