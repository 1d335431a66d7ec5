package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

const (
	MaxColumns = 10
	MaxRows    = 7
	// SheetCapacity is how many real cards fit on a full sheet; the last cell is reserved.
	SheetCapacity = MaxColumns*MaxRows - 1
)

var (
	ErrTooManyColumns = errors.New("too many sheet columns")
	ErrTooManyRows    = errors.New("too many sheet rows")
	ErrTooManyImages  = errors.New("too many images for sheet")
	ErrNoImages       = errors.New("no images to pack")
	ErrCardSize       = errors.New("card images differ in size")
)

var sheetBackground = color.NRGBA{A: 0xff}

// Capacity is how many real cards a sheet columns wide can hold.
func Capacity(columns int) int {
	if columns <= 0 {
		return 0
	}
	return min(columns, MaxColumns)*MaxRows - 1
}

// Grid sizes a sheet for n cards: columns wide and tall enough to keep one cell free for
// the hidden card.
func Grid(n, columns int) (cols, rows int) {
	cols = min(columns, MaxColumns)
	if cols <= 0 {
		return 0, 0
	}
	return cols, (n + cols) / cols
}

// Pack tiles images row-major onto a cols×rows sheet and puts hidden in the bottom-right
// cell. All images must share one size; hidden is resized to it when needed.
func Pack(images []image.Image, hidden image.Image, cols, rows int) (*image.NRGBA, error) {
	switch {
	case cols > MaxColumns:
		return nil, fmt.Errorf("%d columns: %w", cols, ErrTooManyColumns)
	case rows > MaxRows:
		return nil, fmt.Errorf("%d rows: %w", rows, ErrTooManyRows)
	case len(images) == 0:
		return nil, ErrNoImages
	case cols < 1 || rows < 1 || len(images) > cols*rows-1:
		return nil, fmt.Errorf("%d images on %dx%d: %w", len(images), cols, rows, ErrTooManyImages)
	}

	size := images[0].Bounds().Size()
	for i, img := range images {
		if img.Bounds().Size() != size {
			return nil, fmt.Errorf("image %d is %v, want %v: %w", i, img.Bounds().Size(), size, ErrCardSize)
		}
	}
	if hidden.Bounds().Size() != size {
		hidden = imaging.Resize(hidden, size.X, size.Y, imaging.Lanczos)
	}

	sheet := imaging.New(cols*size.X, rows*size.Y, sheetBackground)
	paste := func(img image.Image, cell int) {
		at := image.Pt((cell%cols)*size.X, (cell/cols)*size.Y)
		r := image.Rectangle{Min: at, Max: at.Add(size)}
		draw.Draw(sheet, r, img, img.Bounds().Min, draw.Over)
	}
	for i, img := range images {
		paste(img, i)
	}
	paste(hidden, cols*rows-1)

	return sheet, nil
}
