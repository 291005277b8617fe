package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var (
	// ErrEmptyGrid is returned when a grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid has no pixels")

	// ErrRaggedGrid is returned when the rows of a grid differ in length.
	ErrRaggedGrid = errors.New("grid rows differ in length")
)

// Pixel is a triple of 8-bit channel intensities.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Grid is a read-only, row-major raster of Pixels with fixed dimensions.
//
// Grid addresses pixels by (row, col), with row 0 at the top of the image.
// This matches the order in which the contour tracer scans an image, and is
// the transpose of the (x, y) convention used by image.Image.
type Grid struct {
	width  int
	height int
	pix    []Pixel
}

// NewGrid builds a Grid from rows of pixels. The input is copied, so later
// changes to rows do not affect the grid.
//
// Returns ErrEmptyGrid if there are no rows or the first row is empty, and
// ErrRaggedGrid if any row length differs from the first.
func NewGrid(rows [][]Pixel) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	pix := make([]Pixel, 0, width*len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d pixels, want %d: %w", r, len(row), width, ErrRaggedGrid)
		}
		pix = append(pix, row...)
	}

	return &Grid{width: width, height: len(rows), pix: pix}, nil
}

// FromImage converts a decoded image into a Grid.
//
// The image is first normalized to non-premultiplied 8-bit RGBA, so channel
// values match what an image editor would report for the pixel. Alpha is
// dropped. The grid origin is the image's Bounds().Min.
//
// Returns ErrEmptyGrid for a zero-area image.
func FromImage(img image.Image) (*Grid, error) {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	if b.Empty() {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    make([]Pixel, b.Dx()*b.Dy()),
	}
	for row := 0; row < g.height; row++ {
		off := row * nrgba.Stride
		for col := 0; col < g.width; col++ {
			i := off + col*4
			g.pix[row*g.width+col] = Pixel{
				R: nrgba.Pix[i],
				G: nrgba.Pix[i+1],
				B: nrgba.Pix[i+2],
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row, col) addresses a pixel of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the pixel at (row, col). The second result is false, and the
// pixel is zero, when the coordinates fall outside the grid.
func (g *Grid) At(row, col int) (Pixel, bool) {
	if !g.InBounds(row, col) {
		return Pixel{}, false
	}
	return g.pix[row*g.width+col], true
}
