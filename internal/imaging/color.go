package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes the color of one pixel and how the contour
// threshold classifies it.
type ColorResult struct {
	X   int      `json:"x"`
	Y   int      `json:"y"`
	Hex string   `json:"hex"` // Hex format "#RRGGBB" (no alpha)
	RGB Pixel    `json:"rgb"`
	HSL HSLColor `json:"hsl"`

	// IsContour reports whether the pixel passes the threshold that was
	// supplied to SampleColor.
	IsContour bool `json:"is_contour"`

	// Threshold is the threshold the pixel was classified against, in the
	// "r,g,b" form ParseThreshold accepts.
	Threshold string `json:"threshold"`
}

// SampleColor extracts the color value at a specific pixel coordinate and
// classifies it against a contour threshold.
//
// It is the calibration aid for choosing a threshold: sample a pixel on the
// drawn contour line and a pixel of the background, then pick a threshold
// that the first passes and the second fails.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//   - t: The threshold to classify the pixel against.
//
// Returns:
//   - *ColorResult: The color at (x, y) and its classification.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// Channels are reported non-premultiplied at 8 bits, the same values
// FromImage stores in a Grid. HSL is computed by go-colorful.
func SampleColor(img image.Image, x, y int, t Threshold) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	p := Pixel{R: c.R, G: c.G, B: c.B}

	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, s, l := cf.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return &ColorResult{
		X:   x,
		Y:   y,
		Hex: strings.ToUpper(cf.Hex()),
		RGB: p,
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
		IsContour: t.IsContour(p),
		Threshold: t.String(),
	}, nil
}
