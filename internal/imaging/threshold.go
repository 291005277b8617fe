package imaging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Threshold is the per-channel lower bound a pixel must reach to be part of
// the contour. It classifies pixels the same way for every caller; there is
// no hidden image state behind it.
type Threshold Pixel

// DefaultThreshold classifies light-gray and brighter pixels as contour.
var DefaultThreshold = Threshold{R: 200, G: 200, B: 200}

// IsContour reports whether every channel of p is greater than or equal to
// the matching channel of t.
//
// Pure white always passes. Callers should choose t to match the colour the
// source image actually uses for its contour line.
func (t Threshold) IsContour(p Pixel) bool {
	return p.R >= t.R && p.G >= t.G && p.B >= t.B
}

// Mask classifies every pixel of g once and returns the result row-major,
// indexed as row*g.Width()+col.
func (t Threshold) Mask(g *Grid) []bool {
	mask := make([]bool, len(g.pix))
	for i, p := range g.pix {
		mask[i] = t.IsContour(p)
	}
	return mask
}

// Count returns the number of pixels of g that classify as contour.
func (t Threshold) Count(g *Grid) int {
	n := 0
	for _, p := range g.pix {
		if t.IsContour(p) {
			n++
		}
	}
	return n
}

// String renders t as "r,g,b", the same form ParseThreshold accepts.
func (t Threshold) String() string {
	return fmt.Sprintf("%d,%d,%d", t.R, t.G, t.B)
}

// ParseThreshold parses a contour threshold.
//
// Accepted forms:
//   - "200": the same level for all three channels
//   - "200,180,160": red, green and blue levels
//   - "#C8C8C8": a hex colour, parsed channel by channel
func ParseThreshold(s string) (Threshold, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Threshold{}, fmt.Errorf("empty threshold")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Threshold{}, fmt.Errorf("invalid threshold colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return Threshold{R: r, G: g, B: b}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != 3 {
		return Threshold{}, fmt.Errorf("invalid threshold %q: want 1 or 3 levels, got %d", s, len(parts))
	}

	levels := make([]uint8, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Threshold{}, fmt.Errorf("invalid threshold level %q: %w", part, err)
		}
		levels[i] = uint8(v)
	}

	if len(levels) == 1 {
		return Threshold{R: levels[0], G: levels[0], B: levels[0]}, nil
	}
	return Threshold{R: levels[0], G: levels[1], B: levels[2]}, nil
}
