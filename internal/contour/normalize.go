package contour

// Normalize remaps grid points (row, col) to Cartesian points
// (col, height - row), so that a renderer with a bottom-left origin draws
// the contour upright. The input is not modified; contour flags are kept.
func Normalize(c Contour, height int) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = Point{X: p.Y, Y: height - p.X, contour: p.contour}
	}
	return out
}
