package contour

import (
	"github.com/ironsheep/boundary-codec/internal/imaging"
)

// Neighbourhood is an ordered list of the 8 grid offsets (row, col) a walk
// tries from each point.
type Neighbourhood [8][2]int

var (
	// EdgeFirst tries the 4 edge neighbours clockwise from south, then the 4
	// corner neighbours clockwise from south-west. A walk along a straight
	// side never cuts a corner, so axis-aligned rings trace completely.
	EdgeFirst = Neighbourhood{
		{1, 0},   // S
		{0, -1},  // W
		{-1, 0},  // N
		{0, 1},   // E
		{1, -1},  // SW
		{-1, -1}, // NW
		{-1, 1},  // NE
		{1, 1},   // SE
	}

	// Compass tries all 8 neighbours clockwise from south. At the corner of
	// a square ring it takes the diagonal shortcut and strands the corner
	// pixel, which ends the walk early.
	Compass = Neighbourhood{
		{1, 0},   // S
		{1, -1},  // SW
		{0, -1},  // W
		{-1, -1}, // NW
		{-1, 0},  // N
		{-1, 1},  // NE
		{0, 1},   // E
		{1, 1},   // SE
	}
)

// Trace walks the contour of g using the EdgeFirst neighbourhood.
func Trace(g *imaging.Grid, t imaging.Threshold) (Contour, error) {
	return TraceWith(g, t, EdgeFirst)
}

// TraceWith walks the contour of g, trying neighbours in order n.
//
// The seed is the first pixel, scanning rows top to bottom and columns left
// to right, that t classifies as contour. From each point the walk moves to
// the first neighbour in n that is contour and not yet part of the result.
// It stops when no neighbour qualifies.
//
// Returns the points in walk order, in grid space (X = row, Y = col). Each
// point appears once. Returns a *NoContourFoundError if no pixel passes t.
//
// # Complexity
//
// O(n) in the number of contour points: visited membership is a map keyed by
// coordinate, and every step inspects at most 8 neighbours.
func TraceWith(g *imaging.Grid, t imaging.Threshold, n Neighbourhood) (Contour, error) {
	mask := t.Mask(g)
	w, h := g.Width(), g.Height()

	isContour := func(row, col int) bool {
		return g.InBounds(row, col) && mask[row*w+col]
	}

	seed, found := Point{}, false
	for i, on := range mask {
		if on {
			seed, found = NewPoint(g, t, i/w, i%w), true
			break
		}
	}
	if !found {
		return nil, &NoContourFoundError{Width: w, Height: h, Threshold: t.String()}
	}

	var result Contour
	visited := make(map[[2]int]struct{})
	curr := seed

	for {
		result = append(result, curr)
		visited[curr.key()] = struct{}{}

		next, ok := Point{}, false
		for _, d := range n {
			row, col := curr.X+d[0], curr.Y+d[1]
			if !isContour(row, col) {
				continue
			}
			if _, seen := visited[[2]int{row, col}]; seen {
				continue
			}
			next, ok = NewPoint(g, t, row, col), true
			break
		}
		if !ok {
			break
		}
		curr = next
	}

	return result, nil
}
