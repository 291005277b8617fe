package contour

import (
	"fmt"
	"math"

	"github.com/ironsheep/boundary-codec/internal/imaging"
)

// Point is an integer coordinate pair with a contour flag.
//
// The flag is computed once, by NewPoint, and never changes. It is not part
// of a point's identity: use Equal to compare points.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`

	contour bool
}

// Pt returns the point (x, y) with the contour flag unset.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// NewPoint returns the grid point (row, col) classified against g with t.
// Points outside the grid are never contour.
func NewPoint(g *imaging.Grid, t imaging.Threshold, row, col int) Point {
	p, ok := g.At(row, col)
	return Point{X: row, Y: col, contour: ok && t.IsContour(p)}
}

// OnContour reports whether the point was classified as contour when it was
// built.
func (p Point) OnContour() bool {
	return p.contour
}

// Equal reports whether p and o have the same coordinates.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) key() [2]int {
	return [2]int{p.X, p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%d:%d] c:%t", p.X, p.Y, p.contour)
}

// Vector is a directed edge between two points.
type Vector struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Vec returns the vector from -> to.
func Vec(from, to Point) Vector {
	return Vector{From: from, To: to}
}

// RadiusVector returns the displacement To - From as a point anchored at the
// origin.
func (v Vector) RadiusVector() Point {
	return Pt(v.To.X-v.From.X, v.To.Y-v.From.Y)
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 {
	d := v.RadiusVector()
	return math.Hypot(float64(d.X), float64(d.Y))
}

// IsDegenerate reports whether v has zero length.
func (v Vector) IsDegenerate() bool {
	return v.From.Equal(v.To)
}

func (v Vector) String() string {
	return fmt.Sprintf("%s -> %s", v.From, v.To)
}

// Contour is an open sequence of points in trace order.
type Contour []Point

// Start returns the first point, or false if c is empty.
func (c Contour) Start() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	return c[0], true
}

// End returns the last point, or false if c is empty.
func (c Contour) End() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	return c[len(c)-1], true
}

// Polygon is a closed sequence of edges: the last edge ends where the first
// begins.
type Polygon []Vector

// Closed reports whether p is non-empty and its last edge ends at the start
// of its first edge.
func (p Polygon) Closed() bool {
	if len(p) == 0 {
		return false
	}
	return p[len(p)-1].To.Equal(p[0].From)
}

// Next returns the edge following edge i, wrapping around at the end.
func (p Polygon) Next(i int) Vector {
	return p[(i+1)%len(p)]
}

// Edges returns the polygon as (from, to) coordinate pairs, in order, for
// consumers that only draw line segments.
func (p Polygon) Edges() [][2]Point {
	edges := make([][2]Point, len(p))
	for i, v := range p {
		edges[i] = [2]Point{v.From, v.To}
	}
	return edges
}

// CheckDegenerate returns a *DegenerateVectorError for the first zero-length
// edge of p, or nil if there is none.
func (p Polygon) CheckDegenerate() error {
	for i, v := range p {
		if v.IsDegenerate() {
			return &DegenerateVectorError{Index: i, At: v.From}
		}
	}
	return nil
}
