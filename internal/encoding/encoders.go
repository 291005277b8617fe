package encoding

import (
	"fmt"
	"math"

	"github.com/ironsheep/boundary-codec/internal/contour"
)

// Token is the encoding of one polygon edge under one scheme.
//
// Every token is a plain value with exported fields; String renders the
// textual form used in reports.
type Token interface {
	Scheme() Scheme
	String() string
}

// Direction is the sense in which the boundary turns at a vertex.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// PolarToken is an edge as length plus angle.
type PolarToken struct {
	Length float64 `json:"length"`
	Angle  float64 `json:"angle"`
}

func (PolarToken) Scheme() Scheme { return Polar }

func (t PolarToken) String() string {
	return fmt.Sprintf("%.1f + cos(%.1f)", t.Length, t.Angle)
}

// EncodePolar encodes v by its length and DirectionwiseAngle(v, XAxis).
func EncodePolar(v contour.Vector) PolarToken {
	return PolarToken{
		Length: contour.VectorLen(v),
		Angle:  contour.DirectionwiseAngle(v, contour.XAxis),
	}
}

// ThreeAttrToken is an edge as length, unsigned turn angle to the next edge,
// and the direction of that turn.
type ThreeAttrToken struct {
	Length    float64   `json:"length"`
	Angle     float64   `json:"angle"`
	Direction Direction `json:"direction"`
}

func (ThreeAttrToken) Scheme() Scheme { return ThreeAttr }

func (t ThreeAttrToken) String() string {
	return fmt.Sprintf("[%.1f \tangle:%.1f %s]", t.Length, t.Angle, t.Direction)
}

// EncodeThreeAttr encodes curr by its length and the turn from curr to next.
//
// The turn DirectionwiseAngle(curr, next) is mapped from [0, 360) to
// (-180, 180]; a positive turn is counter-clockwise, zero or negative is
// clockwise. Angle holds the absolute value.
func EncodeThreeAttr(curr, next contour.Vector) ThreeAttrToken {
	turn := SignedTurn(curr, next)
	dir := Clockwise
	if turn > 0 {
		dir = CounterClockwise
	}
	return ThreeAttrToken{
		Length:    contour.VectorLen(curr),
		Angle:     math.Abs(turn),
		Direction: dir,
	}
}

// SignedTurn returns DirectionwiseAngle(v1, v2) in (-180, 180].
func SignedTurn(v1, v2 contour.Vector) float64 {
	a := contour.DirectionwiseAngle(v1, v2)
	if a > 180 {
		a -= 360
	}
	return a
}

// ThreeDigitToken is an edge direction as an octant code 0-7.
type ThreeDigitToken struct {
	Code int `json:"code"`
}

func (ThreeDigitToken) Scheme() Scheme { return ThreeDigit }

// Binary returns the code as three binary digits.
func (t ThreeDigitToken) Binary() string {
	return fmt.Sprintf("%03b", t.Code)
}

func (t ThreeDigitToken) String() string {
	return fmt.Sprintf("%d: %s", t.Code, t.Binary())
}

// EncodeThreeDigit encodes the direction of v as Octant(DirectionwiseAngle(XAxis, v)).
func EncodeThreeDigit(v contour.Vector) ThreeDigitToken {
	return ThreeDigitToken{Code: Octant(contour.DirectionwiseAngle(contour.XAxis, v))}
}

// Octant maps an angle in [0, 360) to a code 0-7.
//
// Buckets are 45 degrees wide, centred on the axes and diagonals, and
// numbered clockwise from +X:
//
//	0: [337.5, 360) and [0, 22.5)
//	1: [292.5, 337.5)
//	2: [247.5, 292.5)
//	3: [202.5, 247.5)
//	4: [157.5, 202.5)
//	5: [112.5, 157.5)
//	6: [67.5, 112.5)
//	7: [22.5, 67.5)
//
// Each bucket includes its lower bound. Angles outside [0, 360) are reduced
// into it first.
func Octant(angle float64) int {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	// ccw counts buckets counter-clockwise, with bucket 0 starting at 337.5.
	ccw := int(math.Mod(a+22.5, 360) / 45)
	return (8 - ccw) % 8
}

// projections maps each octant code to its projection pair.
var projections = [8][2]int{
	0: {0, 0},
	1: {1, -1},
	2: {0, -1},
	3: {-1, -1},
	4: {-1, 0},
	5: {-1, 1},
	6: {0, 1},
	7: {1, 1},
}

// ProjectionToken is an octant code as its (real, imaginary) projection pair.
type ProjectionToken struct {
	Real int `json:"real"`
	Imag int `json:"imag"`
}

func (ProjectionToken) Scheme() Scheme { return Projection }

func (t ProjectionToken) String() string {
	return fmt.Sprintf("(%d, %d)", t.Real, t.Imag)
}

// Project returns the projection pair for an octant code. Codes outside 0-7
// are reduced modulo 8.
func Project(code int) ProjectionToken {
	p := projections[((code%8)+8)%8]
	return ProjectionToken{Real: p[0], Imag: p[1]}
}

// EncodeProjection encodes v as the projection of its octant code.
func EncodeProjection(v contour.Vector) ProjectionToken {
	return Project(EncodeThreeDigit(v).Code)
}

// ComplexNumberToken is a projection pair rendered as a complex number.
type ComplexNumberToken struct {
	Real int `json:"real"`
	Imag int `json:"imag"`
}

func (ComplexNumberToken) Scheme() Scheme { return ComplexNumber }

// String renders "0", "(Ni)", "(N)" or "(N + Mi)" depending on which parts
// are zero.
func (t ComplexNumberToken) String() string {
	switch {
	case t.Real == 0 && t.Imag == 0:
		return "0"
	case t.Real == 0:
		return fmt.Sprintf("(%di)", t.Imag)
	case t.Imag == 0:
		return fmt.Sprintf("(%d)", t.Real)
	default:
		return fmt.Sprintf("(%d + %di)", t.Real, t.Imag)
	}
}

// Complex returns t as a complex128.
func (t ComplexNumberToken) Complex() complex128 {
	return complex(float64(t.Real), float64(t.Imag))
}

// EncodeComplexNumber encodes v as the complex form of its projection.
func EncodeComplexNumber(v contour.Vector) ComplexNumberToken {
	p := EncodeProjection(v)
	return ComplexNumberToken{Real: p.Real, Imag: p.Imag}
}

// VectorCoordinatesToken is an edge as its endpoints.
type VectorCoordinatesToken struct {
	From contour.Point `json:"from"`
	To   contour.Point `json:"to"`
}

func (VectorCoordinatesToken) Scheme() Scheme { return VectorCoordinates }

func (t VectorCoordinatesToken) String() string {
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// EncodeVectorCoordinates passes the endpoints of v through.
func EncodeVectorCoordinates(v contour.Vector) VectorCoordinatesToken {
	return VectorCoordinatesToken{From: v.From, To: v.To}
}
