package encoding

import (
	"fmt"
	"strings"
)

// Scheme identifies one of the six edge encodings.
type Scheme int

const (
	// Polar encodes an edge as its length and polar angle.
	Polar Scheme = iota
	// ThreeAttr encodes length, turn angle to the next edge, and turn
	// direction.
	ThreeAttr
	// ThreeDigit encodes the edge direction as a 3-bit octant code.
	ThreeDigit
	// Projection encodes the octant as a pair of unit projections.
	Projection
	// ComplexNumber renders the projection pair as a complex literal.
	ComplexNumber
	// VectorCoordinates passes the edge endpoints through.
	VectorCoordinates
)

var schemeNames = map[Scheme]string{
	Polar:             "polar",
	ThreeAttr:         "three-attr",
	ThreeDigit:        "three-digit",
	Projection:        "projection",
	ComplexNumber:     "complex",
	VectorCoordinates: "coordinates",
}

var schemeTitles = map[Scheme]string{
	Polar:             "Polar coordinates",
	ThreeAttr:         "Length, turn angle and direction",
	ThreeDigit:        "Three-digit octant code",
	Projection:        "Octant projections",
	ComplexNumber:     "Eight complex numbers",
	VectorCoordinates: "Vector endpoint coordinates",
}

func (s Scheme) String() string {
	if n, ok := schemeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// Title returns a human-readable heading for s.
func (s Scheme) Title() string {
	return schemeTitles[s]
}

// AllSchemes returns every scheme, in the order reports list them.
func AllSchemes() []Scheme {
	return []Scheme{ThreeAttr, ThreeDigit, Projection, ComplexNumber, VectorCoordinates, Polar}
}

// ParseScheme returns the scheme with the given name, as printed by
// Scheme.String.
func ParseScheme(name string) (Scheme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range schemeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown encoding scheme %q", name)
}

// ParseSchemes parses a comma-separated list of scheme names. An empty
// string selects AllSchemes.
func ParseSchemes(list string) ([]Scheme, error) {
	if strings.TrimSpace(list) == "" {
		return AllSchemes(), nil
	}
	var out []Scheme
	for _, name := range strings.Split(list, ",") {
		s, err := ParseScheme(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(b []byte) error {
	v, err := ParseScheme(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
