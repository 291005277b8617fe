package encoding

import (
	"fmt"
	"sync"

	"github.com/ironsheep/boundary-codec/internal/contour"
)

// Result holds the encoding of a whole polygon under one scheme.
type Result struct {
	Scheme Scheme  `json:"scheme"`
	Tokens []Token `json:"tokens"`
}

// Strings returns the textual form of every token, in edge order.
func (r Result) Strings() []string {
	out := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		out[i] = t.String()
	}
	return out
}

// Encode encodes every edge of p under s, in edge order.
//
// ThreeAttr pairs each edge with its successor; the last edge is paired with
// the first, which is valid because p is closed.
func Encode(s Scheme, p contour.Polygon) ([]Token, error) {
	tokens := make([]Token, len(p))
	for i, v := range p {
		switch s {
		case Polar:
			tokens[i] = EncodePolar(v)
		case ThreeAttr:
			tokens[i] = EncodeThreeAttr(v, p.Next(i))
		case ThreeDigit:
			tokens[i] = EncodeThreeDigit(v)
		case Projection:
			tokens[i] = EncodeProjection(v)
		case ComplexNumber:
			tokens[i] = EncodeComplexNumber(v)
		case VectorCoordinates:
			tokens[i] = EncodeVectorCoordinates(v)
		default:
			return nil, fmt.Errorf("unknown encoding scheme %v", s)
		}
	}
	return tokens, nil
}

// EncodeAll encodes p under each scheme and returns the results in the order
// the schemes were given.
//
// The encoders only read p, so with parallel set each scheme runs in its own
// goroutine over the same polygon. The output is identical either way.
func EncodeAll(p contour.Polygon, schemes []Scheme, parallel bool) ([]Result, error) {
	results := make([]Result, len(schemes))
	errs := make([]error, len(schemes))

	run := func(i int) {
		tokens, err := Encode(schemes[i], p)
		results[i] = Result{Scheme: schemes[i], Tokens: tokens}
		errs[i] = err
	}

	if parallel {
		var wg sync.WaitGroup
		for i := range schemes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range schemes {
			run(i)
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
