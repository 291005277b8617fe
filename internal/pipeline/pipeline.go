// Package pipeline runs the full boundary-encoding chain over one image:
// trace the contour, normalize it to Cartesian coordinates, approximate it
// with a closed polygon, and encode the polygon under each requested scheme.
//
// The pipeline is synchronous. Each stage's error aborts the run and is
// returned wrapped, so callers can still match the contour error kinds with
// errors.Is and errors.As.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/ironsheep/boundary-codec/internal/contour"
	"github.com/ironsheep/boundary-codec/internal/encoding"
	"github.com/ironsheep/boundary-codec/internal/imaging"
)

// Options configures a pipeline run.
type Options struct {
	// Threshold classifies contour pixels.
	Threshold imaging.Threshold

	// Step is the polygon sampling step, in contour points.
	Step int

	// Schemes selects the encodings to produce, in output order. Nil
	// selects encoding.AllSchemes.
	Schemes []encoding.Scheme

	// Region, if set, crops the image before tracing. Only RunImage
	// honours it.
	Region *imaging.Region

	// Parallel runs the encoders concurrently.
	Parallel bool

	// Strict turns a zero-length polygon edge into an error instead of a
	// logged warning.
	Strict bool

	// Logger receives progress and diagnostic messages. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the options used when nothing is configured:
// threshold 200,200,200, step 31, and every scheme.
func DefaultOptions() Options {
	return Options{
		Threshold: imaging.DefaultThreshold,
		Step:      contour.DefaultStep,
		Schemes:   encoding.AllSchemes(),
	}
}

// Result is the output of one pipeline run.
type Result struct {
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Contour   contour.Contour   `json:"contour"`
	Polygon   contour.Polygon   `json:"polygon"`
	Encodings []encoding.Result `json:"encodings"`
}

// Start returns the first point of the normalized contour.
func (r *Result) Start() contour.Point {
	p, _ := r.Contour.Start()
	return p
}

// End returns the last point of the normalized contour.
func (r *Result) End() contour.Point {
	p, _ := r.Contour.End()
	return p
}

// Encoding returns the result for scheme s, if it was requested.
func (r *Result) Encoding(s encoding.Scheme) (encoding.Result, bool) {
	for _, e := range r.Encodings {
		if e.Scheme == s {
			return e, true
		}
	}
	return encoding.Result{}, false
}

// Run executes the pipeline over g.
//
// # Algorithm
//
//  1. Trace the single contour of g under opts.Threshold
//  2. Normalize it from (row, col) to (x, y) with y pointing up
//  3. Approximate it with a closed polygon sampled every opts.Step points
//  4. Check the polygon for zero-length edges
//  5. Encode the polygon under each of opts.Schemes
//
// A zero-length edge is logged and encoded with the angle-0 fallback, unless
// opts.Strict is set, in which case the *contour.DegenerateVectorError is
// returned.
func Run(g *imaging.Grid, opts Options) (*Result, error) {
	logger := opts.logger()

	traced, err := contour.Trace(g, opts.Threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to trace contour: %w", err)
	}

	c := contour.Normalize(traced, g.Height())
	start, _ := c.Start()
	end, _ := c.End()
	logger.Printf("contour: %d points, start %v, end %v", len(c), start, end)

	poly, err := contour.Approximate(c, opts.Step)
	if err != nil {
		return nil, fmt.Errorf("failed to approximate contour: %w", err)
	}
	logger.Printf("polygon: %d edges at step %d", len(poly), opts.Step)

	if err := poly.CheckDegenerate(); err != nil {
		if opts.Strict {
			return nil, fmt.Errorf("failed to approximate contour: %w", err)
		}
		var dv *contour.DegenerateVectorError
		if errors.As(err, &dv) {
			logger.Printf("warning: %v; encoding it with angle 0", dv)
		}
	}

	schemes := opts.Schemes
	if schemes == nil {
		schemes = encoding.AllSchemes()
	}
	encodings, err := encoding.EncodeAll(poly, schemes, opts.Parallel)
	if err != nil {
		return nil, fmt.Errorf("failed to encode polygon: %w", err)
	}

	return &Result{
		Width:     g.Width(),
		Height:    g.Height(),
		Contour:   c,
		Polygon:   poly,
		Encodings: encodings,
	}, nil
}

// RunImage crops img to opts.Region, if set, converts it to a Grid, and runs
// the pipeline over it.
func RunImage(img image.Image, opts Options) (*Result, error) {
	if opts.Region != nil {
		cropped, err := imaging.CropRegion(img, *opts.Region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	g, err := imaging.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return Run(g, opts)
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return o.Logger
}
