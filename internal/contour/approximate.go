package contour

// DefaultStep is the sampling stride used when none is configured.
const DefaultStep = 31

// Approximate samples every step-th point of c and joins the samples into a
// closed polygon.
//
// Edges run from c[i] to c[i+step] for i = 0, step, 2*step, ... while
// i+step < len(c). A final edge joins the end of the last sampled edge back
// to c[0], whether or not step divides len(c) evenly, so the result is
// always closed.
//
// Smaller steps follow the contour more closely and keep more pixel noise;
// larger steps give fewer, longer edges.
//
// Returns ErrInvalidStep if step < 1, and an *InsufficientPointsError if c
// has fewer than 2*step points.
func Approximate(c Contour, step int) (Polygon, error) {
	if step < 1 {
		return nil, ErrInvalidStep
	}
	if len(c) < 2*step {
		return nil, &InsufficientPointsError{Points: len(c), Step: step}
	}

	poly := make(Polygon, 0, len(c)/step+1)
	for i := 0; i+step < len(c); i += step {
		poly = append(poly, Vec(c[i], c[i+step]))
	}

	first, last := poly[0], poly[len(poly)-1]
	poly = append(poly, Vec(last.To, first.From))
	return poly, nil
}
