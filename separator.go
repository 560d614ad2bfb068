// A small solver for a planar separation problem.
//
// Given a set of free points and a triangle, it finds two free points whose
// line does not cross any edge of the triangle, and which comes as close as
// possible to the triangle, measured at the triangle vertex nearest to the
// line.
//
// The crossing test is deliberately narrow. It treats the line through the two
// free points as infinite and checks the crossing coordinate against each
// edge's axis aligned span. See Crosses.
package separator

import "github.com/osuushi/separator/internal"

type Point = internal.Point
type Result = internal.Result
type Options = internal.Options
type ThresholdPolicy = internal.ThresholdPolicy
type Comparer = internal.Comparer

const (
	RunningMinimum  = internal.RunningMinimum
	StaticThreshold = internal.StaticThreshold
)

// Check whether the infinite line through linePoint1 and linePoint2 crosses
// the edge between edgePoint1 and edgePoint2. Coordinates are compared
// exactly.
func Crosses(linePoint1, linePoint2, edgePoint1, edgePoint2 Point) bool {
	return internal.Crosses(linePoint1, linePoint2, edgePoint1, edgePoint2, internal.Exact)
}

type Option func(*Options)

// Choose how the search keeps its distance threshold. The default is
// RunningMinimum.
func WithPolicy(policy ThresholdPolicy) Option {
	return func(o *Options) {
		o.Policy = policy
	}
}

// Compare coordinates with the given tolerance instead of exactly. Zero means
// exact.
func WithTolerance(epsilon float64) Option {
	return func(o *Options) {
		o.Comparer = internal.Tolerant(epsilon)
	}
}

// Treat the candidate line as the segment between its two free points.
func WithBoundedLine() Option {
	return func(o *Options) {
		o.BoundedLine = true
	}
}

// Find the free point pair whose line comes closest to the triangle without
// crossing it.
//
// A nil result with a nil error means there is no valid separating line: there
// were fewer than two free points, the triangle didn't have exactly three
// vertices, or every line crossed it. An error is only returned for invalid
// options.
func Solve(freePoints, triangleVertices []Point, opts ...Option) (result *Result, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	r, ok := internal.Solve(freePoints, triangleVertices, options)
	if !ok {
		return nil, nil
	}
	return &r, nil
}
