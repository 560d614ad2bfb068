package internal

// Points are plain values. Nothing in the solver ever writes to a point it was
// given, so callers can hand over their own slices without copying.
type Point struct {
	X float64
	Y float64
}

// A bounded segment. For a triangle edge this is the edge itself; for a
// candidate pair of free points it is just the two points the (infinite) line
// passes through.
type Segment struct {
	Start Point
	End   Point
}

type Triangle struct {
	A, B, C Point
}

// The outcome of a search: two free points defining the separating line, the
// triangle vertex closest to it, and that vertex's distance to the line.
//
// The indexes refer back into the slices passed to Solve.
type Result struct {
	First, Second Point
	Vertex        Point
	Distance      float64

	FirstIndex, SecondIndex, VertexIndex int
}

// How the search tracks the distance it compares candidates against.
type ThresholdPolicy int

const (
	// The threshold follows the best distance seen so far. This is the usual
	// running minimum, and finds the globally closest vertex.
	RunningMinimum ThresholdPolicy = iota
	// The threshold is fixed at the distance from the first surviving pair to
	// the first triangle vertex, and never refreshed. Every later combination
	// strictly below it replaces the current best, so the last such
	// combination wins. Kept so that previously published answers can be
	// reproduced.
	StaticThreshold
)

func (p ThresholdPolicy) String() string {
	switch p {
	case RunningMinimum:
		return "running"
	case StaticThreshold:
		return "static"
	}
	return "unknown"
}

type Options struct {
	Policy   ThresholdPolicy
	Comparer Comparer
	// Require the crossing to also lie within the span of the two free points,
	// turning the test into a bounded segment/segment check.
	BoundedLine bool
}

func (o Options) validate() {
	switch o.Policy {
	case RunningMinimum, StaticThreshold:
	default:
		fatalf("unknown threshold policy %d", int(o.Policy))
	}
	o.Comparer.validate()
}

// The crossing test selected by the options.
func (o Options) crossingTest() func(i, j, a, b Point, cmp Comparer) bool {
	if o.BoundedLine {
		return CrossesSegment
	}
	return Crosses
}
