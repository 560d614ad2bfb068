package internal

import "math"

// The tolerance used when a caller asks for tolerant comparison without
// picking a value.
const Tolerance = 1e-9

// Floating point comparison used by the crossing test and the search.
//
// The zero value compares exactly, which is the historical behavior: two
// x values are "vertical" only when bitwise equal, and two slopes are parallel
// only when bitwise equal. A positive Epsilon makes equality tolerance based
// and widens every range check by Epsilon on both sides.
type Comparer struct {
	Epsilon float64
}

var Exact = Comparer{}

func Tolerant(epsilon float64) Comparer {
	return Comparer{Epsilon: epsilon}
}

func (c Comparer) validate() {
	if math.IsNaN(c.Epsilon) || c.Epsilon < 0 {
		fatalf("negative tolerance %v", c.Epsilon)
	}
}

func (c Comparer) Equal(a, b float64) bool {
	if c.Epsilon == 0 {
		return a == b
	}
	return math.Abs(a-b) < c.Epsilon
}

// Check whether v lies in the closed range spanned by bound1 and bound2, in
// either order.
func (c Comparer) Within(v, bound1, bound2 float64) bool {
	lo := math.Min(bound1, bound2)
	hi := math.Max(bound1, bound2)
	return v >= lo-c.Epsilon && v <= hi+c.Epsilon
}

func (c Comparer) SamePoint(p, q Point) bool {
	return c.Equal(p.X, q.X) && c.Equal(p.Y, q.Y)
}

// Put two points in lexicographic order (x, then y). Used to make computations
// on an edge independent of the order its endpoints were given in.
func ordered(a, b Point) (Point, Point) {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		return b, a
	}
	return a, b
}

// Slope and intercept of the non-vertical line through i and j, with the
// intercept taken at j.
func slopeIntercept(i, j Point) (k, p float64) {
	k = (j.Y - i.Y) / (j.X - i.X)
	p = j.Y - k*j.X
	return k, p
}
