package internal

import "math"

// Check whether the infinite line through i and j crosses the edge from a to b.
//
// This is a narrow test, not a general intersection routine. It works out the
// coordinate at which the two lines meet and checks that coordinate against
// the edge's axis aligned span. There are three cases:
//
// 1. The line is vertical. If the edge is vertical too, they cross only when
// they share an x. Otherwise the line crosses when its x falls in the edge's x
// span.
//
// 2. The edge is vertical. The line crosses when its y at the edge's x falls
// in the edge's y span.
//
// 3. Neither is vertical. Parallel lines (coincident ones included) never
// cross. Otherwise the line crosses when the x of the intersection falls in
// the edge's x span.
//
// A degenerate edge (a == b) reports whether that single point lies on the
// line.
func Crosses(i, j, a, b Point, cmp Comparer) bool {
	return crosses(i, j, a, b, cmp, false)
}

// Like Crosses, but the line is bounded by i and j as well, so this answers
// whether segment (i, j) crosses segment (a, b).
func CrossesSegment(i, j, a, b Point, cmp Comparer) bool {
	return crosses(i, j, a, b, cmp, true)
}

func crosses(i, j, a, b Point, cmp Comparer, bounded bool) bool {
	// Every computation below is done on the ordered edge, so swapping the
	// endpoints can't change a single bit of the answer.
	a, b = ordered(a, b)

	if cmp.Equal(i.X, j.X) {
		if cmp.Equal(a.X, b.X) {
			if !cmp.Equal(a.X, i.X) {
				return false
			}
			return !bounded || spansOverlap(i.Y, j.Y, a.Y, b.Y, cmp)
		}
		if !cmp.Within(j.X, a.X, b.X) {
			return false
		}
		if !bounded {
			return true
		}
		k, p := slopeIntercept(a, b)
		return cmp.Within(k*j.X+p, i.Y, j.Y)
	}

	if cmp.Equal(a.X, b.X) {
		k, p := slopeIntercept(i, j)
		yCross := k*a.X + p
		if !cmp.Within(yCross, a.Y, b.Y) {
			return false
		}
		return !bounded || cmp.Within(a.X, i.X, j.X)
	}

	k1, p1 := slopeIntercept(i, j)
	k2, p2 := slopeIntercept(a, b)
	if cmp.Equal(k1, k2) {
		return false
	}
	xCross := (p2 - p1) / (k1 - k2)
	if !cmp.Within(xCross, a.X, b.X) {
		return false
	}
	return !bounded || cmp.Within(xCross, i.X, j.X)
}

// Check whether two closed ranges, each given by its bounds in either order,
// overlap.
func spansOverlap(s1, e1, s2, e2 float64, cmp Comparer) bool {
	lo1, hi1 := math.Min(s1, e1), math.Max(s1, e1)
	lo2, hi2 := math.Min(s2, e2), math.Max(s2, e2)
	return lo1 <= hi2+cmp.Epsilon && lo2 <= hi1+cmp.Epsilon
}

// Check the line through i and j against every edge of the triangle.
func (t Triangle) CrossedBy(i, j Point, opts Options) bool {
	test := opts.crossingTest()
	for _, edge := range t.Edges() {
		if test(i, j, edge.Start, edge.End, opts.Comparer) {
			return true
		}
	}
	return false
}
