package internal

// Find the pair of free points whose line does not cross the triangle and
// comes closest to it.
//
// Every unordered pair of free points is tried once, in index order. A pair
// whose line crosses any triangle edge is thrown out. The rest are scored
// against each triangle vertex by perpendicular distance, and the policy in
// opts decides which combination wins (see ThresholdPolicy). Ties go to the
// combination found first.
//
// The second return value is false when nothing survives, which includes the
// case of fewer than two free points or a triangle that doesn't have exactly
// three vertices. That is a normal outcome, not an error.
//
// Pairs of coincident free points are skipped, since they don't define a line.
func Solve(free []Point, triangle []Point, opts Options) (Result, bool) {
	opts.validate()
	s, ok := newSearcher(free, triangle, opts)
	if !ok {
		return Result{}, false
	}

	var (
		best      Result
		threshold float64
		found     bool
	)
	for i := range free {
		for j := i + 1; j < len(free); j++ {
			line, ok := s.candidate(i, j)
			if !ok {
				continue
			}

			if !found {
				best = s.result(i, j, 0, line)
				threshold = best.Distance
				found = true
			}

			for v := range s.vertices {
				distance := line.Distance(s.vertices[v])
				if distance < threshold {
					best = s.result(i, j, v, line)
					if opts.Policy == RunningMinimum {
						threshold = distance
					}
				}
			}
		}
	}
	return best, found
}

// Shared state for a search over one input snapshot. It is read only once
// built, so chunks of rows can be scanned from several goroutines.
type searcher struct {
	free     []Point
	triangle Triangle
	vertices [3]Point
	opts     Options
}

func newSearcher(free []Point, triangle []Point, opts Options) (*searcher, bool) {
	if len(triangle) != 3 || len(free) < 2 {
		return nil, false
	}
	t := Triangle{triangle[0], triangle[1], triangle[2]}
	return &searcher{
		free:     free,
		triangle: t,
		vertices: t.Vertices(),
		opts:     opts,
	}, true
}

// Return the line through free points i and j, if that pair is eligible: the
// points must be distinct and the line must not cross the triangle.
func (s *searcher) candidate(i, j int) (Line, bool) {
	p, q := s.free[i], s.free[j]
	if s.opts.Comparer.SamePoint(p, q) {
		return Line{}, false
	}
	if s.triangle.CrossedBy(p, q, s.opts) {
		return Line{}, false
	}
	return LineThrough(p, q), true
}

func (s *searcher) result(i, j, v int, line Line) Result {
	return Result{
		First:       s.free[i],
		Second:      s.free[j],
		Vertex:      s.vertices[v],
		Distance:    line.Distance(s.vertices[v]),
		FirstIndex:  i,
		SecondIndex: j,
		VertexIndex: v,
	}
}
