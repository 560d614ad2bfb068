package internal

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// A half open range of first-point indexes. Scanning rows [start, end) visits
// every pair (i, j) with start <= i < end and j > i, in the same order Solve
// does.
type rowRange struct {
	start, end int
}

// Split n rows into at most count contiguous, non-empty ranges.
func splitRows(n, count int) []rowRange {
	if count < 1 {
		count = 1
	}
	if count > n {
		count = n
	}
	ranges := make([]rowRange, 0, count)
	start := 0
	for c := 0; c < count; c++ {
		// Spread the remainder over the first ranges
		size := n / count
		if c < n%count {
			size++
		}
		ranges = append(ranges, rowRange{start, start + size})
		start += size
	}
	return ranges
}

// What one range of rows contributed to the search.
type partial struct {
	result Result
	found  bool
}

// Solve with the rows spread over several goroutines. The answer is identical
// to Solve's for the same input, under either policy, because partial results
// are merged back in enumeration order.
//
// The search is abandoned as soon as ctx is done, and ctx.Err() is returned.
func SolveConcurrent(ctx context.Context, free []Point, triangle []Point, opts Options, workers int) (Result, bool, error) {
	opts.validate()
	s, ok := newSearcher(free, triangle, opts)
	if !ok {
		return Result{}, false, ctx.Err()
	}
	// The last point has no partner after it, so it never starts a row
	ranges := splitRows(len(free)-1, workers)

	switch opts.Policy {
	case StaticThreshold:
		return s.solveStatic(ctx, ranges)
	default:
		return s.solveRunning(ctx, ranges)
	}
}

// Run scan over every range at once, collecting one partial per range.
func (s *searcher) scanAll(ctx context.Context, ranges []rowRange, scan func(context.Context, rowRange) (partial, error)) ([]partial, error) {
	partials := make([]partial, len(ranges))
	g, ctx := errgroup.WithContext(ctx)
	for n, rows := range ranges {
		n, rows := n, rows
		g.Go(func() error {
			var err error
			partials[n], err = scan(ctx, rows)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

func (s *searcher) solveRunning(ctx context.Context, ranges []rowRange) (Result, bool, error) {
	partials, err := s.scanAll(ctx, ranges, s.minimum)
	if err != nil {
		return Result{}, false, err
	}
	var best partial
	for _, p := range partials {
		if !p.found {
			continue
		}
		// Strict comparison keeps the earlier range on ties
		if !best.found || p.result.Distance < best.result.Distance {
			best = p
		}
	}
	return best.result, best.found, nil
}

// The static threshold depends on the very first surviving pair, so this runs
// in two passes: find that pair, then find the last combination below its
// distance.
func (s *searcher) solveStatic(ctx context.Context, ranges []rowRange) (Result, bool, error) {
	firsts, err := s.scanAll(ctx, ranges, s.firstSurvivor)
	if err != nil {
		return Result{}, false, err
	}
	var first partial
	for _, p := range firsts {
		if p.found {
			first = p
			break
		}
	}
	if !first.found {
		return Result{}, false, nil
	}

	threshold := first.result.Distance
	lasts, err := s.scanAll(ctx, ranges, func(ctx context.Context, rows rowRange) (partial, error) {
		return s.lastBelow(ctx, rows, threshold)
	})
	if err != nil {
		return Result{}, false, err
	}
	for n := len(lasts) - 1; n >= 0; n-- {
		if lasts[n].found {
			return lasts[n].result, true, nil
		}
	}
	return first.result, true, nil
}

// The first combination in the range reaching the smallest distance.
func (s *searcher) minimum(ctx context.Context, rows rowRange) (partial, error) {
	var best partial
	err := s.scan(ctx, rows, func(i, j int, line Line) bool {
		for v := range s.vertices {
			distance := line.Distance(s.vertices[v])
			if !best.found || distance < best.result.Distance {
				best = partial{s.result(i, j, v, line), true}
			}
		}
		return true
	})
	return best, err
}

// The first surviving pair in the range, scored against the first vertex.
func (s *searcher) firstSurvivor(ctx context.Context, rows rowRange) (partial, error) {
	var first partial
	err := s.scan(ctx, rows, func(i, j int, line Line) bool {
		first = partial{s.result(i, j, 0, line), true}
		return false
	})
	return first, err
}

// The last combination in the range strictly below threshold.
func (s *searcher) lastBelow(ctx context.Context, rows rowRange, threshold float64) (partial, error) {
	var last partial
	err := s.scan(ctx, rows, func(i, j int, line Line) bool {
		for v := range s.vertices {
			if line.Distance(s.vertices[v]) < threshold {
				last = partial{s.result(i, j, v, line), true}
			}
		}
		return true
	})
	return last, err
}

// Visit every eligible pair in the range until visit returns false. The
// context is checked once per row.
func (s *searcher) scan(ctx context.Context, rows rowRange, visit func(i, j int, line Line) bool) error {
	for i := rows.start; i < rows.end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := i + 1; j < len(s.free); j++ {
			line, ok := s.candidate(i, j)
			if !ok {
				continue
			}
			if !visit(i, j, line) {
				return nil
			}
		}
	}
	return nil
}
