// Package scene holds the mutable side of the problem: the two point sets a
// user builds up, and whether the current sets have been solved.
//
// The solver itself is pure and stateless. A Scene snapshots its points,
// hands them to the solver, and only records the answer if nothing changed
// while the solver was running.
package scene

import (
	"context"
	"image/color"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/jdeal-mediamath/clockwork"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/separator/dbg"
	"github.com/osuushi/separator/internal"
	"golang.org/x/image/colornames"
)

// Which set a point was added to.
type PointSet int

const (
	// The obstacle. Holds at most three points; later additions are dropped.
	TriangleSet PointSet = iota
	// Candidates for the separating line.
	FreeSet
)

func (s PointSet) String() string {
	switch s {
	case TriangleSet:
		return "triangle"
	case FreeSet:
		return "free"
	}
	return "unknown"
}

// Display color of points in the set.
func (s PointSet) Color() color.RGBA {
	if s == TriangleSet {
		return colornames.Crimson
	}
	return colornames.Steelblue
}

// Display color of the points making up an answer.
var AnswerColor = colornames.Gold

// A point as the scene sees it: its position plus the provenance and color
// the solver doesn't care about.
type Tagged struct {
	Pos   internal.Point
	Set   PointSet
	Color color.RGBA
}

type State int

const (
	Unsolved State = iota
	Solved
)

func (s State) String() string {
	if s == Solved {
		return "solved"
	}
	return "unsolved"
}

type Bounds struct {
	Min, Max internal.Point
}

type Scene struct {
	mu       sync.Mutex
	bounds   Bounds
	triangle []Tagged
	free     []Tagged

	state      State
	answer     *internal.Result
	// Bumped on every change to the point sets and on cancel. A solve only
	// lands if the generation it started from is still current.
	generation uint64

	opts    internal.Options
	workers int
	rng     *rand.Rand
	clock   clockwork.Clock
	logger  *log.Logger
	colors  aurora.Aurora
}

type Option func(*Scene)

func WithSolverOptions(opts internal.Options) Option {
	return func(s *Scene) {
		s.opts = opts
	}
}

func WithWorkers(workers int) Option {
	return func(s *Scene) {
		s.workers = workers
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Scene) {
		s.rng = rng
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(s *Scene) {
		s.clock = clock
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Scene) {
		s.logger = logger
	}
}

// Color log output with ANSI escapes. On by default.
func WithColor(enabled bool) Option {
	return func(s *Scene) {
		s.colors = aurora.NewAurora(enabled)
	}
}

func New(bounds Bounds, opts ...Option) *Scene {
	s := &Scene{
		bounds:  bounds,
		workers: 1,
		clock:   clockwork.NewRealClock(),
		logger:  log.New(os.Stderr, "", log.LstdFlags),
		colors:  aurora.NewAurora(true),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

func (s *Scene) Bounds() Bounds {
	return s.bounds
}

// Add a point to one of the sets. Any previous answer is discarded.
func (s *Scene) AddPoint(pos internal.Point, set PointSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addPointLocked(pos, set)
}

func (s *Scene) addPointLocked(pos internal.Point, set PointSet) {
	s.invalidateLocked()
	point := Tagged{Pos: pos, Set: set, Color: set.Color()}
	if set == TriangleSet {
		if len(s.triangle) >= 3 {
			s.logger.Printf("triangle is full, point %s %v %s", dbg.Name(pos), pos, s.colors.Yellow("dropped"))
			return
		}
		s.triangle = append(s.triangle, point)
	} else {
		s.free = append(s.free, point)
	}
	s.logger.Printf("point %s %v added to %s set", dbg.Name(pos), pos, s.colors.Cyan(set))
}

// The number of cells per axis on the grid random points are picked from.
const randomGridSize = 30

// Add n random points. Each lands on a cell of a 30×30 grid spread over the
// scene's bounds, and goes to either set with equal odds.
func (s *Scene) AddRandomPoints(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	width := s.bounds.Max.X - s.bounds.Min.X
	height := s.bounds.Max.Y - s.bounds.Min.Y
	for i := 0; i < n; i++ {
		cellX := s.rng.Intn(randomGridSize)
		cellY := s.rng.Intn(randomGridSize)
		pos := internal.Point{
			X: s.bounds.Min.X + width*float64(cellX)/(randomGridSize-1),
			Y: s.bounds.Min.Y + height*float64(cellY)/(randomGridSize-1),
		}
		set := FreeSet
		if s.rng.Intn(2) == 0 {
			set = TriangleSet
		}
		s.addPointLocked(pos, set)
	}
}

// Remove every point.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triangle = nil
	s.free = nil
	s.invalidateLocked()
	s.logger.Printf("scene %s", s.colors.Yellow("cleared"))
}

// Drop the answer, keeping the points. A solve still running will not land.
func (s *Scene) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked()
	s.logger.Printf("solution %s", s.colors.Yellow("cancelled"))
}

func (s *Scene) invalidateLocked() {
	s.generation++
	s.state = Unsolved
	s.answer = nil
}

func (s *Scene) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scene) IsSolved() bool {
	return s.State() == Solved
}

// The current answer. The second return value is false when the scene is
// unsolved, or solved with no valid separating line.
func (s *Scene) Answer() (internal.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Solved || s.answer == nil {
		return internal.Result{}, false
	}
	return *s.answer, true
}

// Copies of the point sets.
func (s *Scene) Points() (triangle, free []Tagged) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Tagged(nil), s.triangle...), append([]Tagged(nil), s.free...)
}

// Positions only, in the shape the solver takes.
func (s *Scene) Positions() (triangle, free []internal.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return positions(s.triangle), positions(s.free)
}

func positions(points []Tagged) []internal.Point {
	result := make([]internal.Point, len(points))
	for i, p := range points {
		result[i] = p.Pos
	}
	return result
}

// Solve the current point sets. The scene is not locked while the solver
// runs, so points may be added meanwhile; in that case (or after Cancel) the
// result is thrown away and the scene stays unsolved.
//
// Finding no valid line still counts as solved. The returned bool reports
// whether the solve landed.
func (s *Scene) Solve(ctx context.Context) (bool, error) {
	s.mu.Lock()
	triangle, free := positions(s.triangle), positions(s.free)
	generation := s.generation
	opts, workers := s.opts, s.workers
	s.mu.Unlock()

	start := s.clock.Now()
	var (
		result internal.Result
		found  bool
		err    error
	)
	func() {
		defer func() {
			if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
				err = recoveredErr
			}
		}()
		result, found, err = internal.SolveConcurrent(ctx, free, triangle, opts, workers)
	}()
	if err != nil {
		s.logger.Printf("solve %s: %v", s.colors.Red("failed"), err)
		return false, err
	}
	elapsed := s.clock.Now().Sub(start)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		s.logger.Printf("scene changed during solve, result %s", s.colors.Yellow("discarded"))
		return false, nil
	}
	s.state = Solved
	if !found {
		s.answer = nil
		s.logger.Printf("%s after %v", s.colors.Red("no valid separating line"), elapsed)
		return true, nil
	}
	s.answer = &result
	s.logger.Printf("%s through %s %v and %s %v, closest to %s %v at %v after %v",
		s.colors.Green("separating line"),
		dbg.Name(result.First), result.First,
		dbg.Name(result.Second), result.Second,
		dbg.Name(result.Vertex), result.Vertex,
		s.colors.Bold(result.Distance), elapsed)
	return true, nil
}
