package internal

import "math"

// A line in implicit form, A*x + B*y + C = 0.
type Line struct {
	A, B, C float64
}

// Build the implicit line through two points. The coefficients are not
// normalized; Distance divides by the norm instead.
func LineThrough(i, j Point) Line {
	return Line{
		A: j.Y - i.Y,
		B: i.X - j.X,
		C: i.Y*(j.X-i.X) - i.X*(j.Y-i.Y),
	}
}

func (l Line) Norm() float64 {
	return math.Sqrt(l.A*l.A + l.B*l.B)
}

// Perpendicular distance from p to the line. For a line built from two
// coincident points the norm is zero and the result is NaN, which is why the
// search never builds one.
func (l Line) Distance(p Point) float64 {
	return math.Abs(l.A*p.X+l.B*p.Y+l.C) / l.Norm()
}

// Orthogonal projection of p onto the line.
func (l Line) Foot(p Point) Point {
	s := (l.A*p.X + l.B*p.Y + l.C) / (l.A*l.A + l.B*l.B)
	return Point{X: p.X - s*l.A, Y: p.Y - s*l.B}
}

// A line is steep when it is closer to vertical than to horizontal. Steep
// lines are best parameterized by y.
func (l Line) IsSteep() bool {
	return math.Abs(l.B) < math.Abs(l.A)
}

func (l Line) SolveForX(y float64) float64 {
	return -(l.B*y + l.C) / l.A
}

func (l Line) SolveForY(x float64) float64 {
	return -(l.A*x + l.C) / l.B
}

func (r Result) Line() Line {
	return LineThrough(r.First, r.Second)
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Edges in the order of the nested vertex pair loop: (A,B), (A,C), (B,C).
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{
		{t.A, t.B},
		{t.A, t.C},
		{t.B, t.C},
	}
}
