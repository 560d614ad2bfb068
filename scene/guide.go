package scene

import (
	"github.com/faiface/pixel"
	"github.com/osuushi/separator/internal"
)

// The geometry a renderer draws for an answer, in scene coordinates.
type Guide struct {
	// From the chosen vertex to its foot on the separating line.
	Perpendicular pixel.Line
	// The separating line, clipped to the scene's bounds along its major
	// axis.
	Boundary pixel.Line
}

// The guide lines for the current answer, if there is one.
func (s *Scene) Guide() (Guide, bool) {
	result, ok := s.Answer()
	if !ok {
		return Guide{}, false
	}
	return GuideFor(result, s.bounds), true
}

func GuideFor(result internal.Result, bounds Bounds) Guide {
	line := result.Line()
	foot := line.Foot(result.Vertex)

	var boundary pixel.Line
	if line.IsSteep() {
		// Span the full height; this also covers vertical lines
		boundary = pixel.L(
			pixel.V(line.SolveForX(bounds.Min.Y), bounds.Min.Y),
			pixel.V(line.SolveForX(bounds.Max.Y), bounds.Max.Y),
		)
	} else {
		boundary = pixel.L(
			pixel.V(bounds.Min.X, line.SolveForY(bounds.Min.X)),
			pixel.V(bounds.Max.X, line.SolveForY(bounds.Max.X)),
		)
	}

	return Guide{
		Perpendicular: pixel.L(toVec(result.Vertex), toVec(foot)),
		Boundary:      boundary,
	}
}

func toVec(p internal.Point) pixel.Vec {
	return pixel.V(p.X, p.Y)
}
