package scene

import (
	"context"
	"testing"

	"github.com/faiface/pixel"
	"github.com/osuushi/separator/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, expected, actual pixel.Vec) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9, "x of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9, "y of %v", actual)
}

func TestScene_Guide(t *testing.T) {
	s, _ := newTestScene()
	_, ok := s.Guide()
	assert.False(t, ok)

	addFarVertical(s)
	_, err := s.Solve(context.Background())
	require.NoError(t, err)

	guide, ok := s.Guide()
	require.True(t, ok)
	assertVec(t, pixel.V(4, 0), guide.Perpendicular.A)
	assertVec(t, pixel.V(10, 0), guide.Perpendicular.B)
	assert.InDelta(t, 6, guide.Perpendicular.Len(), 1e-9)
	assertVec(t, pixel.V(10, -30), guide.Boundary.A)
	assertVec(t, pixel.V(10, 30), guide.Boundary.B)
}

func TestGuideFor_Shallow(t *testing.T) {
	result := internal.Result{
		First:  internal.Point{X: 0, Y: 5},
		Second: internal.Point{X: 10, Y: 7},
		Vertex: internal.Point{X: 5, Y: 0},
	}
	guide := GuideFor(result, testBounds)

	// y = 0.2x + 5
	assertVec(t, pixel.V(-30, -1), guide.Boundary.A)
	assertVec(t, pixel.V(30, 11), guide.Boundary.B)

	// The perpendicular meets the line at a right angle
	direction := guide.Boundary.B.Sub(guide.Boundary.A)
	perpendicular := guide.Perpendicular.B.Sub(guide.Perpendicular.A)
	assert.InDelta(t, 0, direction.Dot(perpendicular), 1e-9)
	assertVec(t, pixel.V(5, 0), guide.Perpendicular.A)
}
