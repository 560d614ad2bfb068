package internal

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrosses(t *testing.T) {
	cases := []struct {
		name       string
		i, j, a, b Point
		expected   bool
	}{
		{"diagonal through hypotenuse", Point{-1, -1}, Point{5, 5}, Point{4, 0}, Point{0, 4}, true},
		{"diagonal through far edge", Point{10, 10}, Point{11, 11}, Point{4, 0}, Point{0, 4}, true},
		{"vertical line, vertical edge, same x", Point{0, 10}, Point{0, 20}, Point{0, 0}, Point{0, 4}, true},
		{"vertical line, vertical edge, other x", Point{1, 10}, Point{1, 20}, Point{0, 0}, Point{0, 4}, false},
		{"vertical line inside edge span", Point{2, 10}, Point{2, 20}, Point{0, 0}, Point{4, 0}, true},
		{"vertical line on edge span bound", Point{4, 10}, Point{4, 20}, Point{0, 0}, Point{4, 0}, true},
		{"vertical line outside edge span", Point{10, 10}, Point{10, 20}, Point{0, 0}, Point{4, 0}, false},
		{"vertical edge hit", Point{-1, 1}, Point{1, 3}, Point{0, 0}, Point{0, 4}, true},
		{"vertical edge missed", Point{-1, 5}, Point{1, 7}, Point{0, 0}, Point{0, 4}, false},
		{"parallel", Point{0, 1}, Point{4, 1}, Point{0, 0}, Point{4, 0}, false},
		{"coincident", Point{-3, 0}, Point{9, 0}, Point{0, 0}, Point{4, 0}, false},
		{"horizontal line below triangle", Point{10, -5}, Point{20, -5}, Point{4, 0}, Point{0, 4}, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Crosses(c.i, c.j, c.a, c.b, Exact))
			assert.Equal(t, c.expected, Crosses(c.i, c.j, c.b, c.a, Exact), "reversed edge")
		})
	}
}

func TestCrosses_DegenerateEdge(t *testing.T) {
	// A single point edge crosses only when the point is on the line
	assert.True(t, Crosses(Point{0, 0}, Point{2, 2}, Point{1, 1}, Point{1, 1}, Exact))
	assert.False(t, Crosses(Point{0, 0}, Point{2, 2}, Point{1, 2}, Point{1, 2}, Exact))
	assert.True(t, Crosses(Point{3, 0}, Point{3, 2}, Point{3, 7}, Point{3, 7}, Exact))
	assert.False(t, Crosses(Point{3, 0}, Point{3, 2}, Point{4, 7}, Point{4, 7}, Exact))
}

func TestCrosses_CoincidentLinePoints(t *testing.T) {
	// Two equal points fall into the vertical case and must not divide by zero
	assert.NotPanics(t, func() {
		assert.True(t, Crosses(Point{1, 1}, Point{1, 1}, Point{0, 0}, Point{4, 0}, Exact))
		assert.False(t, Crosses(Point{9, 1}, Point{9, 1}, Point{0, 0}, Point{4, 0}, Exact))
	})
}

func TestCrosses_EdgeOrderSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	random := func() Point {
		// Mix integer and fractional coordinates to hit both exact and inexact
		// arithmetic
		if rng.Intn(2) == 0 {
			return Point{float64(rng.Intn(9) - 4), float64(rng.Intn(9) - 4)}
		}
		return Point{rng.Float64()*20 - 10, rng.Float64()*20 - 10}
	}
	for n := 0; n < 5000; n++ {
		i, j, a, b := random(), random(), random(), random()
		for _, cmp := range []Comparer{Exact, Tolerant(Tolerance)} {
			assert.Equal(t, Crosses(i, j, a, b, cmp), Crosses(i, j, b, a, cmp), "line %v-%v, edge %v-%v", i, j, a, b)
			assert.Equal(t, CrossesSegment(i, j, a, b, cmp), CrossesSegment(i, j, b, a, cmp), "segment %v-%v, edge %v-%v", i, j, a, b)
		}
	}
}

func TestCrossesSegment(t *testing.T) {
	cases := []struct {
		name       string
		i, j, a, b Point
		line, seg  bool
	}{
		{"segment through edge", Point{-1, -1}, Point{5, 5}, Point{4, 0}, Point{0, 4}, true, true},
		{"segment short of edge", Point{10, 10}, Point{11, 11}, Point{4, 0}, Point{0, 4}, true, false},
		{"vertical segment through edge", Point{2, -1}, Point{2, 1}, Point{0, 0}, Point{4, 0}, true, true},
		{"vertical segment above edge", Point{2, 1}, Point{2, 3}, Point{0, 0}, Point{4, 0}, true, false},
		{"collinear vertical overlap", Point{0, 3}, Point{0, 8}, Point{0, 0}, Point{0, 4}, true, true},
		{"collinear vertical apart", Point{0, 5}, Point{0, 8}, Point{0, 0}, Point{0, 4}, true, false},
		{"segment ends left of vertical edge", Point{-3, 1}, Point{-1, 1}, Point{0, 0}, Point{0, 4}, true, false},
		{"segment across vertical edge", Point{-3, 1}, Point{1, 1}, Point{0, 0}, Point{0, 4}, true, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.line, Crosses(c.i, c.j, c.a, c.b, Exact), "line")
			assert.Equal(t, c.seg, CrossesSegment(c.i, c.j, c.a, c.b, Exact), "segment")
		})
	}
}

func TestCrosses_Tolerant(t *testing.T) {
	// Just past the end of the edge: exact comparison misses, tolerant hits
	i, j := Point{4 + 1e-12, 10}, Point{4 + 1e-12, 20}
	a, b := Point{0, 0}, Point{4, 0}
	assert.False(t, Crosses(i, j, a, b, Exact))
	assert.True(t, Crosses(i, j, a, b, Tolerant(Tolerance)))

	// A nearly vertical edge is treated as vertical
	i, j = Point{0, 1}, Point{1, 1}
	a, b = Point{2, 0}, Point{2 + 1e-12, 4}
	assert.True(t, Crosses(i, j, a, b, Tolerant(Tolerance)))

	// Nearly parallel lines are treated as parallel
	i, j = Point{0, 0}, Point{1, 1}
	a, b = Point{0, 3}, Point{5, 8 + 1e-12}
	assert.False(t, Crosses(i, j, a, b, Tolerant(Tolerance)))
}

func TestTriangleCrossedBy(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{4, 0}, Point{0, 4}}
	for _, bounded := range []bool{false, true} {
		opts := Options{BoundedLine: bounded}
		t.Run(fmt.Sprintf("bounded=%v", bounded), func(t *testing.T) {
			assert.True(t, tri.CrossedBy(Point{-1, -1}, Point{5, 5}, opts))
			assert.False(t, tri.CrossedBy(Point{10, 10}, Point{10, 20}, opts))
		})
	}
	// Only the infinite line reaches the triangle
	assert.True(t, tri.CrossedBy(Point{10, 10}, Point{11, 11}, Options{}))
	assert.False(t, tri.CrossedBy(Point{10, 10}, Point{11, 11}, Options{BoundedLine: true}))
}
