package internal

import (
	"embed"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into scenes. This is not a full (or even
// correct) svg parser. The one <polygon> in the file is the triangle, and every
// <circle> is a free point, in document order. If anything goes wrong, it
// exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (free []Point, triangle []Point) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		triangle = append(triangle, Point{parseCoord(coords[0]), parseCoord(coords[1])})
	}

	for _, circleEl := range rootEl.FindAll("circle") {
		free = append(free, Point{
			parseCoord(circleEl.Attributes["cx"]),
			parseCoord(circleEl.Attributes["cy"]),
		})
	}
	return free, triangle
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return v
}

// A reproducible random scene on an integer grid. Integer coordinates make
// exact ties, vertical lines and parallel edges common, which is what we want
// to exercise.
func RandomScene(seed int64, n int) (free []Point, triangle []Point) {
	rng := rand.New(rand.NewSource(seed))
	grid := func() Point {
		return Point{float64(rng.Intn(30) - 15), float64(rng.Intn(30) - 15)}
	}
	for len(triangle) < 3 {
		triangle = append(triangle, grid())
	}
	for len(free) < n {
		free = append(free, grid())
	}
	return free, triangle
}
