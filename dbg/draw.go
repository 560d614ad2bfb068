package dbg

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/separator/internal"
)

// Padding around the scene so points on the bounding box are visible
const drawPadding = 40

// Draw a scene: the triangle, the free points, and, if there is one, the
// separating line with the perpendicular from the chosen vertex. This is for
// debugging; nothing about it is meant to be pretty.
func DrawScene(free, triangle []internal.Point, result *internal.Result, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, list := range [][]internal.Point{free, triangle} {
		for _, p := range list {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		// Nothing to draw, so draw nothing around the origin
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	if len(triangle) > 0 {
		c.MoveTo(triangle[0].X, triangle[0].Y)
		for _, p := range triangle[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	radius := 3 / scale
	c.SetRGB(1, 1, 1)
	for _, p := range free {
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}

	if result != nil {
		line := result.Line()
		// Stretch the line well past the edges of the canvas
		reach := float64(width+height) / scale
		if line.IsSteep() {
			c.DrawLine(line.SolveForX(minY-reach), minY-reach, line.SolveForX(maxY+reach), maxY+reach)
		} else {
			c.DrawLine(minX-reach, line.SolveForY(minX-reach), maxX+reach, line.SolveForY(maxX+reach))
		}
		c.SetRGB(1, 1, 0)
		c.Stroke()

		foot := line.Foot(result.Vertex)
		c.DrawLine(result.Vertex.X, result.Vertex.Y, foot.X, foot.Y)
		c.SetRGB(0, 1, 0)
		c.Stroke()

		for _, p := range []internal.Point{result.First, result.Second, result.Vertex} {
			c.DrawCircle(p.X, p.Y, radius*1.5)
			c.Fill()
		}
	}
	return c
}

// Draw the scene, save it to path, and print it to w (iTerm only).
func DrawToTerminal(free, triangle []internal.Point, result *internal.Result, scale float64, path string, w io.Writer) error {
	c := DrawScene(free, triangle, result, scale)
	if err := c.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
