package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/separator/internal"
	"github.com/pkg/errors"
)

// Read a scene from newline separated points in the form "x y". The first
// block of points is the triangle, and after a blank line come the free
// points. Lines starting with # are ignored.
func readScene(in io.Reader) (triangle, free []internal.Point, err error) {
	blocks := [][]internal.Point{nil}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// A blank line ends the block, if we collected anything
		if line == "" {
			if len(blocks[len(blocks)-1]) > 0 {
				blocks = append(blocks, nil)
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		blocks[len(blocks)-1] = append(blocks[len(blocks)-1], point)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading points")
	}

	if len(blocks[len(blocks)-1]) == 0 {
		blocks = blocks[:len(blocks)-1]
	}
	switch len(blocks) {
	case 0:
		return nil, nil, nil
	case 1:
		return blocks[0], nil, nil
	case 2:
		return blocks[0], blocks[1], nil
	}
	return nil, nil, errors.Errorf("expected at most 2 blocks of points, got %d", len(blocks))
}

func parsePoint(line string) (internal.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return internal.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return internal.Point{X: x, Y: y}, nil
}
