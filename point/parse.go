package point

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads points from r, one "x,y,z" triple per line. Fields may be
// separated by commas, whitespace, or both. Blank lines and lines starting
// with '#' are skipped.
//
// If maxPoints > 0, reading more than maxPoints points fails with
// ErrTooManyPoints instead of growing past the ceiling. A coordinate outside
// ±MaxCoordinate fails with ErrCoordinateRange.
func Parse(r io.Reader, maxPoints int) ([]Point, error) {
	var (
		points []Point
		lineNo int
	)
	if maxPoints > 0 {
		points = make([]Point, 0, maxPoints)
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
		if !p.InRange() {
			return nil, fmt.Errorf("%w: line %d: %s, limit ±%d", ErrCoordinateRange, lineNo, p, MaxCoordinate)
		}
		if maxPoints > 0 && len(points) == maxPoints {
			return nil, fmt.Errorf("%w: more than %d points (line %d)", ErrTooManyPoints, maxPoints, lineNo)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return points, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, maxPoints int) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("point: open %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f, maxPoints)
}

// parseLine splits a single non-empty line into exactly three integers.
func parseLine(line string) (Point, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("want 3 coordinates, got %d", len(fields))
	}

	var xyz [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		xyz[i] = v
	}

	return Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
