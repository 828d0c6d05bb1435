// Package point defines the immutable 3-D integer Point and a loader that reads
// one coordinate triple per line.
//
// Points are identified by their dense index in the slice returned by Parse;
// every other package in this module refers to a point by that index only.
//
// Errors:
//
//	ErrSyntax          - a line is not a valid x,y,z triple.
//	ErrTooManyPoints   - the input holds more points than the caller's ceiling.
//	ErrCoordinateRange - a coordinate lies outside ±MaxCoordinate.
package point

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxCoordinate bounds every coordinate's magnitude. With |c| ≤ 2^30 a
// per-axis delta is at most 2^31, its square at most 2^62, and the sum of
// three squares at most 3·2^62, which still fits in a uint64.
const MaxCoordinate = 1 << 30

// Sentinel errors returned by Parse and ParseFile.
var (
	// ErrSyntax indicates a malformed line; the wrapped message carries the line number.
	ErrSyntax = errors.New("point: malformed coordinate line")

	// ErrTooManyPoints indicates the input exceeded the requested capacity ceiling.
	ErrTooManyPoints = errors.New("point: too many points")

	// ErrCoordinateRange indicates a coordinate whose magnitude exceeds MaxCoordinate.
	ErrCoordinateRange = errors.New("point: coordinate out of range")
)

// Point is a position in integer 3-D space. It is never mutated after parsing.
type Point struct {
	X, Y, Z int64
}

// String renders the point in its input form "x,y,z".
func (p Point) String() string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, p.X, 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, p.Y, 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, p.Z, 10)

	return string(buf)
}

// InRange reports whether every coordinate lies within ±MaxCoordinate.
func (p Point) InRange() bool {
	return inRange(p.X) && inRange(p.Y) && inRange(p.Z)
}

// CheckRange returns ErrCoordinateRange, naming the first offending index,
// if any point lies outside ±MaxCoordinate.
func CheckRange(points []Point) error {
	for i, p := range points {
		if !p.InRange() {
			return fmt.Errorf("%w: point %d (%s), limit ±%d", ErrCoordinateRange, i, p, MaxCoordinate)
		}
	}

	return nil
}

func inRange(c int64) bool { return c >= -MaxCoordinate && c <= MaxCoordinate }
