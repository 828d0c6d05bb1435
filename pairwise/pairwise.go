package pairwise

import (
	"sort"

	"github.com/katalvlaran/junction/point"
)

// SquaredDistance returns the sum of squared per-axis deltas between p and q.
// The result is exact for points within ±point.MaxCoordinate, which the loader
// and the proximity driver enforce; outside that range it may wrap.
func SquaredDistance(p, q point.Point) uint64 {
	dx := absDelta(p.X, q.X)
	dy := absDelta(p.Y, q.Y)
	dz := absDelta(p.Z, q.Z)

	return dx*dx + dy*dy + dz*dz
}

// All returns every pair of points in generation order.
// The result has exactly Count(len(points)) entries and is allocated once.
func All(points []point.Point) []Pair {
	n := len(points)
	pairs := make([]Pair, 0, Count(n))
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{
				Dist: SquaredDistance(points[i], points[j]),
				A:    i,
				B:    j,
			})
		}
	}

	return pairs
}

// Stream offers every pair of points to sink in generation order and
// returns how many pairs were offered. Nothing is buffered here.
func Stream(points []point.Point, sink Sink) int {
	n := len(points)
	offered := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			sink.Offer(Pair{
				Dist: SquaredDistance(points[i], points[j]),
				A:    i,
				B:    j,
			})
			offered++
		}
	}

	return offered
}

// SortAscending sorts pairs by ascending distance in place.
// The sort is stable, so equal distances keep generation order.
func SortAscending(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Dist < pairs[j].Dist
	})
}

func absDelta(a, b int64) uint64 {
	if a > b {
		return uint64(a - b)
	}

	return uint64(b - a)
}
