// Package pairwise enumerates every unordered pair of points together with
// its squared Euclidean distance.
//
// Squared distances stay in exact uint64 arithmetic; no square root is ever
// taken because only the relative order of distances matters to callers.
//
// Two generation variants share one iteration order (i = 0..N-2, j = i+1..N-1):
//
//	All    - materializes all N·(N−1)/2 pairs (used when every pair may be needed).
//	Stream - hands each pair to a Sink, typically a bounded top-K selector.
package pairwise

// Pair is an unordered combination of two distinct points and their squared distance.
// A is always the smaller point index.
type Pair struct {
	// Dist is the squared Euclidean distance between points A and B.
	Dist uint64

	// A is the index of the first point (A < B).
	A int

	// B is the index of the second point.
	B int
}

// Sink receives pairs from Stream, one at a time, in generation order.
type Sink interface {
	Offer(p Pair) bool
}

// SinkFunc adapts a plain function into a Sink.
type SinkFunc func(p Pair) bool

// Offer calls f(p).
func (f SinkFunc) Offer(p Pair) bool { return f(p) }

// Less orders pairs by ascending squared distance.
func Less(a, b Pair) bool { return a.Dist < b.Dist }

// Count returns the number of unordered pairs among n points: n·(n−1)/2.
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
