// Package topk retains the K smallest elements of a stream without sorting the
// whole stream.
//
// What & Why
//
//   - A Selector is a fixed-capacity binary max-heap. While it holds fewer than K
//     elements every offer is inserted; once full, the current maximum is the
//     admission threshold: a candidate strictly smaller than it replaces it,
//     anything else is rejected after a single comparison.
//
//   - For N candidates this costs O(N log K) time and O(K) memory, instead of the
//     O(N log N) time and O(N) memory of materializing and sorting everything.
//     Ranking the K nearest of ~500 000 point pairs is the motivating use.
//
// Lifecycle
//
//	New(K, less) → Offer … Offer → DrainAscending
//
// DrainAscending is a consuming transformation: it heap-sorts the backing
// buffer in place (max to the back, repeatedly) and hands that buffer to the
// caller. The Selector keeps no reference to the returned slice.
//
// Complexity:
//
//   - Offer:          O(log K), O(1) when rejected.
//   - PeekMax:        O(1).
//   - DrainAscending: O(K log K).
//
// A Selector is not safe for concurrent use.
package topk
