// Package proximity groups 3-D points by mutual proximity with a Kruskal-style
// merge: rank point pairs by squared distance, then connect them nearest first.
//
// What & Why
//
//   - Every pair of points is an edge weighted by its squared Euclidean distance.
//     Feeding the edges in ascending order into a linkset.Set and skipping the
//     redundant ones is Kruskal's algorithm; the N−1 effective merges form a
//     minimum spanning tree.
//
//   - Two ranking policies share that merge loop:
//
//   - PolicyFullSort: all N·(N−1)/2 pairs are generated and sorted. Merging
//     stops at the first pair that makes one group span every point
//     (StateCompleted). Span reports that pair.
//
//   - PolicyBoundedTopK: only the K nearest pairs are retained, via a
//     topk.Selector, and all of them are merged (StateExhausted).
//     TopGroups reports the product of the largest group sizes.
//
// Lifecycle of a run:
//
//	StateInit → StateRanking → StateMerging → StateCompleted | StateExhausted
//
// StateCompleted is reachable only under PolicyFullSort.
//
// Errors
//
//   - ErrNoPoints         : the input is empty.
//   - ErrCapacityExceeded : more points than MaxPoints, or (bounded policy) K above the pair ceiling.
//   - point.ErrCoordinateRange : a coordinate outside ±point.MaxCoordinate.
//   - ErrBadPairLimit     : (bounded policy) K < 1.
//   - ErrBadTopGroups     : (bounded policy) group count outside 1..config.MaxTopGroups.
//   - ErrProductOverflow  : the TopGroups product does not fit in a uint64.
//   - ErrUnknownPolicy    : Policy is neither PolicyFullSort nor PolicyBoundedTopK.
//   - ErrNotConnectable   : Span consumed every pair without reaching full span
//     (only possible for a single point).
//
// A run is synchronous and single-threaded; no state survives the call.
package proximity
