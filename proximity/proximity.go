package proximity

import (
	"fmt"
	"log/slog"
	"math/bits"
	"sort"

	"github.com/katalvlaran/junction/config"
	"github.com/katalvlaran/junction/linkset"
	"github.com/katalvlaran/junction/pairwise"
	"github.com/katalvlaran/junction/point"
	"github.com/katalvlaran/junction/topk"
)

// Run ranks the pairs of points under the configured policy and merges them
// nearest first into a fresh linkset.Set.
//
// Steps:
//  1. Apply options and validate them against the input (ErrNoPoints,
//     ErrCapacityExceeded, point.ErrCoordinateRange, ErrUnknownPolicy; and for
//     PolicyBoundedTopK also ErrBadPairLimit and ErrBadTopGroups).
//  2. Ranking: all pairs sorted, or the PairLimit nearest drained from a topk.Selector.
//  3. Merging: feed pairs in ascending order to Set.Merge. Under PolicyFullSort
//     with StopOnSpan, stop at the first merge that connects every point.
//  4. Collect group sizes, largest first.
//
// Complexity: O(N² log N) for PolicyFullSort, O(N² log K) for PolicyBoundedTopK.
// Memory: O(N²) pairs for PolicyFullSort, O(K + N) for PolicyBoundedTopK.
func Run(points []point.Point, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(cfg, points); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	n := len(points)
	set, err := linkset.New(n)
	if err != nil {
		return nil, fmt.Errorf("proximity: %w", err)
	}
	res := &Result{State: StateInit, Policy: cfg.Policy, Set: set}

	// 2) Ranking.
	res.State = StateRanking
	ranked, err := rank(points, cfg)
	if err != nil {
		return nil, err
	}
	res.Ranked = len(ranked)
	log.Debug("proximity: pairs ranked",
		slog.String("policy", cfg.Policy.String()),
		slog.Int("points", n),
		slog.Int("ranked", len(ranked)))

	// 3) Merging. StateCompleted is reserved for the full-sort policy, so the
	//    bounded policy always drains its K pairs.
	res.State = StateMerging
	stopOnSpan := cfg.StopOnSpan && cfg.Policy == PolicyFullSort
	for _, p := range ranked {
		// 3a) Feed the next-nearest pair to the tracker.
		res.Consumed++
		out, err := set.Merge(p.A, p.B)
		if err != nil {
			return nil, fmt.Errorf("proximity: merge %d-%d: %w", p.A, p.B, err)
		}
		// 3b) Redundant pairs close a cycle; they neither count nor weigh.
		if !out.Effective() {
			continue
		}
		res.Merges++
		res.Weight += p.Dist

		// 3c) Stop on the merge that made one group hold every point.
		if stopOnSpan && set.IsFullySpanning(n) {
			res.Completing = p
			res.State = StateCompleted
			break
		}
	}
	if res.State != StateCompleted {
		res.State = StateExhausted
	}

	// 4) Group sizes, largest first.
	res.Sizes = set.Sizes()
	sort.Sort(sort.Reverse(sort.IntSlice(res.Sizes)))

	log.Debug("proximity: run finished",
		slog.String("state", res.State.String()),
		slog.Int("consumed", res.Consumed),
		slog.Int("merges", res.Merges),
		slog.Int("groups", set.GroupCount()))

	return res, nil
}

// Span connects points nearest pair first until one group holds every point
// and returns the pair whose merge achieved that.
//
// The policy option is forced to PolicyFullSort and StopOnSpan to true. Any
// input of two or more points always connects; a single point has no
// completing pair and yields ErrNotConnectable.
func Span(points []point.Point, opts ...Option) (SpanResult, error) {
	opts = append(opts[:len(opts):len(opts)], WithPolicy(PolicyFullSort), WithStopOnSpan(true))
	res, err := Run(points, opts...)
	if err != nil {
		return SpanResult{}, err
	}
	if res.State != StateCompleted {
		return SpanResult{}, fmt.Errorf("%w: %d points, largest group %d after %d pairs",
			ErrNotConnectable, len(points), res.Set.Largest(), res.Consumed)
	}

	p := res.Completing

	return SpanResult{
		A:        p.A,
		B:        p.B,
		Dist:     p.Dist,
		XProduct: points[p.A].X * points[p.B].X,
		Merges:   res.Merges,
	}, nil
}

// TopGroups merges the PairLimit nearest pairs and multiplies the sizes of the
// TopGroups largest resulting groups (singletons count as groups of 1).
//
// The policy option is forced to PolicyBoundedTopK. When fewer groups exist
// than requested, the missing factors are 1 and GroupsResult.Used says how
// many groups contributed. A product that does not fit in a uint64 fails with
// ErrProductOverflow.
func TopGroups(points []point.Point, opts ...Option) (GroupsResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := Run(points, append(opts[:len(opts):len(opts)], WithPolicy(PolicyBoundedTopK))...)
	if err != nil {
		return GroupsResult{}, err
	}

	used := min(cfg.TopGroups, len(res.Sizes))
	out := GroupsResult{
		Product: 1,
		Used:    used,
		Sizes:   res.Sizes[:used:used],
		Pairs:   res.Consumed,
	}
	for _, sz := range out.Sizes {
		hi, lo := bits.Mul64(out.Product, uint64(sz))
		if hi != 0 {
			return GroupsResult{}, fmt.Errorf("%w: sizes %v", ErrProductOverflow, out.Sizes)
		}
		out.Product = lo
	}

	return out, nil
}

// validate checks options against an input of points. PairLimit and
// TopGroups are read only by PolicyBoundedTopK, so only that policy checks them.
func validate(cfg Options, points []point.Point) error {
	n := len(points)
	switch {
	case cfg.Policy != PolicyFullSort && cfg.Policy != PolicyBoundedTopK:
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, int(cfg.Policy))
	case n == 0:
		return ErrNoPoints
	case cfg.MaxPoints < 1 || n > cfg.MaxPoints:
		return fmt.Errorf("%w: %d points, limit %d", ErrCapacityExceeded, n, cfg.MaxPoints)
	}
	if err := point.CheckRange(points); err != nil {
		return fmt.Errorf("proximity: %w", err)
	}
	if cfg.Policy != PolicyBoundedTopK {
		return nil
	}

	switch {
	case cfg.PairLimit < 1:
		return fmt.Errorf("%w: %d", ErrBadPairLimit, cfg.PairLimit)
	case cfg.PairLimit > pairwise.Count(cfg.MaxPoints):
		return fmt.Errorf("%w: pair limit %d, at most %d pairs for %d points",
			ErrCapacityExceeded, cfg.PairLimit, pairwise.Count(cfg.MaxPoints), cfg.MaxPoints)
	case cfg.TopGroups < 1 || cfg.TopGroups > config.MaxTopGroups:
		return fmt.Errorf("%w: %d, want 1..%d", ErrBadTopGroups, cfg.TopGroups, config.MaxTopGroups)
	}

	return nil
}

// rank produces the ascending pair stream for the configured policy.
func rank(points []point.Point, cfg Options) ([]pairwise.Pair, error) {
	if cfg.Policy == PolicyFullSort {
		pairs := pairwise.All(points)
		pairwise.SortAscending(pairs)

		return pairs, nil
	}

	k := min(cfg.PairLimit, pairwise.Count(len(points)))
	if k == 0 {
		return nil, nil
	}
	sel, err := topk.New[pairwise.Pair](k, pairwise.Less)
	if err != nil {
		return nil, fmt.Errorf("proximity: %w", err)
	}
	pairwise.Stream(points, sel)

	return sel.DrainAscending(), nil
}
