package proximity

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/junction/config"
	"github.com/katalvlaran/junction/linkset"
	"github.com/katalvlaran/junction/pairwise"
)

// Sentinel errors returned by Run, Span and TopGroups.
var (
	ErrNoPoints         = errors.New("proximity: no points")
	ErrCapacityExceeded = errors.New("proximity: capacity exceeded")
	ErrBadPairLimit     = errors.New("proximity: pair limit must be positive")
	ErrBadTopGroups     = errors.New("proximity: top group count must be positive")
	ErrUnknownPolicy    = errors.New("proximity: unknown ranking policy")
	ErrNotConnectable   = errors.New("proximity: points never became fully connected")
	ErrProductOverflow  = errors.New("proximity: group size product overflows uint64")
)

// Policy selects how candidate pairs are ranked before merging.
type Policy int

const (
	// PolicyFullSort ranks every pair and stops once all points are connected.
	PolicyFullSort Policy = iota

	// PolicyBoundedTopK ranks only the PairLimit nearest pairs and merges all of them.
	PolicyBoundedTopK
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyFullSort:
		return "full-sort"
	case PolicyBoundedTopK:
		return "bounded-top-k"
	default:
		return "unknown"
	}
}

// State is the stage a run has reached.
type State int

const (
	StateInit State = iota
	StateRanking
	StateMerging
	StateCompleted
	StateExhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRanking:
		return "ranking"
	case StateMerging:
		return "merging"
	case StateCompleted:
		return "completed"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Options configures a run.
//
//	Policy     – ranking policy (default PolicyFullSort).
//	MaxPoints  – capacity ceiling on the number of points (default 1024).
//	PairLimit  – K for PolicyBoundedTopK (default 1000); must not exceed the
//	             number of pairs MaxPoints points can form. Ignored by PolicyFullSort.
//	TopGroups  – number of largest groups in the TopGroups product (default 3,
//	             at most config.MaxTopGroups). Ignored by PolicyFullSort.
//	StopOnSpan – under PolicyFullSort, stop at the merge that connects every
//	             point (default true); false merges every ranked pair.
//	Logger     – receives debug records; nil means slog.Default().
type Options struct {
	Policy     Policy
	MaxPoints  int
	PairLimit  int
	TopGroups  int
	StopOnSpan bool
	Logger     *slog.Logger
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithPolicy sets the ranking policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithMaxPoints sets the capacity ceiling on the number of points.
func WithMaxPoints(n int) Option {
	return func(o *Options) {
		o.MaxPoints = n
	}
}

// WithPairLimit sets K, the number of nearest pairs ranked under PolicyBoundedTopK.
func WithPairLimit(k int) Option {
	return func(o *Options) {
		o.PairLimit = k
	}
}

// WithTopGroups sets how many of the largest group sizes TopGroups multiplies.
func WithTopGroups(m int) Option {
	return func(o *Options) {
		o.TopGroups = m
	}
}

// WithStopOnSpan controls whether a PolicyFullSort run stops once every point
// is connected. It has no effect under PolicyBoundedTopK, which always drains
// its K pairs.
func WithStopOnSpan(stop bool) Option {
	return func(o *Options) {
		o.StopOnSpan = stop
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithConfig copies the limits of a loaded config.Config.
func WithConfig(c config.Config) Option {
	return func(o *Options) {
		o.MaxPoints = c.MaxPoints
		o.PairLimit = c.PairLimit
		o.TopGroups = c.TopGroups
	}
}

// DefaultOptions returns the full-sort policy with the config defaults,
// stopping once every point is connected.
func DefaultOptions() Options {
	return Options{
		Policy:     PolicyFullSort,
		MaxPoints:  config.DefaultMaxPoints,
		PairLimit:  config.DefaultPairLimit,
		TopGroups:  config.DefaultTopGroups,
		StopOnSpan: true,
	}
}

// Result describes a finished run.
type Result struct {
	// State is StateCompleted or StateExhausted.
	State State

	// Policy is the ranking policy used.
	Policy Policy

	// Ranked is the number of pairs in the ranked stream.
	Ranked int

	// Consumed is how many ranked pairs were fed to Merge before stopping.
	Consumed int

	// Merges counts effective merges; it equals N−1 when all points are connected.
	Merges int

	// Weight is the sum of squared distances over the effective merges.
	Weight uint64

	// Completing is the pair whose merge connected every point; valid only
	// when State == StateCompleted.
	Completing pairwise.Pair

	// Set is the final connectivity, owned by the caller.
	Set *linkset.Set

	// Sizes lists every group size, singletons included, largest first.
	Sizes []int
}

// SpanResult is the outcome of Span.
type SpanResult struct {
	// A and B are the point indices of the completing pair (A < B).
	A, B int

	// Dist is the squared distance between A and B.
	Dist uint64

	// XProduct is points[A].X * points[B].X.
	XProduct int64

	// Merges is the number of effective merges performed (N−1).
	Merges int
}

// GroupsResult is the outcome of TopGroups.
type GroupsResult struct {
	// Product multiplies the largest Used group sizes.
	Product uint64

	// Used is how many groups contributed; it is below the requested count
	// only when fewer groups exist, in which case the missing factors are 1.
	Used int

	// Sizes lists the contributing sizes, largest first.
	Sizes []int

	// Pairs is the number of nearest pairs that were merged.
	Pairs int
}
