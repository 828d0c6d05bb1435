// Package linkset tracks which points have been connected into groups and can
// list the members of any group, not just answer membership queries.
//
// Representation (an arena of indices, no pointers):
//
//	groupOf[p] - group id of point p, or -1 while p is a singleton.
//	next[p]    - successor of p on its group's circular chain (p itself for a singleton).
//	size[g]    - authoritative member count of group g.
//
// Starting at any member and following next visits every member of the group
// exactly once before returning to the start, so the chain length always equals
// the group size. A group id is allocated only when two singletons pair up, so
// at most n/2 ids ever exist and all storage is sized once in New.
//
// Merge is the only mutating operation. A Set is not safe for concurrent use.
package linkset

import "errors"

// Sentinel errors for Set construction and merging.
var (
	// ErrBadSize indicates New was asked for fewer than one point.
	ErrBadSize = errors.New("linkset: point count must be positive")

	// ErrOutOfRange indicates a point index outside [0, Len()).
	ErrOutOfRange = errors.New("linkset: point index out of range")
)

// Outcome reports which branch of the merge state machine a Merge call took.
type Outcome int

const (
	// Redundant means both points already shared a group; nothing changed.
	Redundant Outcome = iota

	// Paired means two singletons formed a new two-member group.
	Paired

	// Absorbed means a singleton joined the other point's existing group.
	Absorbed

	// United means two distinct groups were spliced into one.
	United
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Redundant:
		return "redundant"
	case Paired:
		return "paired"
	case Absorbed:
		return "absorbed"
	case United:
		return "united"
	default:
		return "unknown"
	}
}

// Effective reports whether the merge changed the grouping.
func (o Outcome) Effective() bool { return o != Redundant }

// noGroup marks a singleton in groupOf.
const noGroup = -1
