package linkset

import "fmt"

// Set is a union-find structure whose groups can be enumerated through an
// intrusive circular chain threaded through their members.
type Set struct {
	groupOf []int
	next    []int
	size    []int // indexed by group id; len(size) is the number of ids allocated

	unions  int // effective merges so far
	largest int // size of the largest group, singletons count as 1
}

// New returns a Set of n singleton points, 0..n-1.
func New(n int) (*Set, error) {
	if n < 1 {
		return nil, ErrBadSize
	}

	s := &Set{
		groupOf: make([]int, n),
		next:    make([]int, n),
		size:    make([]int, 0, n/2),
		largest: 1,
	}
	for p := 0; p < n; p++ {
		s.groupOf[p] = noGroup
		s.next[p] = p
	}

	return s, nil
}

// Len returns the number of points tracked.
func (s *Set) Len() int { return len(s.groupOf) }

// Merge connects the groups of points a and b.
//
//   - both singletons          → Paired:    new group of 2, chains linked into a 2-cycle.
//   - exactly one singleton    → Absorbed:  spliced in right after the grouped point, size+1.
//   - two distinct groups      → United:    sizes summed, absorbed chain relabeled, chains spliced.
//   - same group (or a == b)   → Redundant: no structural change.
//
// For United the chain that gets walked and relabeled is the smaller group's,
// which bounds the total relabeling work over a run by n·log n.
func (s *Set) Merge(a, b int) (Outcome, error) {
	// 1) Validate indices; a point is always connected to itself.
	if err := s.check(a); err != nil {
		return Redundant, err
	}
	if err := s.check(b); err != nil {
		return Redundant, err
	}
	if a == b {
		return Redundant, nil
	}

	// 2) Dispatch on the group state of both endpoints.
	ga, gb := s.groupOf[a], s.groupOf[b]
	var (
		outcome Outcome
		g       int
	)
	switch {
	case ga == noGroup && gb == noGroup:
		g = len(s.size)
		s.size = append(s.size, 2)
		s.groupOf[a], s.groupOf[b] = g, g
		s.next[a], s.next[b] = b, a
		outcome = Paired

	case ga == noGroup:
		g = gb
		s.absorb(a, b, g)
		outcome = Absorbed

	case gb == noGroup:
		g = ga
		s.absorb(b, a, g)
		outcome = Absorbed

	case ga == gb:
		return Redundant, nil

	default:
		// 3) Keep the larger group's id; walk the smaller chain starting from its own member.
		keep, drop, walk := ga, gb, b
		if s.size[ga] < s.size[gb] {
			keep, drop, walk = gb, ga, a
		}
		s.size[keep] += s.size[drop]
		s.size[drop] = 0

		p := walk
		for {
			s.groupOf[p] = keep
			p = s.next[p]
			if p == walk {
				break
			}
		}
		// 4) Exchanging the successors of one member from each cycle joins them into one cycle.
		s.next[a], s.next[b] = s.next[b], s.next[a]
		g = keep
		outcome = United
	}

	// 5) Bookkeeping for effective merges only.
	s.unions++
	if s.size[g] > s.largest {
		s.largest = s.size[g]
	}

	return outcome, nil
}

// absorb splices singleton p into group g immediately after member anchor.
func (s *Set) absorb(p, anchor, g int) {
	s.groupOf[p] = g
	s.next[p] = s.next[anchor]
	s.next[anchor] = p
	s.size[g]++
}

// SizeOf returns the size of p's group, 1 for a singleton.
// It panics if p is out of range.
func (s *Set) SizeOf(p int) int {
	if g := s.groupOf[p]; g != noGroup {
		return s.size[g]
	}

	return 1
}

// SameGroup reports whether a and b are connected.
func (s *Set) SameGroup(a, b int) bool {
	if a == b {
		return true
	}
	g := s.groupOf[a]

	return g != noGroup && g == s.groupOf[b]
}

// Each walks p's group starting at p, calling fn for every member until fn
// returns false or the chain returns to p.
func (s *Set) Each(p int, fn func(member int) bool) {
	q := p
	for {
		if !fn(q) {
			return
		}
		q = s.next[q]
		if q == p {
			return
		}
	}
}

// Members returns every member of p's group in chain order, starting with p.
func (s *Set) Members(p int) []int {
	out := make([]int, 0, s.SizeOf(p))
	s.Each(p, func(m int) bool {
		out = append(out, m)
		return true
	})

	return out
}

// IsFullySpanning reports whether some group holds total points.
func (s *Set) IsFullySpanning(total int) bool { return s.largest == total }

// Largest returns the size of the largest group.
func (s *Set) Largest() int { return s.largest }

// Unions returns the number of effective (non-redundant) merges performed.
func (s *Set) Unions() int { return s.unions }

// GroupCount returns the number of distinct groups, singletons included.
// Every effective merge removes exactly one group.
func (s *Set) GroupCount() int { return len(s.groupOf) - s.unions }

// Groups returns every group, singletons included, ordered by smallest member.
// Each group lists its members in chain order starting from that smallest member.
func (s *Set) Groups() [][]int {
	out := make([][]int, 0, s.GroupCount())
	s.eachGroup(func(first int) {
		out = append(out, s.Members(first))
	})

	return out
}

// Sizes returns the size of every group, singletons included, in the same
// order as Groups.
func (s *Set) Sizes() []int {
	out := make([]int, 0, s.GroupCount())
	s.eachGroup(func(first int) {
		out = append(out, s.SizeOf(first))
	})

	return out
}

// eachGroup calls fn once per group with the group's smallest member.
func (s *Set) eachGroup(fn func(first int)) {
	seen := make([]bool, len(s.size))
	for p, g := range s.groupOf {
		if g == noGroup {
			fn(p)
			continue
		}
		if seen[g] {
			continue
		}
		seen[g] = true
		fn(p)
	}
}

func (s *Set) check(p int) error {
	if p < 0 || p >= len(s.groupOf) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, p, len(s.groupOf))
	}

	return nil
}
