package linkset

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the chain and size bookkeeping against a naive label model.
func checkInvariants(t *testing.T, s *Set, label []int) {
	t.Helper()
	n := len(s.groupOf)

	total := 0
	for p := 0; p < n; p++ {
		// chain length equals reported size, and stays within p's model component
		steps := 0
		q := p
		for {
			require.Equal(t, label[p], label[q], "chain of %d leaves its component at %d", p, q)
			steps++
			require.LessOrEqual(t, steps, n, "chain of %d does not cycle", p)
			q = s.next[q]
			if q == p {
				break
			}
		}
		require.Equal(t, s.SizeOf(p), steps, "size of %d", p)

		want := 0
		for _, l := range label {
			if l == label[p] {
				want++
			}
		}
		require.Equal(t, want, steps, "component size of %d", p)
		if want == 1 {
			require.Equal(t, noGroup, s.groupOf[p])
		}
	}

	for _, sz := range s.Sizes() {
		total += sz
	}
	require.Equal(t, n, total)
	require.Equal(t, n, cap(s.groupOf))
	require.LessOrEqual(t, len(s.size), n/2)
}

// TestMerge_RandomAgainstModel applies random merges and compares with a relabel-everything model.
func TestMerge_RandomAgainstModel(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 20; round++ {
		n := 1 + r.Intn(40)
		s, err := New(n)
		require.NoError(t, err)
		label := make([]int, n)
		for i := range label {
			label[i] = i
		}

		for step := 0; step < 3*n; step++ {
			a, b := r.Intn(n), r.Intn(n)
			wasSame := label[a] == label[b]

			out, err := s.Merge(a, b)
			require.NoError(t, err)
			require.Equal(t, !wasSame, out.Effective(), "Merge(%d,%d)", a, b)

			if !wasSame {
				from, to := label[b], label[a]
				for i := range label {
					if label[i] == from {
						label[i] = to
					}
				}
			}
			checkInvariants(t, s, label)
		}
	}
}

// TestMerge_RedundantIsIdempotent snapshots every array and checks a redundant merge leaves them untouched.
func TestMerge_RedundantIsIdempotent(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)
	for _, pr := range [][2]int{{0, 1}, {2, 3}, {1, 3}, {4, 5}, {5, 6}} {
		_, err := s.Merge(pr[0], pr[1])
		require.NoError(t, err)
	}

	groupOf := slices.Clone(s.groupOf)
	next := slices.Clone(s.next)
	size := slices.Clone(s.size)
	unions, largest := s.unions, s.largest

	for _, pr := range [][2]int{{0, 3}, {3, 0}, {2, 1}, {4, 6}, {7, 7}} {
		out, err := s.Merge(pr[0], pr[1])
		require.NoError(t, err)
		require.Equal(t, Redundant, out)
	}

	require.Equal(t, groupOf, s.groupOf)
	require.Equal(t, next, s.next)
	require.Equal(t, size, s.size)
	require.Equal(t, unions, s.unions)
	require.Equal(t, largest, s.largest)
}

// TestMerge_UnitedRelabelsSmallerChain checks the surviving id belongs to the larger group.
func TestMerge_UnitedRelabelsSmallerChain(t *testing.T) {
	s, err := New(6)
	require.NoError(t, err)
	_, _ = s.Merge(0, 1) // group 0
	_, _ = s.Merge(2, 3) // group 1
	_, _ = s.Merge(2, 4)
	_, _ = s.Merge(2, 5) // group 1 has 4 members

	out, err := s.Merge(0, 5)
	require.NoError(t, err)
	require.Equal(t, United, out)
	for p := 0; p < 6; p++ {
		require.Equal(t, 1, s.groupOf[p])
	}
	require.Equal(t, 6, s.size[1])
	require.Equal(t, 0, s.size[0])
}
