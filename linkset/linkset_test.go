package linkset_test

import (
	"testing"

	"github.com/katalvlaran/junction/linkset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := linkset.New(0)
	assert.ErrorIs(t, err, linkset.ErrBadSize)

	s, err := linkset.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.GroupCount())
	for p := 0; p < 4; p++ {
		assert.Equal(t, 1, s.SizeOf(p))
		assert.Equal(t, []int{p}, s.Members(p))
	}
	assert.False(t, s.IsFullySpanning(4))
}

// TestMerge_StateMachine walks through every branch of Merge in order.
func TestMerge_StateMachine(t *testing.T) {
	s, err := linkset.New(6)
	require.NoError(t, err)

	steps := []struct {
		a, b int
		want linkset.Outcome
	}{
		{0, 1, linkset.Paired},
		{2, 1, linkset.Absorbed}, // singleton on the left
		{0, 3, linkset.Absorbed}, // singleton on the right
		{4, 5, linkset.Paired},
		{3, 2, linkset.Redundant},
		{5, 1, linkset.United},
		{4, 0, linkset.Redundant},
		{2, 2, linkset.Redundant},
	}
	for _, st := range steps {
		got, err := s.Merge(st.a, st.b)
		require.NoError(t, err)
		assert.Equal(t, st.want, got, "Merge(%d,%d)", st.a, st.b)
	}

	assert.Equal(t, 5, s.Unions())
	assert.Equal(t, 1, s.GroupCount())
	assert.True(t, s.IsFullySpanning(6))
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, s.Members(3))
}

func TestMerge_OutOfRange(t *testing.T) {
	s, err := linkset.New(3)
	require.NoError(t, err)

	_, err = s.Merge(0, 3)
	assert.ErrorIs(t, err, linkset.ErrOutOfRange)
	_, err = s.Merge(-1, 0)
	assert.ErrorIs(t, err, linkset.ErrOutOfRange)
	assert.Equal(t, 0, s.Unions())
}

func TestMembers_ChainOrder(t *testing.T) {
	s, err := linkset.New(4)
	require.NoError(t, err)
	_, _ = s.Merge(0, 1)
	_, _ = s.Merge(0, 2) // 2 spliced right after 0

	assert.Equal(t, []int{0, 2, 1}, s.Members(0))
	assert.Equal(t, []int{1, 0, 2}, s.Members(1))
	assert.Equal(t, 3, s.SizeOf(2))
	assert.True(t, s.SameGroup(1, 2))
	assert.False(t, s.SameGroup(1, 3))
	assert.True(t, s.SameGroup(3, 3))
}

func TestEach_StopsEarly(t *testing.T) {
	s, err := linkset.New(5)
	require.NoError(t, err)
	for p := 1; p < 5; p++ {
		_, _ = s.Merge(0, p)
	}

	visited := 0
	s.Each(0, func(int) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestGroupsAndSizes(t *testing.T) {
	s, err := linkset.New(7)
	require.NoError(t, err)
	_, _ = s.Merge(1, 4)
	_, _ = s.Merge(4, 6)
	_, _ = s.Merge(2, 5)

	groups := s.Groups()
	require.Len(t, groups, 4)
	assert.Equal(t, []int{0}, groups[0])
	assert.ElementsMatch(t, []int{1, 4, 6}, groups[1])
	assert.Equal(t, 1, groups[1][0])
	assert.ElementsMatch(t, []int{2, 5}, groups[2])
	assert.Equal(t, []int{3}, groups[3])

	assert.Equal(t, []int{1, 3, 2, 1}, s.Sizes())
	assert.Equal(t, 3, s.Largest())
}

func TestIsFullySpanning_SinglePoint(t *testing.T) {
	s, err := linkset.New(1)
	require.NoError(t, err)
	assert.True(t, s.IsFullySpanning(1))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "paired", linkset.Paired.String())
	assert.Equal(t, "absorbed", linkset.Absorbed.String())
	assert.Equal(t, "united", linkset.United.String())
	assert.Equal(t, "redundant", linkset.Redundant.String())
	assert.Equal(t, "unknown", linkset.Outcome(99).String())
	assert.False(t, linkset.Redundant.Effective())
	assert.True(t, linkset.United.Effective())
}
