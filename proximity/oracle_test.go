package proximity_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/junction/pairwise"
	"github.com/katalvlaran/junction/point"
	"github.com/katalvlaran/junction/proximity"
)

// gonumMST computes the minimum spanning tree of the complete squared-distance
// graph with gonum's Kruskal and returns its weight and edge count.
func gonumMST(pts []point.Point) (float64, int) {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range pts {
		g.AddNode(simple.Node(i))
	}
	for _, p := range pairwise.All(pts) {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(p.A), simple.Node(p.B), float64(p.Dist)))
	}

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	w := path.Kruskal(dst, g)

	return w, len(graph.EdgesOf(dst.Edges()))
}

// TestRun_MatchesGonumKruskal checks full spanning is reached after exactly N−1
// effective merges whose total weight equals an independent MST.
func TestRun_MatchesGonumKruskal(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for round := 0; round < 15; round++ {
		n := 2 + r.Intn(60)
		pts := make([]point.Point, n)
		for i := range pts {
			pts[i] = point.Point{X: r.Int63n(2000) - 1000, Y: r.Int63n(2000) - 1000, Z: r.Int63n(2000) - 1000}
		}

		res, err := proximity.Run(pts)
		require.NoError(t, err)
		require.Equal(t, proximity.StateCompleted, res.State)

		wantWeight, wantEdges := gonumMST(pts)
		assert.Equal(t, wantEdges, res.Merges, "n=%d", n)
		assert.Equal(t, n-1, res.Merges)
		assert.Equal(t, wantWeight, float64(res.Weight), "n=%d", n)
	}
}
