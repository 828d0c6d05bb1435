package topk_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/junction/pairwise"
	"github.com/katalvlaran/junction/point"
	"github.com/katalvlaran/junction/topk"
)

// BenchmarkSelector_Pairs ranks the 1000 nearest pairs of 1000 random points.
func BenchmarkSelector_Pairs(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	pts := make([]point.Point, 1000)
	for i := range pts {
		pts[i] = point.Point{X: r.Int63n(100000), Y: r.Int63n(100000), Z: r.Int63n(100000)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := topk.New[pairwise.Pair](1000, pairwise.Less)
		pairwise.Stream(pts, s)
		_ = s.DrainAscending()
	}
}
