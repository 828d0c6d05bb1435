package topk_test

import (
	"fmt"

	"github.com/katalvlaran/junction/topk"
)

// ExampleSelector keeps the three smallest values of a stream.
func ExampleSelector() {
	s, err := topk.New[int](3, func(a, b int) bool { return a < b })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range []int{42, 7, 19, 3, 88, 11} {
		s.Offer(v)
	}
	max, _ := s.PeekMax()
	fmt.Println("threshold:", max)
	fmt.Println(s.DrainAscending())
	// Output:
	// threshold: 11
	// [3 7 11]
}
