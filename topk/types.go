package topk

import "errors"

// Sentinel errors for Selector construction and inspection.
var (
	// ErrBadCapacity indicates a capacity below 1 was requested.
	ErrBadCapacity = errors.New("topk: capacity must be positive")

	// ErrEmpty indicates PeekMax was called on a Selector holding no elements.
	ErrEmpty = errors.New("topk: selector is empty")

	// ErrNilLess indicates New was called without an ordering function.
	ErrNilLess = errors.New("topk: less function is nil")
)

// maxHeap adapts a bounded slice to heap.Interface with the largest element at
// index 0. Its backing array is allocated once with the Selector's capacity and
// never grows past it.
type maxHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// Len returns the number of elements stored.
func (h *maxHeap[T]) Len() int { return len(h.items) }

// Less inverts the caller's ordering so that heap.* maintains a max-heap.
func (h *maxHeap[T]) Less(i, j int) bool { return h.less(h.items[j], h.items[i]) }

// Swap exchanges two stored elements.
func (h *maxHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends x; callers guarantee Len() < cap(items) beforehand.
func (h *maxHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

// Pop removes and returns the last element. The slot itself is left in the
// backing array, which DrainAscending relies on.
func (h *maxHeap[T]) Pop() any {
	n := len(h.items)
	x := h.items[n-1]
	h.items = h.items[:n-1]

	return x
}
