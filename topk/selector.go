package topk

import "container/heap"

// Selector keeps the K smallest elements offered so far, ordered by less.
type Selector[T any] struct {
	h        maxHeap[T]
	capacity int
}

// New returns an empty Selector that retains at most capacity elements.
// less must be a strict weak ordering; "smallest" is defined by it.
//
// Errors: ErrBadCapacity if capacity < 1, ErrNilLess if less is nil.
func New[T any](capacity int, less func(a, b T) bool) (*Selector[T], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	if less == nil {
		return nil, ErrNilLess
	}

	return &Selector[T]{
		h:        maxHeap[T]{items: make([]T, 0, capacity), less: less},
		capacity: capacity,
	}, nil
}

// Offer considers v for retention and reports whether it was kept.
//
//   - Not full: v is inserted unconditionally (sift-up).
//   - Full and v < max: v replaces the maximum (sift-down).
//   - Otherwise v is discarded; the heap is untouched.
func (s *Selector[T]) Offer(v T) bool {
	// 1) Fresh buffer after a drain; the previous one belongs to the caller now.
	if s.h.items == nil {
		s.h.items = make([]T, 0, s.capacity)
	}

	// 2) Room left: insert and sift up.
	if len(s.h.items) < s.capacity {
		heap.Push(&s.h, v)

		return true
	}

	// 3) Full: one comparison against the root decides.
	if !s.h.less(v, s.h.items[0]) {
		return false
	}

	// 4) Replace the maximum in place and sift down.
	s.h.items[0] = v
	heap.Fix(&s.h, 0)

	return true
}

// Len returns the number of elements currently retained.
func (s *Selector[T]) Len() int { return len(s.h.items) }

// Cap returns the fixed capacity K.
func (s *Selector[T]) Cap() int { return s.capacity }

// IsFull reports whether K elements are retained.
func (s *Selector[T]) IsFull() bool { return len(s.h.items) == s.capacity }

// PeekMax returns the largest retained element without removing it.
func (s *Selector[T]) PeekMax() (T, error) {
	if len(s.h.items) == 0 {
		var zero T

		return zero, ErrEmpty
	}

	return s.h.items[0], nil
}

// DrainAscending empties the Selector and returns its elements smallest first.
//
// The maximum is popped repeatedly and written to the tail of the same backing
// buffer, turning the max-heap into an ascending array in place. The returned
// slice is owned by the caller; a later Offer starts a new buffer.
func (s *Selector[T]) DrainAscending() []T {
	// 1) Capture the buffer before Pop shrinks the heap's view of it.
	n := len(s.h.items)
	out := s.h.items[:n:n]

	// 2) Each popped maximum lands in the slot the heap just gave up.
	for s.h.Len() > 0 {
		v := heap.Pop(&s.h).(T)
		out[s.h.Len()] = v
	}

	// 3) Hand the buffer over; the next Offer allocates its own.
	s.h.items = nil

	return out
}
