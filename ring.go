package boundedqueue

import "iter"

// Ring is a generic fixed-capacity FIFO that drops its oldest element on
// overflow. Elements live in a circular buffer addressed by a head index and
// a length, so every operation except Clear and ToSlice is O(1).
//
// Ring is not safe for concurrent use. The zero value is not ready for use;
// construct via NewRing.
type Ring[T any] struct {
	buf  []T
	head int
	n    int
}

// NewRing creates a ring holding at most capacity elements.
//
// It panics with an error wrapping ErrInvalidCapacity when capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	CheckCapacity(capacity)
	return &Ring[T]{buf: make([]T, capacity)}
}

func (r *Ring[T]) slot(i int) int {
	i += r.head
	if i >= len(r.buf) {
		i -= len(r.buf)
	}
	return i
}

// Enqueue appends v to the tail.
//
// When the ring is full the head element is evicted first and returned with
// dropped set to true; the length stays at capacity. Complexity: O(1).
func (r *Ring[T]) Enqueue(v T) (evicted T, dropped bool) {
	if r.n == len(r.buf) {
		evicted, _ = r.Dequeue()
		dropped = true
	}
	r.buf[r.slot(r.n)] = v
	r.n++
	return evicted, dropped
}

// EnqueueMany enqueues items in order and returns how many older elements
// were evicted to make room. Complexity: O(k) for k items.
func (r *Ring[T]) EnqueueMany(items ...T) int {
	dropped := 0
	for _, v := range items {
		if _, ok := r.Enqueue(v); ok {
			dropped++
		}
	}
	return dropped
}

// Dequeue removes and returns the head value.
//
// The second result is false when the ring is empty. The vacated slot is
// reset to the zero value. Complexity: O(1).
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = r.slot(1)
	r.n--
	return v, true
}

// Peek returns the head value without removing it.
// The second result is false when the ring is empty. Complexity: O(1).
func (r *Ring[T]) Peek() (T, bool) {
	if r.n == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.head], true
}

// Len returns the number of elements currently stored.
func (r *Ring[T]) Len() int { return r.n }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// IsEmpty reports whether the ring is empty.
func (r *Ring[T]) IsEmpty() bool { return r.n == 0 }

// IsFull reports whether the next Enqueue will evict.
func (r *Ring[T]) IsFull() bool { return r.n == len(r.buf) }

// Clear removes all elements and zeroes their slots.
// Complexity: O(n) in the number of stored elements.
func (r *Ring[T]) Clear() {
	var zero T
	for i := 0; i < r.n; i++ {
		r.buf[r.slot(i)] = zero
	}
	r.head, r.n = 0, 0
}

// ToSlice returns a copy of the ring's contents in FIFO order.
// Complexity: O(n). The returned slice is independent of the ring.
func (r *Ring[T]) ToSlice() []T {
	out := make([]T, r.n)
	for i := range out {
		out[i] = r.buf[r.slot(i)]
	}
	return out
}

// All returns an iterator over the stored elements, oldest first.
// The ring must not be modified during iteration.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(r.buf[r.slot(i)]) {
				return
			}
		}
	}
}
