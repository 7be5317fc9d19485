// Package heap implements a generic binary min-heap backed by a slice.
package heap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrEmpty is returned by Peek and Pop when the heap holds no elements.
	ErrEmpty = errors.New("heap is empty")
)

// Compare should return a negative number when a is less than b,
// zero when they are equal and a positive number when a is greater than b.
type Compare[T any] func(a, b T) int

type Ordered[T any] interface {
	// Less should return true if element's value is less than v
	Less(v T) bool
}

// Min is a min-heap: Pop always returns the smallest element
// according to the comparator supplied at construction.
// It is not safe for concurrent use.
type Min[T any] struct {
	items []T
	cmp   Compare[T]
}

// NewMin creates a heap of items ordered by their natural order.
func NewMin[T constraints.Ordered](items ...T) *Min[T] {
	return NewMinFunc(natural[T], items...)
}

// NewMinLess creates a heap of items that know how to order themselves.
func NewMinLess[T Ordered[T]](items ...T) *Min[T] {
	return NewMinFunc(func(a, b T) int {
		if a.Less(b) {
			return -1
		} else if b.Less(a) {
			return 1
		}
		return 0
	}, items...)
}

// NewMinFunc creates a heap of items ordered by cmp.
// The items are copied, so the caller is free to reuse the slice.
// Construction takes O(n).
func NewMinFunc[T any](cmp Compare[T], items ...T) *Min[T] {
	if cmp == nil {
		panic("heap: nil comparator")
	}

	h := &Min[T]{
		items: make([]T, len(items)),
		cmp:   cmp,
	}
	copy(h.items, items)

	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

func natural[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Len returns the number of elements in the heap.
func (h *Min[T]) Len() int {
	return len(h.items)
}

// Peek returns the smallest element without removing it.
func (h *Min[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.items[0], nil
}

// Pop removes and returns the smallest element. The complexity is O(log n).
func (h *Min[T]) Pop() (T, error) {
	var zero T

	n := len(h.items)
	if n == 0 {
		return zero, ErrEmpty
	}

	root := h.items[0]
	last := n - 1

	h.items[0] = h.items[last]
	// Do not keep the moved element reachable past the new length.
	h.items[last] = zero
	h.items = h.items[0:last]

	if last > 0 {
		h.down(0)
	}

	return root, nil
}

// Push adds x to the heap. The complexity is O(log n).
func (h *Min[T]) Push(x T) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return left(i) + 1 }

func (h *Min[T]) less(i, j int) bool {
	return h.cmp(h.items[i], h.items[j]) < 0
}

func (h *Min[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *Min[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if h.cmp(h.items[p], h.items[i]) <= 0 {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Min[T]) down(i int) {
	n := len(h.items)

	for {
		smallest := i

		// Right only wins if it is strictly smaller, so equal children
		// resolve to the left one.
		if l := left(i); l < n && h.less(l, smallest) {
			smallest = l
		}
		if r := right(i); r < n && h.less(r, smallest) {
			smallest = r
		}

		if smallest == i {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}
