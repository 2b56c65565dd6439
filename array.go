package fixedcap

import (
	"fmt"
	"iter"
	"slices"
)

// Array is a bounded growable sequence backed by storage allocated once at
// construction. Slots [0, len) hold live elements; dead slots are zeroed on
// removal so the GC can reclaim whatever they referenced.
// Single owner, not safe for concurrent use.
type Array[T any] struct {
	data []T
	len  int
	drop func(T)
}

// NewArray creates an empty sequence able to hold up to 'capacity' elements.
func NewArray[T any](capacity int) *Array[T] {
	if capacity < 0 {
		panic("capacity must be >= 0")
	}
	return &Array[T]{data: make([]T, capacity)}
}

// OnDrop registers fn to run exactly once for every element the container
// discards itself (Truncate, Clear, shrinking Resize, iterator teardown).
// Elements handed back to the caller are never passed to fn.
func (a *Array[T]) OnDrop(fn func(T)) {
	a.drop = fn
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.len
}

// Capacity returns the fixed sequence capacity.
func (a *Array[T]) Capacity() int {
	return len(a.data)
}

// IsEmpty returns whether the sequence holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.len == 0
}

// Push appends an element at the end.
// Returns false when the sequence is full; nothing is stored and the
// caller keeps the value.
func (a *Array[T]) Push(v T) bool {
	if a.len == len(a.data) {
		return false
	}
	a.PushUnchecked(v)
	return true
}

// PushUnchecked appends an element without checking capacity.
// Caller must guarantee Len() < Capacity().
func (a *Array[T]) PushUnchecked(v T) {
	a.data[a.len] = v
	a.len++
}

// Pop removes and returns the last element.
// Returns (zero, false) when the sequence is empty.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if a.len == 0 {
		return zero, false
	}
	return a.PopUnchecked(), true
}

// PopUnchecked removes and returns the last element without checking
// emptiness. Caller must guarantee Len() > 0.
func (a *Array[T]) PopUnchecked() T {
	var zero T
	a.len--
	v := a.data[a.len]
	a.data[a.len] = zero // release the slot for GC
	return v
}

// SwapRemove removes the element at index i by swapping it with the last
// element and popping. O(1), does not preserve order.
// Panics when i is out of bounds.
func (a *Array[T]) SwapRemove(i int) T {
	if i < 0 || i >= a.len {
		panic("index out of bounds")
	}
	return a.SwapRemoveUnchecked(i)
}

// SwapRemoveUnchecked removes the element at index i by swapping it with
// the last element and popping, without checking bounds.
// Caller must guarantee 0 <= i < Len().
func (a *Array[T]) SwapRemoveUnchecked(i int) T {
	a.data[i], a.data[a.len-1] = a.data[a.len-1], a.data[i]
	return a.PopUnchecked()
}

// Truncate keeps the first n elements, dropping the rest.
// Does nothing when n >= Len().
func (a *Array[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	var zero T
	for a.len > n {
		a.len--
		if a.drop != nil {
			a.drop(a.data[a.len])
		}
		a.data[a.len] = zero
	}
}

// Clear removes all elements.
func (a *Array[T]) Clear() {
	a.Truncate(0)
}

// Resize grows the sequence with copies of value until Len() == n, or
// truncates when n < Len(). Panics when n exceeds capacity.
func (a *Array[T]) Resize(n int, value T) {
	if n > len(a.data) {
		panic("resize beyond capacity")
	}
	a.ResizeUnchecked(n, value)
}

// ResizeUnchecked resizes without checking capacity.
// Caller must guarantee n <= Capacity().
func (a *Array[T]) ResizeUnchecked(n int, value T) {
	if n <= a.len {
		a.Truncate(n)
		return
	}
	for a.len < n {
		a.PushUnchecked(value)
	}
}

// ResizeDefault grows the sequence with zero values until Len() == n, or
// truncates when n < Len(). Panics when n exceeds capacity.
func (a *Array[T]) ResizeDefault(n int) {
	if n > len(a.data) {
		panic("resize beyond capacity")
	}
	a.ResizeDefaultUnchecked(n)
}

// ResizeDefaultUnchecked resizes with zero values without checking
// capacity. Caller must guarantee n <= Capacity().
func (a *Array[T]) ResizeDefaultUnchecked(n int) {
	var zero T
	a.ResizeUnchecked(n, zero)
}

// Slice returns a view over the live elements.
// The view is valid until the next mutating call.
func (a *Array[T]) Slice() []T {
	return a.data[:a.len]
}

// Clone copies the live elements into a fresh sequence with the same
// capacity and drop hook. Mutating the copy does not affect the original.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{
		data: make([]T, len(a.data)),
		len:  a.len,
		drop: a.drop,
	}
	copy(c.data, a.data[:a.len])
	return c
}

// Equal reports whether two sequences hold the same live elements in the
// same order. Capacity takes no part in the comparison.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// String formats the live elements only.
func (a *Array[T]) String() string {
	return fmt.Sprint(a.Slice())
}

// Consume returns a one-shot iterator that transfers every live element
// out in storage order and leaves the sequence empty. When the caller
// breaks early, the elements never yielded are dropped during teardown, so
// nothing leaks either way. Range over the returned sequence at most once.
func (a *Array[T]) Consume() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		i := 0
		for ; i < a.len; i++ {
			v := a.data[i]
			a.data[i] = zero
			if !yield(v) {
				i++
				break
			}
		}
		// drop whatever the caller never asked for
		for ; i < a.len; i++ {
			if a.drop != nil {
				a.drop(a.data[i])
			}
			a.data[i] = zero
		}
		a.len = 0
	}
}
