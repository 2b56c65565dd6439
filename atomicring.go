package fixedcap

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// AtomicRing is a bounded circular buffer with atomic cursors. Used
// directly it behaves like Ring for a single owner (or externally
// synchronized callers); Split turns it into a lock-free
// single-producer/single-consumer channel usable from two goroutines
// without locks.
//
// write is advanced only by the producer side, read only by the consumer
// side. Padding keeps each cursor on its own cache line so the two sides
// do not false-share.
type AtomicRing[T any] struct {
	mask     uint64
	capacity uint64
	data     []T
	drop     func(T)
	_        cpu.CacheLinePad
	read     atomic.Uint64 // consumer side
	_        cpu.CacheLinePad
	write    atomic.Uint64 // producer side
	_        cpu.CacheLinePad
	split    atomic.Bool
}

// NewAtomicRing creates a new bounded atomic ring.
// Capacity must be a power of two (1<<k).
func NewAtomicRing[T any](capacity uint64) *AtomicRing[T] {
	checkPow2(capacity)
	return &AtomicRing[T]{
		mask:     capacity - 1,
		capacity: capacity,
		data:     make([]T, capacity),
	}
}

// OnDrop registers fn to run exactly once per element the ring discards
// itself (owning-mode eviction, Clear). Set it before the ring is shared
// between goroutines. A split ring never evicts, so fn is never called
// from the Producer/Consumer side.
func (q *AtomicRing[T]) OnDrop(fn func(T)) {
	q.drop = fn
}

// Capacity returns the fixed ring capacity.
func (q *AtomicRing[T]) Capacity() uint64 {
	return q.capacity
}

// Size returns the number of live elements.
func (q *AtomicRing[T]) Size() uint64 {
	return q.write.Load() - q.read.Load()
}

// IsEmpty returns whether the ring holds no elements.
func (q *AtomicRing[T]) IsEmpty() bool {
	return q.write.Load() == q.read.Load()
}

// IsFull returns whether the ring is at capacity.
func (q *AtomicRing[T]) IsFull() bool {
	return q.Size() == q.capacity
}

// Push inserts an element, evicting the oldest one first when the ring is
// full. It never fails. Owning mode only: must not run concurrently with
// a live Producer/Consumer pair.
func (q *AtomicRing[T]) Push(v T) {
	w := q.write.Load()
	r := q.read.Load()
	if w-r == q.capacity {
		// the evicted slot is the very slot the new element lands in
		if q.drop != nil {
			q.drop(q.data[r&q.mask])
		}
		q.read.Store(r + 1)
	}
	q.data[w&q.mask] = v
	q.write.Store(w + 1)
}

// TryPush inserts an element only when there is room.
// Returns false when the ring is full; nothing is evicted.
// Owning mode only.
func (q *AtomicRing[T]) TryPush(v T) bool {
	w := q.write.Load()
	if w-q.read.Load() == q.capacity {
		return false
	}
	q.data[w&q.mask] = v
	q.write.Store(w + 1)
	return true
}

// Pop removes and returns the oldest element.
// Returns (zero, false) when the ring is empty. Owning mode only.
func (q *AtomicRing[T]) Pop() (T, bool) {
	var zero T
	r := q.read.Load()
	if r == q.write.Load() {
		return zero, false
	}
	idx := r & q.mask
	v := q.data[idx]
	q.data[idx] = zero // release the slot for GC
	q.read.Store(r + 1)
	return v, true
}

// Clear removes all elements, dropping each one. Owning mode only.
func (q *AtomicRing[T]) Clear() {
	var zero T
	r := q.read.Load()
	w := q.write.Load()
	for ; r != w; r++ {
		idx := r & q.mask
		if q.drop != nil {
			q.drop(q.data[idx])
		}
		q.data[idx] = zero
	}
	q.read.Store(r)
}
