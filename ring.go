package fixedcap

// Ring is a bounded circular buffer for a single owner. When full, Push
// evicts exactly one oldest element per insert, preserving FIFO order of
// the survivors.
//
// The read/write cursors grow monotonically and wrap at the machine word,
// never at the capacity, so read == write always means empty and can never
// mean full.
type Ring[T any] struct {
	mask     uint64
	capacity uint64
	data     []T
	read     uint64 // advanced on pop/evict
	write    uint64 // advanced on push
	drop     func(T)
}

// NewRing creates a new bounded ring.
// Capacity must be a power of two (1<<k).
func NewRing[T any](capacity uint64) *Ring[T] {
	checkPow2(capacity)
	return &Ring[T]{
		mask:     capacity - 1,
		capacity: capacity,
		data:     make([]T, capacity),
	}
}

// OnDrop registers fn to run exactly once per element the ring discards
// itself (eviction on overflow, Clear). Popped elements are never passed
// to fn.
func (r *Ring[T]) OnDrop(fn func(T)) {
	r.drop = fn
}

// Capacity returns the fixed ring capacity.
func (r *Ring[T]) Capacity() uint64 {
	return r.capacity
}

// Size returns the number of live elements.
func (r *Ring[T]) Size() uint64 {
	return r.write - r.read
}

// IsEmpty returns whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.write == r.read
}

// IsFull returns whether the ring is at capacity.
func (r *Ring[T]) IsFull() bool {
	return r.Size() == r.capacity
}

// Push inserts an element, evicting the oldest one first when the ring is
// full. It never fails.
func (r *Ring[T]) Push(v T) {
	if r.Size() == r.capacity {
		// the slot being reclaimed is the very slot the new element
		// lands in, so no zeroing is needed
		if r.drop != nil {
			r.drop(r.data[r.read&r.mask])
		}
		r.read++
	}
	r.data[r.write&r.mask] = v
	r.write++
}

// TryPush inserts an element only when there is room.
// Returns false when the ring is full; nothing is evicted.
func (r *Ring[T]) TryPush(v T) bool {
	if r.Size() == r.capacity {
		return false
	}
	r.data[r.write&r.mask] = v
	r.write++
	return true
}

// Pop removes and returns the oldest element.
// Returns (zero, false) when the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.read == r.write {
		return zero, false
	}
	idx := r.read & r.mask
	v := r.data[idx]
	r.data[idx] = zero // release the slot for GC
	r.read++
	return v, true
}

// Clear removes all elements, dropping each one.
func (r *Ring[T]) Clear() {
	var zero T
	for r.read != r.write {
		idx := r.read & r.mask
		if r.drop != nil {
			r.drop(r.data[idx])
		}
		r.data[idx] = zero
		r.read++
	}
}
