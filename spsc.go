package fixedcap

// Split hands out the two ends of the ring as a lock-free SPSC channel:
// exactly one Producer and one Consumer. Each handle must stay on a single
// goroutine; together they may run concurrently without locks. Unlike the
// owning Push, a Producer never evicts — pushing into a full ring is
// rejected until the Consumer makes room.
//
// A cursor store publishes the slot access that precedes it, and the
// matching load on the other side observes the cursor before touching the
// slot; sync/atomic operations are sequentially consistent, which subsumes
// the acquire/release pairing this handoff needs.
//
// Split panics when called a second time: a second producer or consumer on
// the same ring would be a data race.
func (q *AtomicRing[T]) Split() (*Producer[T], *Consumer[T]) {
	if q.split.Swap(true) {
		panic("ring is already split")
	}
	return &Producer[T]{ring: q}, &Consumer[T]{ring: q}
}

// Producer is the write end of a split AtomicRing.
// All methods must be called from a single goroutine.
type Producer[T any] struct {
	ring *AtomicRing[T]
	// cachedRead avoids a cross-core load of read on every push; it is
	// refreshed only when the ring looks full.
	cachedRead uint64
}

// TryPush inserts an element.
// Returns false when the ring is full; nothing is evicted and the caller
// keeps the value.
func (p *Producer[T]) TryPush(v T) bool {
	q := p.ring
	w := q.write.Load()
	if w-p.cachedRead == q.capacity {
		p.cachedRead = q.read.Load()
		if w-p.cachedRead == q.capacity {
			return false
		}
	}
	q.data[w&q.mask] = v
	q.write.Store(w + 1) // publish the slot to the consumer
	return true
}

// Consumer is the read end of a split AtomicRing.
// All methods must be called from a single goroutine.
type Consumer[T any] struct {
	ring *AtomicRing[T]
	// cachedWrite avoids a cross-core load of write on every pop; it is
	// refreshed only when the ring looks empty.
	cachedWrite uint64
}

// Pop removes and returns the oldest element.
// Returns (zero, false) when the ring is empty at this instant.
func (c *Consumer[T]) Pop() (T, bool) {
	var zero T
	q := c.ring
	r := q.read.Load()
	if r == c.cachedWrite {
		c.cachedWrite = q.write.Load()
		if r == c.cachedWrite {
			return zero, false
		}
	}
	idx := r & q.mask
	v := q.data[idx]
	q.data[idx] = zero  // must happen before the slot is reclaimed
	q.read.Store(r + 1) // publish reclamation to the producer
	return v, true
}
