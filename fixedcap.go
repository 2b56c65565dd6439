// Package fixedcap provides fixed-capacity containers that never allocate
// after construction: a bounded growable sequence (Array), a single-owner
// circular buffer (Ring), and an atomic ring (AtomicRing) that can be split
// into a lock-free single-producer/single-consumer pair.
//
// All containers carve their backing storage once, up front, and keep
// length/cursor bookkeeping over it. None of them grows past the declared
// capacity.
package fixedcap

// Ring cursors are mapped to physical slots with pos & (capacity-1),
// so ring capacities must be a nonzero power of two.
func checkPow2(capacity uint64) {
	if capacity == 0 || (capacity&(capacity-1)) != 0 {
		panic("capacity must be power of 2 and > 0")
	}
}
