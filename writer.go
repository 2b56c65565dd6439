package fixedcap

import "io"

var _ io.Writer = (*Writer)(nil)

// Writer adapts a byte Array into an io.Writer that accepts whatever fits
// into the remaining capacity and discards the rest. It never errors, so a
// full array simply reports zero bytes accepted.
type Writer struct {
	a *Array[byte]
}

// NewWriter wraps an Array of bytes into a byte sink.
func NewWriter(a *Array[byte]) *Writer {
	return &Writer{a: a}
}

// Write copies min(remaining capacity, len(p)) bytes into the array and
// returns how many were accepted.
func (w *Writer) Write(p []byte) (int, error) {
	n := copy(w.a.data[w.a.len:], p)
	w.a.len += n
	return n, nil
}
