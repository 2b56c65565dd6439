package fixedcap

import "testing"

// The byte sink accepts whole writes while room remains, then a partial
// write up to capacity, then nothing — never an error.
func TestWriterPartialAccept(t *testing.T) {
	const (
		capacity = 512
		size     = 100
	)

	a := NewArray[byte](capacity)
	w := NewWriter(a)
	data := make([]byte, size)

	fullWrites := capacity / size
	for i := 0; i < fullWrites; i++ {
		n, err := w.Write(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != size {
			t.Fatalf("expected %d bytes accepted, got %d", size, n)
		}
		if a.Len() != (i+1)*size {
			t.Fatalf("expected length %d, got %d", (i+1)*size, a.Len())
		}
	}

	n, err := w.Write(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := capacity - fullWrites*size; n != want {
		t.Fatalf("expected partial write of %d bytes, got %d", want, n)
	}
	if a.Len() != capacity {
		t.Fatalf("expected full array, got length %d", a.Len())
	}

	n, err = w.Write(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("full array must accept 0 bytes, got %d", n)
	}
}
