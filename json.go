package fixedcap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrCapacityOverflow reports a decoded sequence longer than the
// destination's capacity.
var ErrCapacityOverflow = fmt.Errorf("capacity overflow")

var (
	_ json.Marshaler   = (*Array[int])(nil)
	_ json.Unmarshaler = (*Array[int])(nil)
)

// MarshalJSON encodes the live elements as a JSON array.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Slice())
}

// UnmarshalJSON resets the sequence and appends decoded elements one at a
// time, failing with ErrCapacityOverflow the moment the input holds more
// elements than the sequence can take.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	a.Clear()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("expected JSON array, got %v", tok)
	}

	for dec.More() {
		var v T
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if !a.Push(v) {
			return fmt.Errorf("decoding into capacity %d: %w", a.Capacity(), ErrCapacityOverflow)
		}
	}

	// consume the closing ']'
	_, err = dec.Token()
	return err
}
