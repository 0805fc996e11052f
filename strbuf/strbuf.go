// Package strbuf provides a growable byte string with explicit capacity
// control and amortized-doubling growth.
//
// Unlike Go's immutable string type, a String is mutated in place, which
// makes it useful for building and editing text incrementally without
// reallocating on every change. A String is not safe for concurrent use.
package strbuf

import (
	"bytes"
	"errors"
)

// ErrOutOfRange is returned when an index is outside [0, Len()) or a
// substring start is past the end.
var ErrOutOfRange = errors.New("strbuf: index out of range")

// String is a mutable byte string. The zero value is an empty string ready
// for use.
type String struct {
	data []byte
}

// New returns an empty string with no allocated capacity.
func New() *String { return &String{} }

// FromString returns a String holding a copy of s.
func FromString(s string) *String {
	return &String{data: []byte(s)}
}

// Repeat returns a String of n copies of c.
func Repeat(c byte, n int) *String {
	return &String{data: bytes.Repeat([]byte{c}, n)}
}

// Len returns the number of bytes.
func (s *String) Len() int { return len(s.data) }

// Cap returns the allocated capacity in bytes.
func (s *String) Cap() int { return cap(s.data) }

// Empty reports whether the string has no bytes.
func (s *String) Empty() bool { return len(s.data) == 0 }

// grow ensures capacity for at least n bytes. Capacity at least doubles on
// every reallocation, giving amortized O(1) appends.
func (s *String) grow(n int) {
	if n <= cap(s.data) {
		return
	}
	newCap := 2 * cap(s.data)
	if newCap < n {
		newCap = n
	}
	buf := make([]byte, len(s.data), newCap)
	copy(buf, s.data)
	s.data = buf
}

// PushBack appends a single byte.
func (s *String) PushBack(c byte) {
	s.grow(len(s.data) + 1)
	s.data = append(s.data, c)
}

// PopBack removes the last byte. Popping an empty string is a no-op.
func (s *String) PopBack() {
	if len(s.data) > 0 {
		s.data = s.data[:len(s.data)-1]
	}
}

// At returns the byte at index i.
func (s *String) At(i int) (byte, error) {
	if i < 0 || i >= len(s.data) {
		return 0, ErrOutOfRange
	}
	return s.data[i], nil
}

// Set overwrites the byte at index i.
func (s *String) Set(i int, c byte) error {
	if i < 0 || i >= len(s.data) {
		return ErrOutOfRange
	}
	s.data[i] = c
	return nil
}

// Front returns the first byte.
func (s *String) Front() (byte, error) { return s.At(0) }

// Back returns the last byte.
func (s *String) Back() (byte, error) { return s.At(len(s.data) - 1) }

// Append appends the contents of other.
func (s *String) Append(other *String) {
	s.grow(len(s.data) + len(other.data))
	s.data = append(s.data, other.data...)
}

// AppendString appends the bytes of a Go string.
func (s *String) AppendString(str string) {
	s.grow(len(s.data) + len(str))
	s.data = append(s.data, str...)
}

// Write appends p, implementing io.Writer. It never fails.
func (s *String) Write(p []byte) (int, error) {
	s.grow(len(s.data) + len(p))
	s.data = append(s.data, p...)
	return len(p), nil
}

// Concat returns a new String holding left followed by right. Neither
// argument is modified.
func Concat(left, right *String) *String {
	out := &String{data: make([]byte, 0, len(left.data)+len(right.data))}
	out.data = append(out.data, left.data...)
	out.data = append(out.data, right.data...)
	return out
}

// Find returns the index of the first occurrence of sub, or Len() when sub
// is absent. The empty substring is found at index 0.
func (s *String) Find(sub string) int {
	i := bytes.Index(s.data, []byte(sub))
	if i < 0 {
		return len(s.data)
	}
	return i
}

// RFind returns the index of the last occurrence of sub, or Len() when sub
// is absent. The empty substring is found at index 0.
func (s *String) RFind(sub string) int {
	if len(sub) == 0 {
		return 0
	}
	i := bytes.LastIndex(s.data, []byte(sub))
	if i < 0 {
		return len(s.data)
	}
	return i
}

// Substr returns a copy of count bytes starting at start. A count past the
// end is clamped; a start past the end is an error.
func (s *String) Substr(start, count int) (*String, error) {
	if start < 0 || start > len(s.data) || count < 0 {
		return nil, ErrOutOfRange
	}
	if count > len(s.data)-start {
		count = len(s.data) - start
	}
	out := &String{data: make([]byte, count)}
	copy(out.data, s.data[start:start+count])
	return out, nil
}

// Clear removes all bytes but keeps the allocated capacity.
func (s *String) Clear() {
	s.data = s.data[:0]
}

// ShrinkToFit reallocates so that capacity equals length.
func (s *String) ShrinkToFit() {
	if len(s.data) < cap(s.data) {
		buf := make([]byte, len(s.data))
		copy(buf, s.data)
		s.data = buf
	}
}

// Equal reports whether two strings hold the same bytes.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.data, other.data)
}

// Compare returns -1, 0, or 1 comparing byte-wise lexicographically.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.data, other.data)
}

// Clone returns an independent copy.
func (s *String) Clone() *String {
	out := &String{data: make([]byte, len(s.data))}
	copy(out.data, s.data)
	return out
}

// Bytes returns the underlying bytes. The slice aliases the string's
// storage and is invalidated by any mutation that reallocates.
func (s *String) Bytes() []byte { return s.data }

// String returns the contents as an immutable Go string.
func (s *String) String() string { return string(s.data) }
