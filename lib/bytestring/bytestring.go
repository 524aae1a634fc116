// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytestring

import (
	"bytes"
	"errors"
	"fmt"
)

// MaxCapacity is the largest capacity a String can be constructed
// with. Sized to hold the longest path any supported platform allows,
// so one storage layout serves every identifier type in the system.
const MaxCapacity = 1023

var (
	// ErrCapacityExceeded is returned when an operation would grow a
	// String beyond its fixed capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidCodeUnit is returned when input contains a byte outside
	// the accepted range 1..127. NUL bytes and code units above 127 are
	// rejected — only the 7-bit ASCII subset of UTF-8 is representable.
	ErrInvalidCodeUnit = errors.New("invalid code unit")
)

// String is a fixed-capacity byte string with inline storage. The
// zero value is an empty string with capacity MaxCapacity. Copying a
// String duplicates the buffer; the copy is fully independent.
//
// All mutating methods use pointer receivers. Mutating the same
// instance from multiple goroutines without coordination is the
// caller's responsibility to exclude; distinct instances (including
// copies) are safe to use concurrently.
type String struct {
	size  uint32
	limit uint32
	data  [MaxCapacity + 1]byte
}

// validUnit reports whether b is a representable code unit. The
// accepted range 1..127 excludes NUL (the terminator) and anything
// outside 7-bit ASCII.
func validUnit(b byte) bool {
	return b >= 1 && b <= 127
}

// New creates an empty String with the given capacity. The capacity is
// fixed for the lifetime of the value. A capacity outside
// [1, MaxCapacity] is a programming error and panics.
func New(capacity int) String {
	if capacity < 1 || capacity > MaxCapacity {
		panic(fmt.Sprintf("bytestring: capacity %d out of range [1, %d]", capacity, MaxCapacity))
	}
	return String{limit: uint32(capacity)}
}

// FromBytes creates a String with the given capacity holding value.
// Fails with ErrCapacityExceeded when value is longer than capacity
// and with ErrInvalidCodeUnit when value contains a byte outside
// 1..127.
func FromBytes(capacity int, value []byte) (String, error) {
	s := New(capacity)
	if err := s.PushBytes(value); err != nil {
		return String{}, fmt.Errorf("creating byte string: %w", err)
	}
	return s, nil
}

// FromBytesUnchecked creates a String holding value without validating
// code units.
//
// Caller contract: value must contain only code units in 1..127 and
// len(value) must not exceed capacity. A value longer than the
// capacity is a contract violation and panics.
func FromBytesUnchecked(capacity int, value []byte) String {
	s := New(capacity)
	if len(value) > capacity {
		panic(fmt.Sprintf("bytestring: unchecked value of length %d exceeds capacity %d", len(value), capacity))
	}
	copy(s.data[:], value)
	s.size = uint32(len(value))
	s.data[s.size] = 0
	return s
}

// FromNulTerminated creates a String from a NUL-terminated buffer,
// taking the bytes before the first NUL. Code units are not validated.
// Fails with ErrCapacityExceeded when the terminated content is longer
// than capacity.
//
// Caller contract: buf must contain a NUL terminator and the content
// before it must be valid code units. An unterminated buffer is a
// contract violation and panics.
func FromNulTerminated(capacity int, buf []byte) (String, error) {
	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		panic("bytestring: buffer is not NUL-terminated")
	}
	if end > capacity {
		return String{}, fmt.Errorf("creating byte string from NUL-terminated buffer of length %d: %w", end, ErrCapacityExceeded)
	}
	return FromBytesUnchecked(capacity, buf[:end]), nil
}

// FromNulTerminatedTruncated is FromNulTerminated except that content
// longer than capacity is silently truncated to capacity instead of
// failing. The caller contract on termination and code-unit validity
// is the same.
func FromNulTerminatedTruncated(capacity int, buf []byte) String {
	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		panic("bytestring: buffer is not NUL-terminated")
	}
	if end > capacity {
		end = capacity
	}
	return FromBytesUnchecked(capacity, buf[:end])
}

// Capacity returns the fixed capacity. The zero value reports
// MaxCapacity.
func (s *String) Capacity() int {
	if s.limit == 0 {
		return MaxCapacity
	}
	return int(s.limit)
}

// Len returns the current length in bytes.
func (s *String) Len() int { return int(s.size) }

// IsEmpty reports whether the string has length zero.
func (s *String) IsEmpty() bool { return s.size == 0 }

// IsFull reports whether the string is at capacity.
func (s *String) IsFull() bool { return s.Len() == s.Capacity() }

// Clear removes all content. The capacity is unchanged.
func (s *String) Clear() {
	s.size = 0
	s.data[0] = 0
}

// Bytes returns the content as a byte slice aliasing the internal
// buffer, without the NUL terminator. The slice must be treated as
// read-only and is invalidated by any mutation.
func (s *String) Bytes() []byte { return s.data[:s.size] }

// String returns a copy of the content as a Go string.
func (s *String) String() string { return string(s.data[:s.size]) }

// At returns the byte at idx, or false when idx is out of bounds.
func (s *String) At(idx int) (byte, bool) {
	if idx < 0 || idx >= int(s.size) {
		return 0, false
	}
	return s.data[idx], true
}

// Substring returns the content in [from, to) aliasing the internal
// buffer, or false when the range is out of bounds. The slice must be
// treated as read-only and is invalidated by any mutation.
func (s *String) Substring(from, to int) ([]byte, bool) {
	if from < 0 || to < from || to > int(s.size) {
		return nil, false
	}
	return s.data[from:to], true
}

// Find returns the index of the first occurrence of needle, or false
// when needle does not occur. An empty needle is found at index 0.
func (s *String) Find(needle []byte) (int, bool) {
	idx := bytes.Index(s.Bytes(), needle)
	return idx, idx >= 0
}

// RFind returns the index of the last occurrence of needle, or false
// when needle does not occur.
func (s *String) RFind(needle []byte) (int, bool) {
	idx := bytes.LastIndex(s.Bytes(), needle)
	return idx, idx >= 0
}

// Push appends a single byte. Fails with ErrCapacityExceeded when the
// string is full and ErrInvalidCodeUnit when b is outside 1..127.
func (s *String) Push(b byte) error {
	return s.InsertBytes(s.Len(), []byte{b})
}

// Pop removes and returns the last byte. Returns false when the
// string is empty.
func (s *String) Pop() (byte, bool) {
	if s.size == 0 {
		return 0, false
	}
	b := s.data[s.size-1]
	s.size--
	s.data[s.size] = 0
	return b, true
}

// Append appends count repetitions of b. The operation is atomic: it
// fails without mutation when the result would exceed capacity or b is
// not a valid code unit. A negative count is a programming error and
// panics.
func (s *String) Append(count int, b byte) error {
	if count < 0 {
		panic(fmt.Sprintf("bytestring: negative append count %d", count))
	}
	if !validUnit(b) {
		return fmt.Errorf("appending %d copies of 0x%02x: %w", count, b, ErrInvalidCodeUnit)
	}
	if s.Len()+count > s.Capacity() {
		return fmt.Errorf("appending %d copies of %q to string of length %d: %w", count, Escape([]byte{b}), s.size, ErrCapacityExceeded)
	}
	for i := 0; i < count; i++ {
		s.data[int(s.size)+i] = b
	}
	s.size += uint32(count)
	s.data[s.size] = 0
	return nil
}

// PushBytes appends value. The operation is atomic: it fails without
// mutation when the result would exceed capacity or value contains an
// invalid code unit.
func (s *String) PushBytes(value []byte) error {
	return s.InsertBytes(s.Len(), value)
}

// Insert inserts a single byte at idx, shifting the tail right. An
// idx outside [0, Len()] is a programming error and panics.
func (s *String) Insert(idx int, b byte) error {
	return s.InsertBytes(idx, []byte{b})
}

// InsertBytes inserts value at idx, shifting the tail right. The
// operation is atomic: it fails without mutation when the result would
// exceed capacity or value contains an invalid code unit. An idx
// outside [0, Len()] is a programming error and panics.
func (s *String) InsertBytes(idx int, value []byte) error {
	if idx < 0 || idx > int(s.size) {
		panic(fmt.Sprintf("bytestring: insert index %d out of bounds for length %d", idx, s.size))
	}
	for _, b := range value {
		if !validUnit(b) {
			return fmt.Errorf("inserting %q: byte 0x%02x: %w", Escape(value), b, ErrInvalidCodeUnit)
		}
	}
	if s.Len()+len(value) > s.Capacity() {
		return fmt.Errorf("inserting %q into string of length %d with capacity %d: %w",
			Escape(value), s.size, s.Capacity(), ErrCapacityExceeded)
	}
	copy(s.data[idx+len(value):], s.data[idx:s.size])
	copy(s.data[idx:], value)
	s.size += uint32(len(value))
	s.data[s.size] = 0
	return nil
}

// Remove removes and returns the byte at idx, shifting the tail left.
// An idx outside [0, Len()) is a programming error and panics.
func (s *String) Remove(idx int) byte {
	if idx < 0 || idx >= int(s.size) {
		panic(fmt.Sprintf("bytestring: remove index %d out of bounds for length %d", idx, s.size))
	}
	b := s.data[idx]
	s.RemoveRange(idx, 1)
	return b
}

// RemoveRange removes n bytes starting at idx, shifting the tail
// left. A range outside the current content is a programming error
// and panics.
func (s *String) RemoveRange(idx, n int) {
	if idx < 0 || n < 0 || idx+n > int(s.size) {
		panic(fmt.Sprintf("bytestring: remove range [%d, %d) out of bounds for length %d", idx, idx+n, s.size))
	}
	copy(s.data[idx:], s.data[idx+n:s.size])
	s.size -= uint32(n)
	s.data[s.size] = 0
}

// Truncate shortens the string to n bytes. A n of at least Len() is a
// no-op.
func (s *String) Truncate(n int) {
	if n < 0 || n >= int(s.size) {
		return
	}
	s.size = uint32(n)
	s.data[s.size] = 0
}

// StripPrefix removes prefix from the front of the string. Reports
// whether the prefix was present and removed.
func (s *String) StripPrefix(prefix []byte) bool {
	if !bytes.HasPrefix(s.Bytes(), prefix) {
		return false
	}
	s.RemoveRange(0, len(prefix))
	return true
}

// StripSuffix removes suffix from the end of the string. Reports
// whether the suffix was present and removed.
func (s *String) StripSuffix(suffix []byte) bool {
	if !bytes.HasSuffix(s.Bytes(), suffix) {
		return false
	}
	s.RemoveRange(s.Len()-len(suffix), len(suffix))
	return true
}

// Retain removes every byte for which keep returns false.
func (s *String) Retain(keep func(byte) bool) {
	out := 0
	for i := 0; i < int(s.size); i++ {
		if keep(s.data[i]) {
			s.data[out] = s.data[i]
			out++
		}
	}
	s.size = uint32(out)
	s.data[s.size] = 0
}

// Assign replaces the content with a copy of other's content. The
// receiver keeps its own capacity; assignment from a shorter-capacity
// string always succeeds (widening), while content longer than the
// receiver's capacity fails with ErrCapacityExceeded without mutation
// (narrowing is never implicit).
func (s *String) Assign(other *String) error {
	if other.Len() > s.Capacity() {
		return fmt.Errorf("assigning string of length %d to string with capacity %d: %w",
			other.Len(), s.Capacity(), ErrCapacityExceeded)
	}
	copy(s.data[:], other.Bytes())
	s.size = other.size
	s.data[s.size] = 0
	return nil
}

// Equal reports whether both strings hold identical bytes. Capacities
// do not participate in comparison.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// EqualBytes reports whether the content equals value.
func (s *String) EqualBytes(value []byte) bool {
	return bytes.Equal(s.Bytes(), value)
}

// Compare returns -1, 0, or 1 comparing raw bytes lexicographically;
// on a common prefix the shorter string orders first. The comparison
// is memory order, not locale aware.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

// Escape returns value with non-printable bytes escaped (\t, \r, \n,
// or \xHH) for diagnostics and error messages.
func Escape(value []byte) string {
	const hexDigits = "0123456789abcdef"
	var out []byte
	for _, b := range value {
		switch {
		case b == '\t':
			out = append(out, '\\', 't')
		case b == '\r':
			out = append(out, '\\', 'r')
		case b == '\n':
			out = append(out, '\\', 'n')
		case b >= 0x20 && b <= 0x7e:
			out = append(out, b)
		default:
			out = append(out, '\\', 'x', hexDigits[b>>4], hexDigits[b&0xf])
		}
	}
	return string(out)
}
