// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package semantic

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/fixedstring/lib/bytestring"
)

var (
	// ErrExceedsMaximumLength is returned when a candidate value, or
	// the result of a mutation, would be longer than the grammar's
	// fixed capacity.
	ErrExceedsMaximumLength = errors.New("exceeds maximum length")

	// ErrInvalidContent is returned when a candidate value, or the
	// result of a mutation, fails the grammar's character-level or
	// content-level predicate.
	ErrInvalidContent = errors.New("invalid content")
)

// Grammar defines the validation contract a [String] enforces. A
// Grammar implementation is a stateless zero-size struct type; its
// methods are pure functions of their input. It is plugged in as a
// type parameter, never as runtime state.
type Grammar interface {
	// Capacity returns the fixed maximum length in bytes.
	Capacity() int

	// ContainsInvalidCharacters reports whether value contains a byte
	// outside the grammar's character set. Checked before
	// IsInvalidContent.
	ContainsInvalidCharacters(value []byte) bool

	// IsInvalidContent reports whether value as a whole violates the
	// grammar, for inputs that already passed the character check.
	IsInvalidContent(value []byte) bool
}

// String is a fixed-capacity byte string whose content satisfies the
// grammar G after every successful operation. Like the underlying
// [bytestring.String] it contains no pointers and is safe to copy by
// raw bytes across process boundaries.
//
// The zero value is empty and has not been validated; grammars that
// reject empty content treat it as invalid. Construct values through
// [New].
type String[G Grammar] struct {
	value bytestring.String
}

// New validates value against the grammar G and returns the
// constructed string. The length is checked first: a value longer than
// the grammar's capacity fails with ErrExceedsMaximumLength before any
// content inspection. Content violations fail with ErrInvalidContent.
func New[G Grammar](value []byte) (String[G], error) {
	var g G
	if len(value) > g.Capacity() {
		return String[G]{}, fmt.Errorf("value %q has length %d, maximum is %d: %w",
			bytestring.Escape(value), len(value), g.Capacity(), ErrExceedsMaximumLength)
	}
	if err := validate(g, value); err != nil {
		return String[G]{}, err
	}
	payload, err := bytestring.FromBytes(g.Capacity(), value)
	if err != nil {
		// Unreachable for inputs that passed validate; kept as a
		// safety net for grammars that accept bytes outside 1..127.
		return String[G]{}, fmt.Errorf("value %q: %w", bytestring.Escape(value), ErrInvalidContent)
	}
	return String[G]{value: payload}, nil
}

// NewUnchecked constructs a String holding value without validation.
//
// Caller contract: value satisfies the grammar G and is no longer
// than its capacity. Intended for trusted, already-validated interop
// data (a value read back out of a shared memory segment it was
// validated into).
func NewUnchecked[G Grammar](value []byte) String[G] {
	var g G
	return String[G]{value: bytestring.FromBytesUnchecked(g.Capacity(), value)}
}

// validate runs the character predicate then the content predicate.
// The 7-bit code unit restriction is enforced here as well, mirroring
// the UTF-8 check the underlying storage performs on commit.
func validate[G Grammar](g G, value []byte) error {
	for _, b := range value {
		if b == 0 || b > 127 {
			return fmt.Errorf("value %q contains code unit 0x%02x outside the 7-bit subset: %w",
				bytestring.Escape(value), b, ErrInvalidContent)
		}
	}
	if g.ContainsInvalidCharacters(value) {
		return fmt.Errorf("value %q contains invalid characters: %w", bytestring.Escape(value), ErrInvalidContent)
	}
	if g.IsInvalidContent(value) {
		return fmt.Errorf("value %q: %w", bytestring.Escape(value), ErrInvalidContent)
	}
	return nil
}

// scratch returns a mutable copy of the payload with the grammar's
// capacity. The zero value's payload has never been sized, so it is
// replaced by an empty string of the right capacity.
func (s *String[G]) scratch() bytestring.String {
	var g G
	if s.value.Len() == 0 && s.value.Capacity() != g.Capacity() {
		return bytestring.New(g.Capacity())
	}
	return s.value
}

// commit validates scratch and, on success, replaces the live payload.
// On failure the live payload is untouched.
func (s *String[G]) commit(scratch bytestring.String) error {
	var g G
	if err := validate(g, scratch.Bytes()); err != nil {
		return err
	}
	s.value = scratch
	return nil
}

// wrapStorage translates a bytestring mutation error into the
// semantic error taxonomy.
func wrapStorage(err error) error {
	if errors.Is(err, bytestring.ErrCapacityExceeded) {
		return fmt.Errorf("%v: %w", err, ErrExceedsMaximumLength)
	}
	return fmt.Errorf("%v: %w", err, ErrInvalidContent)
}

// AsString returns a copy of the underlying fixed-capacity string.
// The copy always satisfies the grammar.
func (s *String[G]) AsString() bytestring.String { return s.value }

// Bytes returns the content aliasing the internal buffer. The slice
// must be treated as read-only and is invalidated by any mutation.
func (s *String[G]) Bytes() []byte { return s.value.Bytes() }

// String returns a copy of the content as a Go string.
func (s *String[G]) String() string { return s.value.String() }

// Len returns the current length in bytes.
func (s *String[G]) Len() int { return s.value.Len() }

// Capacity returns the grammar's fixed capacity.
func (s *String[G]) Capacity() int {
	var g G
	return g.Capacity()
}

// IsEmpty reports whether the string has length zero.
func (s *String[G]) IsEmpty() bool { return s.value.Len() == 0 }

// IsFull reports whether the string is at the grammar's capacity.
func (s *String[G]) IsFull() bool { return s.value.Len() == s.Capacity() }

// Push appends a single byte, validating the result before committing.
func (s *String[G]) Push(b byte) error {
	return s.InsertBytes(s.Len(), []byte{b})
}

// PushBytes appends value, validating the result before committing.
func (s *String[G]) PushBytes(value []byte) error {
	return s.InsertBytes(s.Len(), value)
}

// Insert inserts a single byte at idx, validating the result before
// committing.
func (s *String[G]) Insert(idx int, b byte) error {
	return s.InsertBytes(idx, []byte{b})
}

// InsertBytes inserts value at idx, validating the result before
// committing. On failure the live value is unchanged and the error
// wraps ErrExceedsMaximumLength or ErrInvalidContent. An idx outside
// [0, Len()] is a programming error and panics.
func (s *String[G]) InsertBytes(idx int, value []byte) error {
	scratch := s.scratch()
	if err := scratch.InsertBytes(idx, value); err != nil {
		return wrapStorage(err)
	}
	return s.commit(scratch)
}

// Pop removes the last byte and returns it. Returns false without an
// error when the string is empty. Fails without mutation when the
// shortened content would violate the grammar.
func (s *String[G]) Pop() (byte, bool, error) {
	if s.IsEmpty() {
		return 0, false, nil
	}
	scratch := s.scratch()
	b, _ := scratch.Pop()
	if err := s.commit(scratch); err != nil {
		return 0, false, err
	}
	return b, true, nil
}

// Remove removes the byte at idx and returns it. Fails without
// mutation when the shortened content would violate the grammar. An
// idx outside [0, Len()) is a programming error and panics.
func (s *String[G]) Remove(idx int) (byte, error) {
	scratch := s.scratch()
	b := scratch.Remove(idx)
	if err := s.commit(scratch); err != nil {
		return 0, err
	}
	return b, nil
}

// RemoveRange removes n bytes starting at idx. Fails without mutation
// when the shortened content would violate the grammar. A range
// outside the current content is a programming error and panics.
func (s *String[G]) RemoveRange(idx, n int) error {
	scratch := s.scratch()
	scratch.RemoveRange(idx, n)
	return s.commit(scratch)
}

// Truncate shortens the string to n bytes. Fails without mutation
// when the shortened content would violate the grammar.
func (s *String[G]) Truncate(n int) error {
	scratch := s.scratch()
	scratch.Truncate(n)
	return s.commit(scratch)
}

// StripPrefix removes prefix from the front. Reports whether the
// prefix was present; when removing it would violate the grammar the
// value is unchanged and the error wraps ErrInvalidContent.
func (s *String[G]) StripPrefix(prefix []byte) (bool, error) {
	scratch := s.scratch()
	if !scratch.StripPrefix(prefix) {
		return false, nil
	}
	if err := s.commit(scratch); err != nil {
		return false, err
	}
	return true, nil
}

// StripSuffix removes suffix from the end. Reports whether the suffix
// was present; when removing it would violate the grammar the value is
// unchanged and the error wraps ErrInvalidContent.
func (s *String[G]) StripSuffix(suffix []byte) (bool, error) {
	scratch := s.scratch()
	if !scratch.StripSuffix(suffix) {
		return false, nil
	}
	if err := s.commit(scratch); err != nil {
		return false, err
	}
	return true, nil
}

// Retain removes every byte for which keep returns false. Fails
// without mutation when the result would violate the grammar.
func (s *String[G]) Retain(keep func(byte) bool) error {
	scratch := s.scratch()
	scratch.Retain(keep)
	return s.commit(scratch)
}

// Equal reports whether both values hold identical bytes.
func (s *String[G]) Equal(other *String[G]) bool {
	return s.value.Equal(&other.value)
}

// EqualBytes reports whether the content equals value, where value is
// first validated against the grammar. Content that the grammar
// rejects compares unequal to every String, mirroring that such
// content could never be constructed.
func (s *String[G]) EqualBytes(value []byte) bool {
	other, err := New[G](value)
	if err != nil {
		return false
	}
	return s.Equal(&other)
}

// Compare returns -1, 0, or 1 comparing raw bytes lexicographically;
// on a common prefix the shorter value orders first.
func (s *String[G]) Compare(other *String[G]) int {
	return s.value.Compare(&other.value)
}

// Less reports whether s orders before other.
func (s *String[G]) Less(other *String[G]) bool {
	return s.Compare(other) < 0
}

// MarshalText implements encoding.TextMarshaler. The text form is the
// raw content. Value receiver so non-pointer struct fields marshal
// correctly through encoding/json and lib/codec.
func (s String[G]) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.value.Bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// validated exactly like [New]; grammars that reject empty content
// reject empty input.
func (s *String[G]) UnmarshalText(data []byte) error {
	parsed, err := New[G](data)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
