// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytestring

// Unchecked is the escape-hatch view of a String for zero-copy interop
// with peer libraries that need a raw, NUL-terminated byte buffer.
//
// Unlike the checked String methods, nothing here re-validates: a
// caller writing through this view can break the encoding invariant
// (code units in 1..127, NUL terminator at data[len]). The contract is
// the caller's to uphold — every mutation through Unchecked must leave
// the underlying String in a state that FromBytes would have accepted.
// Violating the contract is a programming error, not a recoverable
// condition.
type Unchecked struct {
	s *String
}

// Unchecked returns the escape-hatch view of s. The view aliases s;
// it does not copy.
func (s *String) Unchecked() Unchecked {
	return Unchecked{s: s}
}

// Bytes returns the content including the NUL terminator, aliasing the
// internal buffer. Suitable for handing to code that expects a C-style
// string of Len()+1 bytes.
func (u Unchecked) Bytes() []byte {
	return u.s.data[: u.s.size+1 : u.s.size+1]
}

// Pointer returns the address of the first byte of the buffer. The
// buffer is NUL-terminated at the current length. The pointer is
// invalidated when the String is copied or moved.
func (u Unchecked) Pointer() *byte {
	return &u.s.data[0]
}

// Set writes b at idx without bounds or code-unit checks beyond the
// storage itself.
//
// Caller contract: idx < Len(), and b is a code unit in 1..127.
func (u Unchecked) Set(idx int, b byte) {
	u.s.data[idx] = b
}

// SetLen declares the content length to be n and writes the NUL
// terminator. Used after peer code has filled the buffer through
// Pointer or Bytes.
//
// Caller contract: n does not exceed Capacity() and data[:n] holds
// valid code units.
func (u Unchecked) SetLen(n int) {
	u.s.size = uint32(n)
	u.s.data[n] = 0
}
