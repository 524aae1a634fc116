// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytestring provides a fixed-capacity, allocation-free byte
// string for values that cross process boundaries by raw byte copy.
//
// A [String] carries its storage inline: a capacity fixed at
// construction, a length, and a NUL-terminated byte buffer. It holds no
// pointers, so a byte-for-byte copy of a String — including a memcpy
// into a shared memory segment — is a fully independent, fully valid
// value. This is the property the whole package exists for; everything
// else follows from it.
//
// Content is restricted to the 7-bit ASCII subset of UTF-8 (code units
// 1..127). Every mutating operation checks capacity and code-unit
// validity before touching the buffer and either fully succeeds or
// leaves the value unchanged. The NUL terminator at data[len] is
// maintained across all operations so the buffer can be handed to
// peer libraries that expect C-style strings.
//
// Read access is split into two views: the ordinary methods are
// bounds-checked and cannot violate the invariants, while [Unchecked]
// provides raw indexed access and the NUL-terminated buffer for
// zero-copy interop. Unchecked carries caller contracts — misuse is a
// programming error, not a recoverable condition.
package bytestring
