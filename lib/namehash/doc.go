// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package namehash maps arbitrary identifiers to shared-memory-safe
// file names.
//
// Service names chosen by users are unconstrained: they may contain
// spaces, unicode, separators, or exceed the platform file name
// limit. Shared memory segments and sockets, however, must be named
// with a valid [pathname.FileName]. This package bridges the two by
// hashing the identifier with domain-separated keyed BLAKE3 and
// hex-encoding the digest: equal identifiers always map to the same
// file name, distinct identifiers practically never collide, and the
// result is well-formed by construction on every platform.
package namehash
