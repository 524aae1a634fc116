// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package semantic builds strongly typed string values with a content
// grammar on top of [bytestring.String].
//
// A [String] is parameterized by a [Grammar]: a stateless type whose
// methods pin the capacity and decide whether a byte sequence contains
// invalid characters or invalid content. The grammar is a type
// parameter, so each concrete identifier type (a file name, a path, a
// user name) carries its grammar at the type level — a value of one
// grammar can never hold content validated against another, and the
// checks resolve at compile time with no runtime dispatch.
//
// Every constructor and every mutation validates before committing.
// Mutations build a scratch copy of the payload, apply the low-level
// edit, re-validate the whole result, and only then replace the live
// value. A failed operation returns an error and leaves the value
// byte-for-byte unchanged; a transiently invalid value is never
// observable.
//
// Values marshal as text (encoding.TextMarshaler/TextUnmarshaler), so
// they round-trip through JSON directly and through CBOR via
// lib/codec's text-marshaler bridging.
package semantic
