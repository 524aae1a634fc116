// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// messages that carry fixed-capacity identifier values.
//
// IPC control messages (service registration, segment announcements,
// discovery responses) travel as CBOR; the identifier types defined in
// lib/pathname and lib/ident appear in those messages as CBOR text
// strings via their encoding.TextMarshaler implementation. This
// package pins the encoder and decoder configuration so every consumer
// encodes identically without duplicating setup.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes, which makes
// encoded messages safe to compare and hash.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (sockets):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// Decoding re-runs validation: an identifier field whose wire content
// violates its grammar fails the whole Unmarshal, so no invalid
// identifier value can enter a process through this package.
package codec
