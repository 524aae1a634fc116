// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package namehash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/fixedstring/lib/pathname"
)

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation ensures the same identifier produces different digests
// in different contexts, preventing cross-domain collisions between
// segment and socket namespaces.
type domainKey [32]byte

// Domain separation keys. Fixed constants — changing them changes
// every derived file name. The byte values are the ASCII encoding of
// the domain name, zero-padded to 32 bytes, so the keys are
// inspectable in hex dumps without sacrificing any property of the
// keyed mode.
var (
	segmentDomainKey = domainKey{
		'f', 'i', 'x', 'e', 'd', 's', 't', 'r', 'i', 'n', 'g', '.',
		's', 'e', 'g', 'm', 'e', 'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	socketDomainKey = domainKey{
		'f', 'i', 'x', 'e', 'd', 's', 't', 'r', 'i', 'n', 'g', '.',
		's', 'o', 'c', 'k', 'e', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// SegmentName derives the shared memory segment file name for an
// arbitrary identifier. Deterministic: the same identifier always
// yields the same name.
func SegmentName(identifier []byte) pathname.FileName {
	return derive(segmentDomainKey, identifier, ".shm")
}

// SocketName derives the Unix socket file name for an arbitrary
// identifier. Deterministic, and never equal to the segment name for
// the same identifier (distinct hash domains, distinct suffixes).
func SocketName(identifier []byte) pathname.FileName {
	return derive(socketDomainKey, identifier, ".sock")
}

// derive hashes identifier in the given domain and builds the file
// name "<hex digest><suffix>".
func derive(key domainKey, identifier []byte, suffix string) pathname.FileName {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("namehash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(identifier)

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))

	// 64 hex characters plus a short suffix is within the file name
	// capacity on every platform. The content is hex plus a dotted
	// suffix, which the file name grammar always accepts, so
	// construction cannot fail on valid package state.
	name, err := pathname.NewFileName([]byte(hex.EncodeToString(digest[:]) + suffix))
	if err != nil {
		panic(fmt.Sprintf("namehash: derived name rejected by grammar: %v", err))
	}
	return name
}
