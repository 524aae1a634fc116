// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pathname

const (
	// MaxFileNameLength is the maximum length of a file name in bytes.
	MaxFileNameLength = 128

	// MaxPathLength is the maximum length of a path in bytes.
	MaxPathLength = 255

	// PathSeparators lists the byte values that separate path entries.
	PathSeparators = `/\`
)
