// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pathname

import (
	"fmt"

	"github.com/bureau-foundation/fixedstring/lib/semantic"
)

// PathGrammar is the grammar for [Path]: entry characters plus
// separators, with no content-level restriction. A Path may name a
// file or a directory, be empty, end in a separator, or contain
// relative components.
type PathGrammar struct{}

// Capacity returns the platform path length limit.
func (PathGrammar) Capacity() int { return MaxPathLength }

// ContainsInvalidCharacters reports whether value contains a byte
// that is neither an entry character nor a separator.
func (PathGrammar) ContainsInvalidCharacters(value []byte) bool {
	return containsInvalidPathCharacters(value)
}

// IsInvalidContent always reports false: any sequence of valid path
// characters is an acceptable Path.
func (PathGrammar) IsInvalidContent(value []byte) bool { return false }

// Path is a validated, fixed-capacity filesystem path, file or
// directory shaped.
type Path = semantic.String[PathGrammar]

// NewPath creates a validated Path from value.
func NewPath(value []byte) (Path, error) {
	path, err := semantic.New[PathGrammar](value)
	if err != nil {
		return Path{}, fmt.Errorf("creating path: %w", err)
	}
	return path, nil
}
