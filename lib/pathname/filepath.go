// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pathname

import (
	"fmt"

	"github.com/bureau-foundation/fixedstring/lib/semantic"
)

// FilePathGrammar is the grammar for [FilePath]: entry characters
// plus separators, and the content must name a file — the final
// component is a valid file name, never a trailing separator or a
// relative component.
type FilePathGrammar struct{}

// Capacity returns the platform path length limit.
func (FilePathGrammar) Capacity() int { return MaxPathLength }

// ContainsInvalidCharacters reports whether value contains a byte
// that is neither an entry character nor a separator.
func (FilePathGrammar) ContainsInvalidCharacters(value []byte) bool {
	return containsInvalidPathCharacters(value)
}

// IsInvalidContent reports whether value is not a valid path to a
// file.
func (FilePathGrammar) IsInvalidContent(value []byte) bool {
	return !IsValidPathToFile(value)
}

// containsInvalidPathCharacters is the shared character predicate for
// path-shaped grammars.
func containsInvalidPathCharacters(value []byte) bool {
	for _, b := range value {
		if !isEntryCharacter(b) && !isSeparator(b) {
			return true
		}
	}
	return false
}

// FilePath is a validated, fixed-capacity path to a file. Every
// successfully constructed or mutated FilePath satisfies
// [IsValidPathToFile].
type FilePath = semantic.String[FilePathGrammar]

// NewFilePath creates a validated FilePath from value.
func NewFilePath(value []byte) (FilePath, error) {
	path, err := semantic.New[FilePathGrammar](value)
	if err != nil {
		return FilePath{}, fmt.Errorf("creating file path: %w", err)
	}
	return path, nil
}
