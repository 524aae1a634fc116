// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pathname

import (
	"fmt"

	"github.com/bureau-foundation/fixedstring/lib/semantic"
)

// FileNameGrammar is the grammar for [FileName]: entry characters
// only (no separators), non-empty, not "." or "..", no trailing dot.
type FileNameGrammar struct{}

// Capacity returns the platform file name limit.
func (FileNameGrammar) Capacity() int { return MaxFileNameLength }

// ContainsInvalidCharacters reports whether value contains a byte
// outside the entry character class.
func (FileNameGrammar) ContainsInvalidCharacters(value []byte) bool {
	for _, b := range value {
		if !isEntryCharacter(b) {
			return true
		}
	}
	return false
}

// IsInvalidContent reports whether value is not a valid file name.
func (FileNameGrammar) IsInvalidContent(value []byte) bool {
	return !IsValidFileName(value)
}

// FileName is a validated, fixed-capacity file name. Every
// successfully constructed or mutated FileName satisfies
// [IsValidFileName].
type FileName = semantic.String[FileNameGrammar]

// NewFileName creates a validated FileName from value.
func NewFileName(value []byte) (FileName, error) {
	name, err := semantic.New[FileNameGrammar](value)
	if err != nil {
		return FileName{}, fmt.Errorf("creating file name: %w", err)
	}
	return name, nil
}
