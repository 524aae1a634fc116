// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ident

import (
	"fmt"

	"github.com/bureau-foundation/fixedstring/lib/semantic"
)

// MaxAccountNameLength is the portable maximum length of a POSIX user
// or group name in bytes.
const MaxAccountNameLength = 31

// containsInvalidAccountCharacters reports whether value contains a
// byte outside the portable account-name character set.
func containsInvalidAccountCharacters(value []byte) bool {
	for _, b := range value {
		switch {
		case b >= 'a' && b <= 'z':
		case b >= '0' && b <= '9':
		case b == '-' || b == '_':
		default:
			return true
		}
	}
	return false
}

// isInvalidAccountContent reports whether value is not a well-formed
// account name: empty names and names starting with a digit or "-"
// are rejected.
func isInvalidAccountContent(value []byte) bool {
	if len(value) == 0 {
		return true
	}
	return value[0] == '-' || (value[0] >= '0' && value[0] <= '9')
}

// UserNameGrammar is the grammar for [UserName].
type UserNameGrammar struct{}

// Capacity returns the portable login name limit.
func (UserNameGrammar) Capacity() int { return MaxAccountNameLength }

// ContainsInvalidCharacters reports whether value contains a byte
// outside the account-name character set.
func (UserNameGrammar) ContainsInvalidCharacters(value []byte) bool {
	return containsInvalidAccountCharacters(value)
}

// IsInvalidContent reports whether value is not a well-formed user
// name.
func (UserNameGrammar) IsInvalidContent(value []byte) bool {
	return isInvalidAccountContent(value)
}

// GroupNameGrammar is the grammar for [GroupName]. Identical rules to
// [UserNameGrammar]; a distinct type so a group name can never be
// passed where a user name is expected.
type GroupNameGrammar struct{}

// Capacity returns the portable group name limit.
func (GroupNameGrammar) Capacity() int { return MaxAccountNameLength }

// ContainsInvalidCharacters reports whether value contains a byte
// outside the account-name character set.
func (GroupNameGrammar) ContainsInvalidCharacters(value []byte) bool {
	return containsInvalidAccountCharacters(value)
}

// IsInvalidContent reports whether value is not a well-formed group
// name.
func (GroupNameGrammar) IsInvalidContent(value []byte) bool {
	return isInvalidAccountContent(value)
}

// UserName is a validated, fixed-capacity POSIX user name.
type UserName = semantic.String[UserNameGrammar]

// GroupName is a validated, fixed-capacity POSIX group name.
type GroupName = semantic.String[GroupNameGrammar]

// NewUserName creates a validated UserName from value.
func NewUserName(value []byte) (UserName, error) {
	name, err := semantic.New[UserNameGrammar](value)
	if err != nil {
		return UserName{}, fmt.Errorf("creating user name: %w", err)
	}
	return name, nil
}

// NewGroupName creates a validated GroupName from value.
func NewGroupName(value []byte) (GroupName, error) {
	name, err := semantic.New[GroupNameGrammar](value)
	if err != nil {
		return GroupName{}, fmt.Errorf("creating group name: %w", err)
	}
	return name, nil
}
