// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pathname

import (
	"bytes"
	"strings"
)

// isEntryCharacter reports whether b may appear in a path entry:
// letters, digits, and the fixed special set "-", ".", ":", "_".
// Separators are not entry characters.
func isEntryCharacter(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '-' || b == '.' || b == ':' || b == '_':
		return true
	}
	return false
}

// isSeparator reports whether b is a path separator on this platform.
func isSeparator(b byte) bool {
	return strings.IndexByte(PathSeparators, b) >= 0
}

// firstSeparator returns the index of the first separator byte in
// name, or -1.
func firstSeparator(name []byte) int {
	for i, b := range name {
		if isSeparator(b) {
			return i
		}
	}
	return -1
}

// lastSeparator returns the index of the last separator byte in name,
// or -1.
func lastSeparator(name []byte) int {
	for i := len(name) - 1; i >= 0; i-- {
		if isSeparator(name[i]) {
			return i
		}
	}
	return -1
}

// IsValidPathEntry reports whether entry is a well-formed single path
// component. The relative components "." and ".." are accepted only
// when allowRelative is set. An empty entry is valid — distinguishing
// empty from present-but-invalid is the caller's concern. A trailing
// dot is rejected for cross-platform compatibility (Windows strips
// trailing dots on creation, which would make two distinct names
// collide).
func IsValidPathEntry(entry []byte, allowRelative bool) bool {
	if len(entry) == 0 {
		return true
	}
	if bytes.Equal(entry, []byte(".")) || bytes.Equal(entry, []byte("..")) {
		return allowRelative
	}
	for _, b := range entry {
		if !isEntryCharacter(b) {
			return false
		}
	}
	return entry[len(entry)-1] != '.'
}

// IsValidFileName reports whether name is a well-formed file name:
// non-empty and a valid non-relative path entry.
func IsValidFileName(name []byte) bool {
	return len(name) > 0 && IsValidPathEntry(name, false)
}

// EndsWithPathSeparator reports whether name is non-empty and its
// last byte is a platform path separator.
func EndsWithPathSeparator(name []byte) bool {
	return len(name) > 0 && isSeparator(name[len(name)-1])
}

// IsValidPathToFile reports whether name is a well-formed path whose
// final entry names a file. A trailing separator implies a directory
// and is rejected. The component after the last separator must be a
// valid file name; the prefix before it must be empty (an absolute
// path's root) or a valid directory path.
func IsValidPathToFile(name []byte) bool {
	if EndsWithPathSeparator(name) {
		return false
	}
	idx := lastSeparator(name)
	if idx < 0 {
		return IsValidFileName(name)
	}
	if !IsValidFileName(name[idx+1:]) {
		return false
	}
	directory := name[:idx]
	return len(directory) == 0 || IsValidPathToDirectory(directory)
}

// IsValidPathToDirectory reports whether name is a well-formed
// directory path. Every non-empty component must be a valid path
// entry, with "." and ".." permitted. Zero-length components between
// adjacent separators are skipped: multiple separators in a row are
// equivalent to one. The empty path is not a directory.
func IsValidPathToDirectory(name []byte) bool {
	if len(name) == 0 {
		return false
	}
	rest := name
	for {
		idx := firstSeparator(rest)
		if idx < 0 {
			// Trailing component without a separator after it. May be
			// empty when the path ends in a separator.
			return IsValidPathEntry(rest, true)
		}
		if segment := rest[:idx]; len(segment) > 0 && !IsValidPathEntry(segment, true) {
			return false
		}
		rest = rest[idx+1:]
	}
}
