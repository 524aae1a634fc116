// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pathname provides validated, fixed-capacity filesystem
// identifier types: [FileName], [FilePath], and [Path].
//
// The types are instantiations of the lib/semantic framework with the
// path grammar baked in at the type level. A constructed FileName is
// always a well-formed platform-independent file name; a FilePath
// always names a file (never a directory); a Path may name either.
// The grammar is deliberately restrictive so that a name valid here is
// valid on every supported platform: characters are limited to
// letters, digits, and "-", ".", ":", "_" (plus separators in paths),
// entries never end in a dot, and "." and ".." are accepted only as
// directory components, never as leaf names.
//
// Capacities and the separator set are platform constants: 255/1023
// bytes and "/" on POSIX-like systems, 128/255 bytes and "/" or "\"
// on Windows.
//
// The grammar predicates ([IsValidPathEntry], [IsValidFileName],
// [IsValidPathToFile], [IsValidPathToDirectory],
// [EndsWithPathSeparator]) are exported for callers that need to check
// candidate byte sequences without constructing a value. They are pure
// and total: any input, including empty, yields a boolean.
package pathname
