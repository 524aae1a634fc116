// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ident provides validated, fixed-capacity POSIX account
// identifier types: [UserName] and [GroupName].
//
// Both are instantiations of the lib/semantic framework with the
// portable POSIX account-name grammar: lowercase letters, digits,
// "-", and "_"; non-empty; not starting with a digit or "-". The
// 31-byte capacity matches the portable login name limit, so a
// constructed value can always be handed to the operating system.
package ident
