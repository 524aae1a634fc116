// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Fixedstring-check validates candidate identifier values against the
// library's grammars from the command line. It is a pipeline building
// block: shell steps and CI jobs can gate on identifier validity
// without writing Go.
//
// Values come either from the command line:
//
//	fixedstring-check --kind filename my-service.shm other.sock
//
// or from a YAML manifest of {value, kind} entries:
//
//	fixedstring-check --manifest identifiers.yaml
//
// Exit codes:
//
//	0  all values valid
//	1  at least one value invalid (each failure printed to stderr)
//	2  usage error (unknown kind, unreadable manifest, bad flags)
package main
