// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for objdesc packages.
//
// [WriteFile] writes a fixture into the test's temporary directory and
// returns its path, for commands and loaders that take file arguments.
//
// [RequireReceive] and [RequireSend] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that tests driving
// goroutines, such as a running terminal program, never hang.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
