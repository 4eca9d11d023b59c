// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package interp turns one input line into a Command and executes it.
//
// Parsing trims the line and splits it on single spaces. Quoting and escaping
// are not supported, and runs of spaces produce empty tokens that are kept
// as-is. The first token selects a builtin (exit, echo, type) or an executable
// resolved through a Resolver. Anything else is a parse error.
//
// Dispatch writes builtin output directly and runs invocations through a
// Spawner, copying the child's buffered stdout and stderr once it has exited.
// The exit builtin does not terminate the process itself: Dispatch returns an
// *ExitRequest and the caller decides how to stop.
package interp
