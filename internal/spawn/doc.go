// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package spawn runs an external program to completion and captures its
// standard output and standard error in full.
//
// Output is buffered, not streamed. The caller sees nothing until the child
// has exited, after which both streams are available as byte slices.
package spawn
