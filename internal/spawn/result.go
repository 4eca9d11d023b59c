// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package spawn

// Result is the outcome of running an OSCommand.
type Result struct {
	ExitCode int    // Exit code of the child, -1 if it never ran or could not be read.
	Error    error  // Error, if any. A non-zero exit code alone is not an error.
	StdOut   []byte // Captured standard output.
	StdErr   []byte // Captured standard error.
}

// Started reports whether the process was created.
func (r *Result) Started() bool {
	return r != nil && !isStartFailure(r.Error)
}
