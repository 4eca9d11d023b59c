// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package spawn

import "context"

// OS spawns real processes, inheriting the caller's standard input.
type OS struct{}

// Spawn runs path with args and returns the captured result.
func (OS) Spawn(ctx context.Context, path string, args []string) *Result {
	cmd := &OSCommand{
		Path: path,
		Args: args,
	}

	return cmd.Run(ctx)
}
