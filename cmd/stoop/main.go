// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the stoop command-line interface (CLI).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/stoop"
	"github.com/matt-FFFFFF/stoop/cmd"
	"github.com/matt-FFFFFF/stoop/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", stoop.Version, stoop.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args) // Exit codes are handled by cli framework

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
