// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/stoop/cmd/builtins"
	"github.com/matt-FFFFFF/stoop/cmd/cmdstate"
	"github.com/matt-FFFFFF/stoop/cmd/index"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = New()

// New creates the root command. Without a subcommand it runs the
// interactive interpreter.
func New() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			builtins.New(),
			index.New(),
		},
		Flags:     cmdstate.Flags(),
		Before:    cmdstate.Before,
		Action:    interactiveAction,
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "stoop",
		Description: `Stoop is a minimal interactive command interpreter. It reads one line at a
time, runs the builtins exit, echo and type itself, and runs anything else
found on the search path with its output passed through.`,
		Usage:     "stoop",
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
	}
}
