// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builtins implements the command that lists the builtin commands.
package builtins

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/stoop/internal/interp"
	"github.com/urfave/cli/v3"
)

// ErrWriteOutput is returned when the list cannot be written.
var ErrWriteOutput = errors.New("failed to write builtins")

// New creates the command that lists the commands handled by the
// interpreter itself.
func New() *cli.Command {
	return &cli.Command{
		Name:   "builtins",
		Usage:  "List the builtin commands",
		Action: actionFunc,
	}
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	for _, name := range interp.Builtins() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	}

	return nil
}
