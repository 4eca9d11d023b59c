// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/stoop/cmd/cmdstate"
	"github.com/matt-FFFFFF/stoop/internal/ctxlog"
	"github.com/matt-FFFFFF/stoop/internal/interp"
	"github.com/matt-FFFFFF/stoop/internal/shell"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// isTerminal reports whether r is a terminal we can hand to liner.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func interactiveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, idx, err := cmdstate.Load(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	root := cmd.Root()

	var prompter shell.Prompter

	if isTerminal(root.Reader) {
		lp, err := shell.NewLinerPrompter(cfg.HistoryFile)
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to start line editor: %s", err.Error()), 1)
		}

		defer func() {
			if err := lp.Close(); err != nil {
				ctxlog.Warn(ctx, "failed to close line editor", "error", err)
			}
		}()

		prompter = lp
	} else {
		prompter = shell.NewPlainPrompter(root.Reader, root.Writer)
	}

	sh := shell.New(
		prompter,
		interp.New(idx, interp.WithOutput(root.Writer, root.ErrWriter)),
	)

	err = sh.Run(ctx)

	var exit *interp.ExitRequest
	if errors.As(err, &exit) {
		return cli.Exit("", exit.Code)
	}

	ctxlog.Error(ctx, "interpreter stopped", "error", err)

	return cli.Exit("", 1)
}
