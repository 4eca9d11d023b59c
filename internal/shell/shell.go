// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell runs the read, parse, dispatch loop.
package shell

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/stoop/internal/ctxlog"
)

// DefaultPrompt is written before every read.
const DefaultPrompt = "$ "

var (
	// ErrReadInput is returned when the next line cannot be read, including at
	// end of input.
	ErrReadInput = errors.New("failed to read input")
	// ErrHistory is returned when the history file cannot be read or written.
	ErrHistory = errors.New("history file error")
)

// Executor executes one input line. *interp.Interpreter satisfies it.
type Executor interface {
	Execute(ctx context.Context, line string) error
}

// Shell ties a Prompter to an Executor.
type Shell struct {
	prompter Prompter
	executor Executor
}

// New creates a Shell reading from p and executing with e.
func New(p Prompter, e Executor) *Shell {
	return &Shell{
		prompter: p,
		executor: e,
	}
}

// Run loops until the executor returns an error, which is returned as-is.
// For the exit builtin that is an *interp.ExitRequest. A read failure is
// returned joined with ErrReadInput.
func (s *Shell) Run(ctx context.Context) error {
	logger := ctxlog.Logger(ctx)

	for {
		line, err := s.prompter.Prompt(DefaultPrompt)
		if err != nil {
			logger.Debug("read failed", "error", err)
			return errors.Join(ErrReadInput, err)
		}

		if err := s.executor.Execute(ctx, line); err != nil {
			return err
		}
	}
}
