// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/stoop/internal/ctxlog"
	"github.com/matt-FFFFFF/stoop/internal/spawn"
)

// Spawner runs an external program to completion.
// A nil result is reported as a process that could not be started.
type Spawner interface {
	Spawn(ctx context.Context, path string, args []string) *spawn.Result
}

// Interpreter parses and dispatches input lines.
// It holds no per-line state.
type Interpreter struct {
	resolver Resolver
	spawner  Spawner
	out      io.Writer
	errOut   io.Writer
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets the writers for standard output and standard error.
func WithOutput(out, errOut io.Writer) Option {
	return func(i *Interpreter) {
		i.out = out
		i.errOut = errOut
	}
}

// WithSpawner replaces the process spawner.
func WithSpawner(s Spawner) Option {
	return func(i *Interpreter) {
		i.spawner = s
	}
}

// New creates an Interpreter resolving executables with resolver.
// By default it writes to os.Stdout and os.Stderr and spawns real processes.
func New(resolver Resolver, opts ...Option) *Interpreter {
	i := &Interpreter{
		resolver: resolver,
		spawner:  spawn.OS{},
		out:      os.Stdout,
		errOut:   os.Stderr,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Parse parses line against the interpreter's resolver.
func (i *Interpreter) Parse(line string) (Command, error) {
	return Parse(line, i.resolver)
}

// Execute parses and dispatches one line.
//
// Parse errors are printed as a single line and are not returned. The only
// errors returned are an *ExitRequest or a failure to write output.
func (i *Interpreter) Execute(ctx context.Context, line string) error {
	cmd, err := i.Parse(line)
	if err != nil {
		ctxlog.Debug(ctx, "parse failed", "line", line, "error", err)
		return i.println(err.Error())
	}

	return i.Dispatch(ctx, cmd)
}

// Dispatch executes cmd.
func (i *Interpreter) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Empty:
		return i.println("")
	case Exit:
		return &ExitRequest{Code: c.Code}
	case Echo:
		return i.println(c.Text)
	case TypeQuery:
		return i.typeQuery(c.Name)
	case Invocation:
		return i.invoke(ctx, c)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommandType, cmd)
	}
}

func (i *Interpreter) typeQuery(name string) error {
	if IsBuiltin(name) {
		return i.println(name + " is a shell builtin")
	}

	if path, ok := i.resolver.Path(name); ok {
		return i.println(name + " is " + path)
	}

	return i.println(name + " not found")
}

func (i *Interpreter) invoke(ctx context.Context, c Invocation) error {
	logger := ctxlog.Logger(ctx).With("path", c.Path)

	res := i.spawner.Spawn(ctx, c.Path, c.Args)
	if res == nil {
		res = &spawn.Result{ExitCode: -1, Error: spawn.ErrCouldNotStartProcess}
	}

	if !res.Started() {
		logger.Debug("spawn failed", "error", res.Error)
		return i.println(res.Error.Error())
	}

	if res.Error != nil {
		logger.Warn("process output may be incomplete", "error", res.Error)
	}

	logger.Debug("process exited", "exitCode", res.ExitCode)

	if _, err := i.out.Write(res.StdOut); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	if _, err := i.errOut.Write(res.StdErr); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}

func (i *Interpreter) println(s string) error {
	if _, err := fmt.Fprintln(i.out, s); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}
