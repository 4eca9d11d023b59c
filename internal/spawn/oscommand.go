// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package spawn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/matt-FFFFFF/stoop/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when an operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadBuffer is returned when a pipe could not be read to the end.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
)

// OSCommand is a single external program invocation.
// The child inherits the working directory, environment and standard input
// of the interpreter.
type OSCommand struct {
	Path string   // Full path of the executable.
	Args []string // Arguments, not including the executable name itself.
}

// Run starts the command, waits for it to exit and returns its captured output.
//
// The context only carries the logger. The child is never killed: it runs
// until it exits on its own.
func (c *OSCommand) Run(ctx context.Context) *Result {
	logger := ctxlog.Logger(ctx).With("path", c.Path)
	logger.Debug("command info", "args", c.Args)

	res := &Result{ExitCode: -1}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		res.Error = fmt.Errorf("%w: %w", ErrFailedToCreatePipe, err)
		return res
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		closeAll(rOut, wOut)

		res.Error = fmt.Errorf("%w: %w", ErrFailedToCreatePipe, err)

		return res
	}

	argv := slices.Concat([]string{filepath.Base(c.Path)}, c.Args)

	ps, err := os.StartProcess(c.Path, argv, &os.ProcAttr{
		Env:   os.Environ(),
		Files: []*os.File{os.Stdin, wOut, wErr},
	})

	// The child holds its own copies of the write ends. Ours must be closed
	// so the readers see EOF once the child exits.
	closeAll(wOut, wErr)

	if err != nil {
		closeAll(rOut, rErr)
		logger.Debug("process did not start", "error", err)

		res.Error = fmt.Errorf("%w: %w", ErrCouldNotStartProcess, err)

		return res
	}

	logger.Debug("process started", "pid", ps.Pid)

	var stdout, stderr bytes.Buffer

	g := errgroup.Group{}
	g.Go(func() error { return drain(&stdout, rOut) })
	g.Go(func() error { return drain(&stderr, rErr) })

	state, waitErr := ps.Wait()
	readErr := g.Wait()

	closeAll(rOut, rErr)

	res.StdOut = stdout.Bytes()
	res.StdErr = stderr.Bytes()

	if waitErr != nil {
		res.Error = waitErr
		return res
	}

	res.ExitCode = state.ExitCode()
	res.Error = readErr

	logger.Debug("process finished",
		"exitCode", res.ExitCode,
		"stdoutBytes", len(res.StdOut),
		"stderrBytes", len(res.StdErr),
	)

	return res
}

func drain(dst *bytes.Buffer, r io.Reader) error {
	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToReadBuffer, err)
	}

	return nil
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

func isStartFailure(err error) bool {
	return errors.Is(err, ErrCouldNotStartProcess) || errors.Is(err, ErrFailedToCreatePipe)
}
