// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/stoop/cmd/cmdstate"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type run struct {
	exitCode int
	exited   bool
	stdout   string
	stderr   string
	cliErr   string
	err      error
}

// runRoot runs a fresh root command with the given input, stubbing the
// process exit and the environment.
func runRoot(t *testing.T, env map[string]string, input string, args ...string) run {
	t.Helper()

	var r run

	var out, errOut, ce bytes.Buffer

	stubs := gostub.Stub(&cli.OsExiter, func(code int) {
		r.exited = true
		r.exitCode = code
	})
	defer stubs.Reset()

	stubs.Stub(&cli.ErrWriter, &ce)
	stubs.Stub(&cmdstate.LookupEnv, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	root := New()
	root.Reader = strings.NewReader(input)
	root.Writer = &out
	root.ErrWriter = &errOut

	r.err = root.Run(context.Background(), append([]string{"stoop"}, args...))
	r.stdout = out.String()
	r.stderr = errOut.String()
	r.cliErr = ce.String()

	return r
}

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func TestRoot_Builtins(t *testing.T) {
	dir := t.TempDir()

	r := runRoot(t, map[string]string{"PATH": dir}, "echo hi there\ntype echo\ntype nothing\nexit 4\n")

	require.Error(t, r.err)
	assert.True(t, r.exited)
	assert.Equal(t, 4, r.exitCode)
	assert.Equal(t, "$ hi there\n$ echo is a shell builtin\n$ nothing not found\n$ ", r.stdout)
	assert.Empty(t, r.stderr)
	assert.Empty(t, r.cliErr)
}

func TestRoot_ExitZero(t *testing.T) {
	r := runRoot(t, map[string]string{"PATH": ""}, "exit\n")

	assert.True(t, r.exited)
	assert.Equal(t, 0, r.exitCode)
	assert.Equal(t, "$ ", r.stdout)
}

func TestRoot_ErrorsDoNotStopTheLoop(t *testing.T) {
	r := runRoot(t, map[string]string{"PATH": t.TempDir()}, "frobnicate\nexit x\necho ok\nexit 2\n")

	assert.Equal(t, 2, r.exitCode)
	assert.Equal(t,
		"$ frobnicate: command not found\n$ Error during parse of command exit\n$ ok\n$ ",
		r.stdout,
	)
}

func TestRoot_Invocation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}

	first := t.TempDir()
	second := t.TempDir()

	writeScript(t, first, "greet", `echo "hello $1"; echo "warned" >&2`)
	writeScript(t, second, "greet", `echo "shadowed"`)
	writeScript(t, second, "other", `echo "other ran"`)

	searchPath := first + string(os.PathListSeparator) + second
	input := "greet world\nother\ntype greet\nexit 0\n"

	r := runRoot(t, map[string]string{"PATH": "/nonexistent"}, input, "--search-path", searchPath)

	assert.Equal(t, 0, r.exitCode)
	assert.Equal(t,
		"$ hello world\n$ other ran\n$ greet is "+filepath.Join(first, "greet")+"\n$ ",
		r.stdout,
	)
	assert.Equal(t, "warned\n", r.stderr)
}

func TestRoot_MissingSearchPath(t *testing.T) {
	r := runRoot(t, map[string]string{}, "echo never\n")

	assert.True(t, r.exited)
	assert.Equal(t, 1, r.exitCode)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.cliErr, "failed to load configuration")
	assert.Contains(t, r.cliErr, "search path is not set")
}

func TestRoot_EndOfInputFails(t *testing.T) {
	r := runRoot(t, map[string]string{"PATH": ""}, "echo last")

	assert.True(t, r.exited)
	assert.Equal(t, 1, r.exitCode)
	assert.Equal(t, "$ last\n$ ", r.stdout)
}

func TestRoot_BuiltinsSubcommand(t *testing.T) {
	r := runRoot(t, map[string]string{"PATH": ""}, "", "builtins")

	require.NoError(t, r.err)
	assert.False(t, r.exited)
	assert.Equal(t, "echo\nexit\ntype\n", r.stdout)
}
