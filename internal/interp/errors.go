// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"strconv"
)

var (
	// ErrParse is matched by every error Parse returns.
	ErrParse = errors.New("parse error")
	// ErrWriteOutput is returned when the interpreter cannot write to its output.
	ErrWriteOutput = errors.New("failed to write output")
	// ErrUnknownCommandType is returned by Dispatch for a Command it does not handle.
	ErrUnknownCommandType = errors.New("unknown command type")
)

// UnknownCommandError is returned when the first token is neither a builtin
// nor an indexed executable.
type UnknownCommandError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return e.Name + ": command not found"
}

// Unwrap makes the error match ErrParse.
func (e *UnknownCommandError) Unwrap() error {
	return ErrParse
}

// MalformedArgumentError is returned when a builtin is given arguments it
// cannot accept.
type MalformedArgumentError struct {
	Command string
}

// Error implements the error interface.
func (e *MalformedArgumentError) Error() string {
	return "Error during parse of command " + e.Command
}

// Unwrap makes the error match ErrParse.
func (e *MalformedArgumentError) Unwrap() error {
	return ErrParse
}

// ExitRequest is returned by Dispatch for an Exit command.
type ExitRequest struct {
	Code int
}

// Error implements the error interface.
func (e *ExitRequest) Error() string {
	return "exit " + strconv.Itoa(e.Code)
}
