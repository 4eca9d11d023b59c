// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

// Command is the parsed form of one input line.
// It is implemented by Empty, Exit, Echo, TypeQuery and Invocation only.
type Command interface {
	command()
}

// Empty is a blank line.
type Empty struct{}

// Exit terminates the shell with Code.
type Exit struct {
	Code int
}

// Echo prints Text.
type Echo struct {
	Text string
}

// TypeQuery reports how Name would be resolved.
type TypeQuery struct {
	Name string
}

// Invocation runs the external program at Path.
type Invocation struct {
	Path string
	Args []string
}

func (Empty) command()      {}
func (Exit) command()       {}
func (Echo) command()       {}
func (TypeQuery) command()  {}
func (Invocation) command() {}
