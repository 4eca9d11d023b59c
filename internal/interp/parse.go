// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

import "strings"

// Resolver finds external executables by name.
// *pathindex.Index satisfies it.
type Resolver interface {
	Path(name string) (string, bool)
}

// Parse turns one raw input line into a Command.
// The returned error, if any, is an *UnknownCommandError or a
// *MalformedArgumentError, and Command is nil in that case.
func Parse(line string, resolver Resolver) (Command, error) {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return Empty{}, nil
	}

	name, args := tokens[0], tokens[1:]

	if parse, ok := builtins[name]; ok {
		return parse(args)
	}

	path, ok := resolver.Path(name)
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}

	return Invocation{Path: path, Args: args}, nil
}

// tokenize trims line and splits it on single spaces.
// Consecutive spaces yield empty tokens.
func tokenize(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	return strings.Split(line, " ")
}
