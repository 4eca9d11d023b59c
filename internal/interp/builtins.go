// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Builtin names.
const (
	ExitName = "exit"
	EchoName = "echo"
	TypeName = "type"
)

// builtinParser builds a Command from the tokens following the builtin name.
type builtinParser func(args []string) (Command, error)

var builtins = map[string]builtinParser{
	ExitName: parseExit,
	EchoName: parseEcho,
	TypeName: parseType,
}

// IsBuiltin reports whether name is implemented by the interpreter itself.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Builtins returns the builtin names in sorted order.
func Builtins() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// parseExit accepts zero or one signed 32-bit integer.
func parseExit(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return Exit{}, nil
	case 1:
		code, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return nil, &MalformedArgumentError{Command: ExitName}
		}

		return Exit{Code: int(code)}, nil
	default:
		return nil, &MalformedArgumentError{Command: ExitName}
	}
}

func parseEcho(args []string) (Command, error) {
	return Echo{Text: strings.Join(args, " ")}, nil
}

func parseType(args []string) (Command, error) {
	return TypeQuery{Name: strings.Join(args, " ")}, nil
}
