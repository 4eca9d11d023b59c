// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI SGR sequences.
//
// Whether colour is wanted is decided once at start-up: NO_COLOR disables it,
// FORCE_COLOR enables it, otherwise it is on only when standard error is a
// terminal (checked with golang.org/x/term). Standard error is checked rather
// than standard output because stdout carries the interpreted commands' output.
package color
