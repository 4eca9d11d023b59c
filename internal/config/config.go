// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config gathers the settings read once at startup.
package config

import (
	"errors"
)

const (
	// SearchPathEnvVar names the variable holding the executable search path.
	SearchPathEnvVar = "PATH"
	// HistoryFileEnvVar names the variable holding the line history file.
	HistoryFileEnvVar = "STOOP_HISTORY"
)

// ErrSearchPathUnset is returned when no search path is available.
var ErrSearchPathUnset = errors.New("search path is not set")

// Config is the startup configuration of the interpreter.
type Config struct {
	SearchPath  string
	HistoryFile string
}

// Option modifies a Config after the environment has been read.
type Option func(*Config)

// WithSearchPath overrides the search path from the environment.
// An empty value is ignored.
func WithSearchPath(p string) Option {
	return func(c *Config) {
		if p != "" {
			c.SearchPath = p
		}
	}
}

// WithHistoryFile overrides the history file from the environment.
// An empty value is ignored.
func WithHistoryFile(p string) Option {
	return func(c *Config) {
		if p != "" {
			c.HistoryFile = p
		}
	}
}

// Load builds a Config from lookup, normally os.LookupEnv, and opts.
// PATH set to the empty string is a valid, empty search path; PATH absent is
// an error unless an option supplies one.
func Load(lookup func(string) (string, bool), opts ...Option) (*Config, error) {
	c := &Config{}

	searchPath, found := lookup(SearchPathEnvVar)
	c.SearchPath = searchPath

	if v, ok := lookup(HistoryFileEnvVar); ok {
		c.HistoryFile = v
	}

	for _, opt := range opts {
		opt(c)
	}

	if !found && c.SearchPath == "" {
		return nil, ErrSearchPathUnset
	}

	return c, nil
}
