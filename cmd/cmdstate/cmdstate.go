// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the flags shared by every command and the startup
// steps that depend on them.
package cmdstate

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/stoop/internal/config"
	"github.com/matt-FFFFFF/stoop/internal/ctxlog"
	"github.com/matt-FFFFFF/stoop/internal/pathindex"
	"github.com/urfave/cli/v3"
)

// Flag names.
const (
	SearchPathFlag  = "search-path"
	HistoryFileFlag = "history-file"
	LogLevelFlag    = "log-level"
	LogFormatFlag   = "log-format"
)

// ErrLoadConfig is returned when the startup configuration is unusable.
var ErrLoadConfig = errors.New("failed to load configuration")

// LookupEnv is the environment source for Load.
var LookupEnv = os.LookupEnv

// Flags returns the flags declared on the root command. Subcommands inherit
// them.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      SearchPathFlag,
			Usage:     "Search path for executables, overriding PATH",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      HistoryFileFlag,
			Usage:     "File used to load and save line history on a terminal",
			Sources:   cli.EnvVars(config.HistoryFileEnvVar),
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:    LogLevelFlag,
			Usage:   "Log level: debug, info, warn or error",
			Value:   "warn",
			Sources: cli.EnvVars(ctxlog.LevelEnvVar),
		},
		&cli.StringFlag{
			Name:    LogFormatFlag,
			Usage:   "Log format written to standard error: text or json",
			Value:   ctxlog.FormatText,
			Sources: cli.EnvVars(ctxlog.FormatEnvVar),
			Validator: func(s string) error {
				_, err := ctxlog.ForFormat(s)
				return err
			},
		},
	}
}

// Before applies the log level flag and stores the logger chosen by the log
// format flag in the context.
func Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	ctxlog.LevelVar.Set(ctxlog.ParseLevel(cmd.String(LogLevelFlag)))

	logger, err := ctxlog.ForFormat(cmd.String(LogFormatFlag))
	if err != nil {
		return ctx, err
	}

	return ctxlog.New(ctx, logger), nil
}

// Load reads the configuration and builds the executable index from it.
func Load(ctx context.Context, cmd *cli.Command) (*config.Config, *pathindex.Index, error) {
	cfg, err := config.Load(
		LookupEnv,
		config.WithSearchPath(cmd.String(SearchPathFlag)),
		config.WithHistoryFile(cmd.String(HistoryFileFlag)),
	)
	if err != nil {
		return nil, nil, errors.Join(ErrLoadConfig, err)
	}

	idx := pathindex.Build(ctx, cfg.SearchPath)
	if err := idx.Skipped(); err != nil {
		ctxlog.Debug(ctx, "directories skipped while indexing", "error", err)
	}

	return cfg, idx, nil
}
