// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package index implements the command that prints the executable index.
package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/stoop/cmd/cmdstate"
	"github.com/matt-FFFFFF/stoop/internal/color"
	"github.com/matt-FFFFFF/stoop/internal/ctxlog"
	"github.com/matt-FFFFFF/stoop/internal/pathindex"
	"github.com/urfave/cli/v3"
)

const (
	formatFlag = "format"

	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

var (
	// ErrUnknownFormat is returned for a --format value that is not supported.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrEncode is returned when the index cannot be encoded.
	ErrEncode = errors.New("failed to encode index")
	// ErrWriteOutput is returned when the index cannot be written.
	ErrWriteOutput = errors.New("failed to write index")
)

// colorEnabled decides whether text and json output is coloured.
var colorEnabled = color.Enabled

// New creates the command that prints every executable name the interpreter
// can resolve.
func New() *cli.Command {
	return &cli.Command{
		Name:        "index",
		Usage:       "Print the executable index built from the search path",
		Description: "Print each executable name and the directory it resolves to. Earlier search path directories win.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    formatFlag,
				Aliases: []string{"f"},
				Usage:   "Output format: text, yaml or json",
				Value:   formatText,
				Validator: func(s string) error {
					switch s {
					case formatText, formatYAML, formatJSON:
						return nil
					}

					return fmt.Errorf("%w: %q", ErrUnknownFormat, s)
				},
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	_, idx, err := cmdstate.Load(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if n := skippedCount(idx); n > 0 {
		ctxlog.Warn(ctx, "some search path directories could not be read", "count", n)
	}

	w := cmd.Root().Writer

	if err := write(w, cmd.String(formatFlag), idx.Entries(), colorEnabled()); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

func write(w io.Writer, format string, entries []pathindex.Entry, colour bool) error {
	switch format {
	case formatText:
		return writeText(w, entries, colour)
	case formatYAML:
		return writeYAML(w, entries)
	case formatJSON:
		return writeJSON(w, entries, colour)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeText(w io.Writer, entries []pathindex.Entry, colour bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, e := range entries {
		name := color.ColorizeIf(colour, e.Name, color.Bold)
		dir := color.ColorizeIf(colour, e.Dir+string(filepath.Separator), color.FgHiBlack)

		if _, err := fmt.Fprintf(tw, "%s\t%s%s\n", name, dir, e.Name); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}

func writeYAML(w io.Writer, entries []pathindex.Entry) error {
	if entries == nil {
		entries = []pathindex.Entry{}
	}

	b, err := yaml.Marshal(entries)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}

func writeJSON(w io.Writer, entries []pathindex.Entry, colour bool) error {
	if entries == nil {
		entries = []pathindex.Entry{}
	}

	// Both plain and coloured output go through colorjson so keys are
	// sorted the same way either way.
	b, err := json.Marshal(entries)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	var obj any
	if err := json.Unmarshal(b, &obj); err != nil {
		return errors.Join(ErrEncode, err)
	}

	f := color.NewJSONFormatter(colour)
	f.Indent = 2

	if b, err = f.Marshal(obj); err != nil {
		return errors.Join(ErrEncode, err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}

func skippedCount(idx *pathindex.Index) int {
	var merr *multierror.Error
	if errors.As(idx.Skipped(), &merr) {
		return merr.Len()
	}

	return 0
}
