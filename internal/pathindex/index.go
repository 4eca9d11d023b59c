// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pathindex

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/stoop/internal/ctxlog"
	"github.com/spf13/afero"
)

// Index is an immutable name to directory mapping.
type Index struct {
	dirs    map[string]string
	skipped *multierror.Error
}

// Entry is a single resolved executable.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Dir  string `json:"dir" yaml:"dir"`
}

// Build indexes searchPath using the filesystem from FsFactory.
func Build(ctx context.Context, searchPath string) *Index {
	return BuildFs(ctx, FsFactory(), searchPath)
}

// BuildFs indexes searchPath on fs.
// Directories are visited in list order and a name keeps the first directory
// it was seen in. Directories that cannot be listed are skipped.
func BuildFs(ctx context.Context, fs afero.Fs, searchPath string) *Index {
	logger := ctxlog.Logger(ctx).With("component", "pathindex")
	idx := &Index{
		dirs: make(map[string]string),
	}

	for _, dir := range strings.Split(searchPath, string(os.PathListSeparator)) {
		infos, err := afero.ReadDir(fs, dir)
		if err != nil {
			logger.Debug("skipping directory", "dir", dir, "error", err)
			idx.skipped = multierror.Append(idx.skipped, fmt.Errorf("%q: %w", dir, err))

			continue
		}

		for _, info := range infos {
			if _, ok := idx.dirs[info.Name()]; ok {
				continue
			}

			idx.dirs[info.Name()] = dir
		}
	}

	logger.Debug("index built", "entries", len(idx.dirs), "skipped", idx.skippedCount())

	return idx
}

// Lookup returns the directory name was first found in.
func (i *Index) Lookup(name string) (string, bool) {
	if i == nil {
		return "", false
	}

	dir, ok := i.dirs[name]

	return dir, ok
}

// Path returns the full path of name: its directory, the platform path
// separator, then name.
func (i *Index) Path(name string) (string, bool) {
	dir, ok := i.Lookup(name)
	if !ok {
		return "", false
	}

	return dir + string(os.PathSeparator) + name, true
}

// Len is the number of indexed names.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}

	return len(i.dirs)
}

// Entries lists the index sorted by name.
func (i *Index) Entries() []Entry {
	if i == nil {
		return nil
	}

	entries := make([]Entry, 0, len(i.dirs))
	for name, dir := range i.dirs {
		entries = append(entries, Entry{Name: name, Dir: dir})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return entries
}

// Skipped returns the errors for directories that could not be listed,
// or nil if there were none.
func (i *Index) Skipped() error {
	if i == nil {
		return nil
	}

	return i.skipped.ErrorOrNil()
}

func (i *Index) skippedCount() int {
	if i.skipped == nil {
		return 0
	}

	return len(i.skipped.Errors)
}
