// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pathindex

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinPath(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

func memFsWithFiles(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("#!/bin/sh\n"), 0o755))
	}

	return fs
}

func TestBuildFs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("memfs paths use forward slashes")
	}

	fs := memFsWithFiles(t,
		"/usr/local/bin/foo",
		"/usr/bin/foo",
		"/usr/bin/ls",
		"/usr/bin/cat",
		"/bin/cat",
		"/bin/sh",
	)
	require.NoError(t, fs.MkdirAll("/usr/bin/subdir", 0o755))

	tests := []struct {
		name       string
		searchPath string
		want       map[string]string
		missing    []string
	}{
		{
			name:       "first directory wins",
			searchPath: joinPath("/usr/local/bin", "/usr/bin", "/bin"),
			want: map[string]string{
				"foo": "/usr/local/bin",
				"ls":  "/usr/bin",
				"cat": "/usr/bin",
				"sh":  "/bin",
			},
		},
		{
			name:       "order follows the search path",
			searchPath: joinPath("/bin", "/usr/bin"),
			want: map[string]string{
				"cat": "/bin",
				"foo": "/usr/bin",
			},
		},
		{
			name:       "missing directories are skipped",
			searchPath: joinPath("/does/not/exist", "/bin"),
			want: map[string]string{
				"sh": "/bin",
			},
			missing: []string{"foo", "ls"},
		},
		{
			name:       "subdirectories are indexed by name",
			searchPath: "/usr/bin",
			want: map[string]string{
				"subdir": "/usr/bin",
			},
		},
		{
			name:       "empty search path",
			searchPath: "",
			missing:    []string{"foo", "sh", "cat"},
		},
		{
			name:       "exact match only",
			searchPath: "/usr/bin",
			missing:    []string{"FOO", "fo", "foo.exe", "/usr/bin/foo"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx := BuildFs(context.Background(), fs, tc.searchPath)

			for name, dir := range tc.want {
				got, ok := idx.Lookup(name)
				require.True(t, ok, "expected %q to be indexed", name)
				assert.Equal(t, dir, got)
			}

			for _, name := range tc.missing {
				_, ok := idx.Lookup(name)
				assert.False(t, ok, "expected %q to be absent", name)
			}
		})
	}
}

func TestIndex_Path(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("memfs paths use forward slashes")
	}

	idx := BuildFs(context.Background(), memFsWithFiles(t, "/usr/bin/foo"), "/usr/bin")

	p, ok := idx.Path("foo")
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/foo", p)

	_, ok = idx.Path("bar")
	assert.False(t, ok)
}

func TestIndex_EntriesSorted(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("memfs paths use forward slashes")
	}

	idx := BuildFs(context.Background(), memFsWithFiles(t, "/a/zz", "/a/mm", "/b/aa", "/b/mm"), joinPath("/a", "/b"))

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []Entry{
		{Name: "aa", Dir: "/b"},
		{Name: "mm", Dir: "/a"},
		{Name: "zz", Dir: "/a"},
	}, idx.Entries())
}

func TestIndex_Skipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("memfs paths use forward slashes")
	}

	fs := memFsWithFiles(t, "/bin/sh")

	idx := BuildFs(context.Background(), fs, "/bin")
	require.NoError(t, idx.Skipped())

	idx = BuildFs(context.Background(), fs, joinPath("/nope", "/bin", "/gone"))
	err := idx.Skipped()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), `"/nope"`)
	assert.Contains(t, err.Error(), `"/gone"`)
}

func TestNilIndex(t *testing.T) {
	var idx *Index

	_, ok := idx.Lookup("sh")
	assert.False(t, ok)
	assert.Zero(t, idx.Len())
	assert.Nil(t, idx.Entries())
	assert.NoError(t, idx.Skipped())
}

func TestBuild_UsesFsFactory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("memfs paths use forward slashes")
	}

	fs := memFsWithFiles(t, "/opt/tools/frob")
	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	idx := Build(context.Background(), "/opt/tools")

	dir, ok := idx.Lookup("frob")
	require.True(t, ok)
	assert.Equal(t, "/opt/tools", dir)
}

func TestBuild_OsFs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	for _, dir := range []string{first, second} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "tool"), nil, 0o644))
	}

	require.NoError(t, os.WriteFile(filepath.Join(second, "other"), nil, 0o644))

	idx := Build(context.Background(), joinPath(first, second))

	dir, ok := idx.Lookup("tool")
	require.True(t, ok)
	assert.Equal(t, first, dir, "later duplicates must not overwrite the first hit")

	dir, ok = idx.Lookup("other")
	require.True(t, ok)
	assert.Equal(t, second, dir)
}
