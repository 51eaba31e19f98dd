// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckOne(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("a = 1\n"), 0o644))
	require.NoError(t, checkOne(good))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("a = \n"), 0o644))
	require.Error(t, checkOne(bad))
}

func TestCollectDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.toml"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# hi\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.toml"), []byte("y = 1\n"), 0o644))

	got, err := collectDocuments([]string{dir})
	require.NoError(t, err)
	require.Len(t, got, 2)
}
