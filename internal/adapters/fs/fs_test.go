package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassimport/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_Stylesheets(t *testing.T) {
	// tmp/
	//   .git/hooks.scss
	//   node_modules/pkg/_pkg.scss
	//   vendor/_skip.scss
	//   src/main.scss
	//   src/partials/_base.sass
	//   src/data.json
	//   README.md
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, ".git", "hooks.scss"), "")
	writeFile(t, filepath.Join(tmpDir, "node_modules", "pkg", "_pkg.scss"), "")
	writeFile(t, filepath.Join(tmpDir, "vendor", "_skip.scss"), "")
	writeFile(t, filepath.Join(tmpDir, "src", "main.scss"), "@import 'partials/base';")
	writeFile(t, filepath.Join(tmpDir, "src", "partials", "_base.sass"), "a\n  b: c\n")
	writeFile(t, filepath.Join(tmpDir, "src", "data.json"), "{}")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker("vendor")
	got := slices.Collect(walker.Stylesheets(tmpDir))

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "src", "main.scss"),
		filepath.Join(tmpDir, "src", "partials", "_base.sass"),
	}, got)
}

func TestWalker_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.scss"), "")
	writeFile(t, filepath.Join(tmpDir, "b.scss"), "")

	var got []string
	for path := range fs.NewWalker().Stylesheets(tmpDir) {
		got = append(got, path)
		break
	}

	assert.Equal(t, []string{filepath.Join(tmpDir, "a.scss")}, got)
}

func TestReader(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "_foo.scss")
	writeFile(t, file, "a { b: c; }")

	r := fs.NewReader()
	ctx := context.Background()

	data, err := r.ReadFile(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, "a { b: c; }", string(data))

	_, err = r.ReadFile(ctx, filepath.Join(tmpDir, "missing.scss"))
	require.Error(t, err)

	_, err = r.ReadFile(ctx, tmpDir)
	require.Error(t, err, "directories are not readable candidates")

	assert.True(t, r.IsFile(file))
	assert.False(t, r.IsFile(tmpDir))
	assert.False(t, r.IsFile(filepath.Join(tmpDir, "missing.scss")))
}

func TestReader_Cancelled(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "_foo.scss")
	writeFile(t, file, "a { b: c; }")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewReader().ReadFile(ctx, file)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHasher_ContentHash(t *testing.T) {
	h := fs.NewHasher()

	a := h.ContentHash([]byte("a { b: c; }"))
	b := h.ContentHash([]byte("a { b: c; }"))
	c := h.ContentHash([]byte("a { b: d; }"))

	assert.Len(t, a, 16)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	// xxhash64 of the empty input.
	assert.Equal(t, "ef46db3751d8e999", h.ContentHash(nil))
}
