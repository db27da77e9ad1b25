// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCacheDir(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestRoot_OverrideDirectory(t *testing.T) {
	dir := t.TempDir()
	r := &Resolver{
		Env:          Env{CacheDir: dir, CacheDirSet: true},
		UserCacheDir: fixedCacheDir("/should/not/be/used"),
	}

	root, err := r.Root()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
	assert.True(t, r.Overridden())
}

func TestRoot_OverrideMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	r := &Resolver{Env: Env{CacheDir: missing, CacheDirSet: true}}

	_, err := r.Root()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOverride))
	assert.False(t, errors.Is(err, ErrNotConfigured))

	var re *ResolutionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, missing, re.Path)
}

func TestRoot_OverrideIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	r := &Resolver{Env: Env{CacheDir: file, CacheDirSet: true}}

	_, err := r.Root()
	assert.ErrorIs(t, err, ErrInvalidOverride)
	assert.Contains(t, err.Error(), file)
}

func TestRoot_OverrideRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "pages"), 0o755))
	t.Chdir(dir)

	r := &Resolver{Env: Env{CacheDir: "pages", CacheDirSet: true}}
	root, err := r.Root()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(root))
	assert.Equal(t, "pages", filepath.Base(root))
}

func TestRoot_EmptyOverrideFallsBack(t *testing.T) {
	r := &Resolver{
		Env:          Env{CacheDir: "", CacheDirSet: true},
		UserCacheDir: fixedCacheDir("/home/u/.cache"),
	}

	root, err := r.Root()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u/.cache", AppDir), root)
	assert.False(t, r.Overridden())
}

func TestRoot_ConventionalNotCheckedForExistence(t *testing.T) {
	base := filepath.Join(t.TempDir(), "does", "not", "exist")
	r := &Resolver{UserCacheDir: fixedCacheDir(base)}

	root, err := r.Root()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, AppDir), root)
}

func TestRoot_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (string, error)
	}{
		{"error", func() (string, error) { return "", errors.New("no home") }},
		{"empty", func() (string, error) { return "", nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{UserCacheDir: tt.fn}
			_, err := r.Root()
			assert.ErrorIs(t, err, ErrNotConfigured)
			assert.NotErrorIs(t, err, ErrInvalidOverride)
		})
	}
}

func TestEnvFromOS(t *testing.T) {
	t.Setenv(EnvCacheDir, "/tmp/pages")
	env := EnvFromOS()
	assert.True(t, env.CacheDirSet)
	assert.Equal(t, "/tmp/pages", env.CacheDir)
}
