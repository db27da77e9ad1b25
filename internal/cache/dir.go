// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

const (
	// EnvCacheDir names the environment variable holding the cache root
	// override.
	EnvCacheDir = "TLDRCTL_CACHE_DIR"

	// AppDir is the directory created for us below the user cache home.
	AppDir = "tldrctl"
)

var (
	ErrInvalidOverride = errors.New("cache directory override does not exist or is not a directory")
	ErrNotConfigured   = errors.New("cache directory override is not set and no user cache directory is available")
)

// ResolutionError is returned when the cache root cannot be determined. Kind
// is one of ErrInvalidOverride or ErrNotConfigured.
type ResolutionError struct {
	Kind error
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ResolutionError) Is(target error) bool {
	return target == e.Kind
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Env carries the process environment the resolver depends on. It is read
// once by the caller so the resolver never touches global state.
type Env struct {
	CacheDir    string
	CacheDirSet bool
}

// EnvFromOS snapshots the override variable from the process environment.
func EnvFromOS() Env {
	v, ok := os.LookupEnv(EnvCacheDir)
	return Env{CacheDir: v, CacheDirSet: ok}
}

// Resolver decides which directory is the cache root.
type Resolver struct {
	Env Env
	// UserCacheDir defaults to os.UserCacheDir.
	UserCacheDir func() (string, error)
}

// NewResolver returns a Resolver that falls back to os.UserCacheDir.
func NewResolver(env Env) *Resolver {
	return &Resolver{Env: env, UserCacheDir: os.UserCacheDir}
}

// Overridden reports whether the root comes from the override variable. An
// empty override counts as not set.
func (r *Resolver) Overridden() bool {
	return r.Env.CacheDirSet && r.Env.CacheDir != ""
}

// Root resolves the cache root.
// Precedence:
//  1. TLDRCTL_CACHE_DIR, which must exist and be a directory
//  2. UserCacheDir()/tldrctl, which is not checked for existence
func (r *Resolver) Root() (string, error) {
	if r.Overridden() {
		path, err := filepath.Abs(r.Env.CacheDir)
		if err != nil {
			return "", &ResolutionError{Kind: ErrInvalidOverride, Path: r.Env.CacheDir, Err: err}
		}
		info, err := os.Stat(path)
		if err != nil {
			return "", &ResolutionError{Kind: ErrInvalidOverride, Path: path, Err: err}
		}
		if !info.IsDir() {
			return "", &ResolutionError{Kind: ErrInvalidOverride, Path: path}
		}
		log.Debugf("using cache override %s", path)
		return path, nil
	}

	userCacheDir := r.UserCacheDir
	if userCacheDir == nil {
		userCacheDir = os.UserCacheDir
	}
	dir, err := userCacheDir()
	if err != nil {
		return "", &ResolutionError{Kind: ErrNotConfigured, Err: err}
	}
	if dir == "" {
		return "", &ResolutionError{Kind: ErrNotConfigured}
	}

	root := filepath.Join(dir, AppDir)
	log.Debugf("using cache dir %s", root)
	return root, nil
}
