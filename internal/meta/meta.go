// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"io"

	"github.com/staranto/tldrctl/internal/cache"
	"github.com/staranto/tldrctl/internal/config"
)

// Meta carries everything a command needs from the process: arguments,
// config, the environment snapshot and the streams to write to.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	// CacheEnv is the cache override read from the environment at startup.
	CacheEnv cache.Env
	// UserCacheDir overrides os.UserCacheDir when set.
	UserCacheDir func() (string, error)
	// GOOS is the host operating system used when --os is not given.
	GOOS   string
	Editor string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Resolver returns the cache resolver for this invocation.
func (m Meta) Resolver() *cache.Resolver {
	r := cache.NewResolver(m.CacheEnv)
	if m.UserCacheDir != nil {
		r.UserCacheDir = m.UserCacheDir
	}
	return r
}
