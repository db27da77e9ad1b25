// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/staranto/tldrctl/internal/cache"
	"github.com/staranto/tldrctl/internal/platform"
)

const (
	// Ext is appended to a page name to form its filename.
	Ext = ".md"

	// CommonDir holds pages that apply to every platform.
	CommonDir = "common"

	// DefaultSubpath is where the update process leaves the page tiers below
	// the cache root.
	DefaultSubpath = "tldr-master/pages"
)

// Locator resolves page names against one cache root.
type Locator struct {
	Root     string
	Subpath  string
	Platform platform.Platform
}

// New returns a Locator for the given root.
func New(root string, subpath string, p platform.Platform) *Locator {
	return &Locator{Root: root, Subpath: subpath, Platform: p}
}

// Open resolves the root with r and returns a Locator bound to it.
func Open(r *cache.Resolver, subpath string, p platform.Platform) (*Locator, error) {
	root, err := r.Root()
	if err != nil {
		return nil, err
	}
	return New(root, subpath, p), nil
}

// Dir is the directory holding the common and platform tiers.
func (l *Locator) Dir() string {
	return filepath.Join(l.Root, l.Subpath)
}

// Filename returns the file name for the page called name.
func Filename(name string) string {
	return name + Ext
}

// Find returns the path of the page called name, looking in the platform tier
// first and in common second. The second result is false when neither tier
// holds a regular file of that name.
func (l *Locator) Find(name string) (string, bool) {
	filename := Filename(name)

	if token := l.Platform.Token(); token != "" {
		path := filepath.Join(l.Dir(), token, filename)
		if isFile(path) {
			return path, true
		}
	}

	path := filepath.Join(l.Dir(), CommonDir, filename)
	if isFile(path) {
		return path, true
	}

	log.Debugf("page %s not found below %s", name, l.Dir())
	return "", false
}

// EditPath returns where the common page called name lives or would live.
// It does not check that the file exists.
func (l *Locator) EditPath(name string) string {
	return filepath.Join(l.Dir(), CommonDir, Filename(name))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
