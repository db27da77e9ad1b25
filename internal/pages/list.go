// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/tldrctl/internal/cache"
	"github.com/staranto/tldrctl/internal/platform"
)

// EntryKind is the type of a directory entry as seen by the walk filter.
type EntryKind int

const (
	KindOther EntryKind = iota
	KindDir
	KindFile
)

func kindOf(d fs.DirEntry) EntryKind {
	switch {
	case d.IsDir():
		return KindDir
	case d.Type().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// ShouldWalk is the listing filter. parent is the name of the directory
// holding the entry, or "" when the entry sits directly in the pages root.
// Directories are entered only when named common or token. Regular files are
// kept only below such a directory.
func ShouldWalk(parent string, name string, kind EntryKind, token string) bool {
	switch kind {
	case KindDir:
		return name == CommonDir || (token != "" && name == token)
	case KindFile:
		return parent != ""
	default:
		return false
	}
}

// pageName returns the page name for filename and whether it is a page at
// all. The extension match is case sensitive.
func pageName(filename string) (string, bool) {
	if filepath.Ext(filename) != Ext {
		return "", false
	}
	name := strings.TrimSuffix(filename, Ext)
	return name, name != ""
}

// List returns the sorted, deduplicated names of every page reachable from
// the common and platform tiers. A missing pages directory lists as empty.
func (l *Locator) List() ([]string, error) {
	seen, err := l.walk()
	if err != nil {
		return nil, err
	}
	return sortedNames(seen), nil
}

func sortedNames(seen map[string]string) []string {
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// walkRoot returns the directory the walk starts from. A symlinked pages
// directory is followed so its tiers are listed like a real one.
func walkRoot(base string) string {
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return base
	}
	resolved, err := filepath.EvalSymlinks(base)
	if err != nil {
		log.WithError(err).Debugf("could not resolve %s", base)
		return base
	}
	return resolved
}

// walk maps every page name below the tiers to the first file found for it.
// Paths are reported below l.Dir() even when the walk follows a symlink.
func (l *Locator) walk() (map[string]string, error) {
	base := l.Dir()
	root := walkRoot(base)
	token := l.Platform.Token()
	seen := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				// A pages directory that is missing or unreadable lists as empty.
				if errors.Is(err, fs.ErrNotExist) {
					log.Debugf("pages directory %s does not exist", base)
				} else {
					log.WithError(err).Warnf("cannot read pages directory %s", base)
				}
				return filepath.SkipAll
			}
			log.WithError(err).Debugf("skipping %s", path)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// The root is never a candidate.
		if path == root {
			return nil
		}

		parent := ""
		if dir := filepath.Dir(path); dir != root {
			parent = filepath.Base(dir)
		}

		kind := kindOf(d)
		if !ShouldWalk(parent, d.Name(), kind, token) {
			if kind == KindDir {
				return filepath.SkipDir
			}
			return nil
		}

		if kind == KindFile {
			if name, ok := pageName(d.Name()); ok {
				if _, dup := seen[name]; !dup {
					seen[name] = rebase(root, base, path)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// rebase moves path from below root to below base.
func rebase(root string, base string, path string) string {
	if root == base {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.Join(base, rel)
}

// List resolves the root with r and lists its pages. Resolution failures are
// returned as the resolver's *cache.ResolutionError.
func List(r *cache.Resolver, subpath string, p platform.Platform) ([]string, error) {
	l, err := Open(r, subpath, p)
	if err != nil {
		return nil, err
	}
	return l.List()
}

// Entry describes a listed page and the file a lookup would return for it.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Tier string `json:"tier" yaml:"tier"`
	Path string `json:"path" yaml:"path"`
}

// Entries lists pages together with the tier that serves each of them.
func (l *Locator) Entries() ([]Entry, error) {
	seen, err := l.walk()
	if err != nil {
		return nil, err
	}

	names := sortedNames(seen)
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		path, ok := l.Find(name)
		if !ok {
			// Only reachable through a nested tier directory.
			path = seen[name]
		}
		entries = append(entries, Entry{
			Name: name,
			Tier: filepath.Base(filepath.Dir(path)),
			Path: path,
		})
	}
	return entries, nil
}
