// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tldrctl/internal/cache"
	"github.com/staranto/tldrctl/internal/config"
	"github.com/staranto/tldrctl/internal/meta"
	"github.com/staranto/tldrctl/internal/pages"
	"github.com/staranto/tldrctl/internal/platform"
	"github.com/staranto/tldrctl/internal/render"
)

// UpstreamURL is where missing pages can be contributed.
const UpstreamURL = "https://github.com/tldr-pages/tldr"

var (
	ErrCacheMissing = errors.New("page cache not found, run the tldr update to download it")
	ErrNoEditor     = errors.New("$EDITOR is not set")
	ErrNoPage       = errors.New("no page specified, see --help")
)

// PageNotFoundError reports a page that neither tier holds.
type PageNotFoundError struct {
	Name string
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("page %s not found in cache\n"+
		"Try updating the cache, or submit a pull request to:\n%s", e.Name, UpstreamURL)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// stdout and stderr fall back to the process streams for a zero Meta.
func stdout(m meta.Meta) io.Writer {
	if m.Stdout == nil {
		return os.Stdout
	}
	return m.Stdout
}

func stderr(m meta.Meta) io.Writer {
	if m.Stderr == nil {
		return os.Stderr
	}
	return m.Stderr
}

// PageName joins the positional arguments into a page name, so
// `tldrctl git commit` looks up git-commit.
func PageName(args []string) string {
	return strings.Join(args, "-")
}

// Session is the state of one invocation: the root is resolved exactly once
// and every operation works against it.
type Session struct {
	Meta       meta.Meta
	Platform   platform.Platform
	Root       string
	Overridden bool
	Settings   Settings
	Locator    *pages.Locator
}

// NewSession resolves the platform and the cache root.
func NewSession(cmd *cli.Command) (*Session, error) {
	m := GetMeta(cmd)

	p, err := platform.Resolve(cmd.String("os"), m.GOOS)
	if err != nil {
		return nil, err
	}

	resolver := m.Resolver()
	root, err := resolver.Root()
	if err != nil {
		return nil, fmt.Errorf("could not resolve cache directory: %w", err)
	}

	s := &Session{
		Meta:       m,
		Platform:   p,
		Root:       root,
		Overridden: resolver.Overridden(),
		Settings:   LoadSettings(resolver.Overridden()),
	}
	s.Locator = pages.New(root, s.Settings.Subpath, p)
	log.Debugf("session: root=%s platform=%s subpath=%q", root, p, s.Settings.Subpath)
	return s, nil
}

// Freshness checks the cache age. The second result is false when the check
// does not apply to this root.
func (s *Session) Freshness() (cache.State, bool) {
	if !cache.ShouldCheck(s.Overridden, s.Settings.CheckOverride) {
		return cache.State{}, false
	}
	return cache.Freshness{Marker: s.Settings.Marker}.Check(s.Root), true
}

// RequireCache fails when the cache is missing and warns on stderr when it is
// stale.
func (s *Session) RequireCache() error {
	state, checked := s.Freshness()
	if !checked {
		return nil
	}
	switch state.Status {
	case cache.Missing:
		return ErrCacheMissing
	case cache.Stale:
		fmt.Fprintf(stderr(s.Meta), "warning: the page cache was last updated %s, consider updating it\n", Age(state))
	}
	return nil
}

// Age describes how long ago the cache was updated.
func Age(state cache.State) string {
	return humanize.Time(time.Now().Add(-state.AgeDuration()))
}

// NewRenderer builds a page renderer from the command flags.
func NewRenderer(cmd *cli.Command) (*render.Renderer, error) {
	m := GetMeta(cmd)
	width := render.DefaultWidth
	if f, ok := stdout(m).(*os.File); ok {
		width = render.Width(f)
	}
	style, _ := config.GetString("style", "")
	return render.New(render.Options{
		Raw:   cmd.Bool("raw"),
		Color: cmd.Bool("color"),
		Style: style,
		Width: width,
	})
}
