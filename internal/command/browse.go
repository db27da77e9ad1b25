// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tldrctl/internal/browse"
)

// ErrNoPages is returned when there is nothing to browse.
var ErrNoPages = errors.New("no pages in cache")

// BrowseAction lets the user pick a page and renders the choice.
func BrowseAction(ctx context.Context, cmd *cli.Command) error {
	s, err := NewSession(cmd)
	if err != nil {
		return err
	}
	if err := s.RequireCache(); err != nil {
		return err
	}

	entries, err := s.Locator.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoPages
	}

	in := s.Meta.Stdin
	if in == nil {
		in = os.Stdin
	}
	entry, ok, err := browse.Run(ctx, entries, in, stdout(s.Meta))
	if err != nil {
		return err
	}
	if !ok {
		log.Debug("browse cancelled")
		return nil
	}

	r, err := NewRenderer(cmd)
	if err != nil {
		return err
	}
	return r.RenderFile(stdout(s.Meta), entry.Path)
}
