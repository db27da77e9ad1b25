// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// ShowAction renders the page named by the positional arguments.
func ShowAction(ctx context.Context, cmd *cli.Command) error {
	name := PageName(cmd.Args().Slice())
	if name == "" {
		return ErrNoPage
	}

	s, err := NewSession(cmd)
	if err != nil {
		return err
	}
	if err := s.RequireCache(); err != nil {
		return err
	}

	path, ok := s.Locator.Find(name)
	if !ok {
		return &PageNotFoundError{Name: name}
	}
	log.Debugf("found %s at %s", name, path)

	r, err := NewRenderer(cmd)
	if err != nil {
		return err
	}
	return r.RenderFile(stdout(s.Meta), path)
}

// RenderAction renders the file given to --render. It needs no cache.
func RenderAction(ctx context.Context, cmd *cli.Command) error {
	r, err := NewRenderer(cmd)
	if err != nil {
		return err
	}
	return r.RenderFile(stdout(GetMeta(cmd)), cmd.String("render"))
}
