// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tldrctl/internal/meta"
)

// InitApp builds the tldrctl command. The config source in m decides where
// flag values not given on the command line are read from.
func InitApp(ctx context.Context, m meta.Meta) (*cli.Command, error) {
	if m.Context == nil {
		m.Context = ctx
	}

	app := &cli.Command{
		Name:      "tldrctl",
		Usage:     "look up tldr pages from the local cache",
		UsageText: "tldrctl [options] <page>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:     NewFlags(m.Config.Source),
		Writer:    stdout(m),
		ErrWriter: stderr(m),
		Action:    RootCommandAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// RootCommandAction dispatches on the mode flags. Without one, the positional
// arguments name the page to show.
func RootCommandAction(ctx context.Context, cmd *cli.Command) error {
	switch {
	case cmd.String("completion") != "":
		return CompletionAction(ctx, cmd)
	case cmd.String("render") != "":
		return RenderAction(ctx, cmd)
	case cmd.Bool("info"):
		return InfoAction(ctx, cmd)
	case cmd.Bool("list"):
		return ListAction(ctx, cmd)
	case cmd.Bool("browse"):
		return BrowseAction(ctx, cmd)
	case cmd.Bool("edit"):
		return EditAction(ctx, cmd)
	}
	return ShowAction(ctx, cmd)
}
