// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tldrctl/internal/output"
)

// ListAction prints every page visible on the current platform.
func ListAction(ctx context.Context, cmd *cli.Command) error {
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
	log.Debugf("listing %d pages from %s", len(entries), s.Locator.Dir())

	columns := []string{"name"}
	if cmd.Bool("long") {
		columns = append(columns, "tier", "path")
	}

	return output.SliceDiceSpit(entries, OutputOptions(cmd, columns), stdout(s.Meta))
}

// OutputOptions collects the output flags shared by --list and --info.
func OutputOptions(cmd *cli.Command, columns []string) output.Options {
	return output.Options{
		Format:  cmd.String("output"),
		Columns: columns,
		Filter:  cmd.String("filter"),
		Sort:    cmd.String("sort"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
	}
}
