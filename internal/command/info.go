// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tldrctl/internal/cache"
	"github.com/staranto/tldrctl/internal/output"
)

type infoRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// InfoAction reports where the cache lives and how old it is.
func InfoAction(ctx context.Context, cmd *cli.Command) error {
	s, err := NewSession(cmd)
	if err != nil {
		return err
	}

	rows := []infoRow{
		{"root", s.Root},
		{"override", strconv.FormatBool(s.Overridden)},
		{"platform", s.Platform.String()},
		{"pages", s.Locator.Dir()},
	}

	if state, checked := s.Freshness(); checked {
		rows = append(rows, infoRow{"status", state.Status.String()})
		if state.Status != cache.Missing {
			rows = append(rows, infoRow{"updated", Age(state)})
		}
	} else {
		rows = append(rows, infoRow{"status", "unchecked"})
	}

	opts := OutputOptions(cmd, []string{"key", "value"})
	// Rows are reported in a fixed order.
	opts.Sort = ""
	return output.SliceDiceSpit(rows, opts, stdout(s.Meta))
}
