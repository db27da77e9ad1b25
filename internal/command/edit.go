// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// EditAction opens the common page in $EDITOR. The page need not exist yet.
func EditAction(ctx context.Context, cmd *cli.Command) error {
	name := PageName(cmd.Args().Slice())
	if name == "" {
		return ErrNoPage
	}

	s, err := NewSession(cmd)
	if err != nil {
		return err
	}

	editor := strings.Fields(s.Meta.Editor)
	if len(editor) == 0 {
		return ErrNoEditor
	}

	path := s.Locator.EditPath(name)
	log.Debugf("editing %s with %v", path, editor)

	c := exec.CommandContext(ctx, editor[0], append(editor[1:], path)...)
	c.Stdin = s.Meta.Stdin
	c.Stdout = stdout(s.Meta)
	c.Stderr = stderr(s.Meta)
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}
