// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/apex/log"

	"github.com/staranto/tldrctl/internal/cache"
	"github.com/staranto/tldrctl/internal/command"
	"github.com/staranto/tldrctl/internal/config"
	mylog "github.com/staranto/tldrctl/internal/log"
	"github.com/staranto/tldrctl/internal/meta"
	"github.com/staranto/tldrctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No page specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Debug("no config loaded")
	}

	m := meta.Meta{
		Args:     args,
		Config:   cfg,
		Context:  ctx,
		CacheEnv: cache.EnvFromOS(),
		GOOS:     runtime.GOOS,
		Editor:   os.Getenv("EDITOR"),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	app, err := command.InitApp(ctx, m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
