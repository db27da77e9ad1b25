// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// EnvOS overrides the detected platform.
const EnvOS = "TLDRCTL_OS"

// NewFlags returns the flags of the tldrctl command. Values not given on the
// command line come from the environment and then from the config file at
// cfgPath.
func NewFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "browse",
			Aliases:     []string{"b"},
			Usage:       "pick a page interactively",
			HideDefault: true,
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(cfgPath)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:  "completion",
			Usage: "print the shell completion script for `SHELL` (bash or zsh)",
			Validator: func(value string) error {
				return FlagValidators(value, CompletionValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "edit",
			Aliases:     []string{"e"},
			Usage:       "edit the common page in $EDITOR",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to --list",
		},
		&cli.BoolFlag{
			Name:        "info",
			Aliases:     []string{"i"},
			Usage:       "show where the cache is and how old it is",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "list",
			Aliases:     []string{"l"},
			Usage:       "list all pages in the cache",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "long",
			Usage:       "include tier and path in --list",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "os",
			Usage: "override the operating system [linux, osx, sunos]",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar(EnvOS),
				yaml.YAML("os", altsrc.StringSourcer(cfgPath)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, PlatformValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format for --list and --info",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("output", altsrc.StringSourcer(cfgPath)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "raw",
			Usage:       "print the page markdown without rendering",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "render",
			Aliases: []string{"r"},
			Usage:   "render a specific markdown `FILE`",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort --list by",
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("titles", altsrc.StringSourcer(cfgPath)),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "tldrctl version info",
			HideDefault: true,
		},
	}
}
