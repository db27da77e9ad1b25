// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"fmt"
	"strings"
)

// Platform identifies which per-OS page tier is consulted before common.
type Platform int

const (
	Unsupported Platform = iota
	Linux
	MacOS
)

// Token returns the directory name holding this platform's pages. Unsupported
// platforms have no directory and return "".
func (p Platform) Token() string {
	switch p {
	case Linux:
		return "linux"
	case MacOS:
		return "osx"
	default:
		return ""
	}
}

func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case MacOS:
		return "osx"
	default:
		return "unsupported"
	}
}

// Detect maps a GOOS value (runtime.GOOS) to a Platform.
func Detect(goos string) Platform {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	default:
		return Unsupported
	}
}

// Parse maps a user supplied --os value to a Platform. Known operating systems
// without a page tier (sunos, windows, ...) parse to Unsupported. An empty
// value is an error so callers can tell "not given" from "unsupported".
func Parse(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linux":
		return Linux, nil
	case "osx", "macos", "darwin":
		return MacOS, nil
	case "sunos", "windows", "freebsd", "openbsd", "netbsd", "android", "other", "unsupported":
		return Unsupported, nil
	case "":
		return Unsupported, fmt.Errorf("empty platform")
	default:
		return Unsupported, fmt.Errorf("unknown platform %q", s)
	}
}

// Resolve returns the platform named by override when it is non-empty, and
// the one detected from goos otherwise.
func Resolve(override string, goos string) (Platform, error) {
	if override == "" {
		return Detect(goos), nil
	}
	return Parse(override)
}
