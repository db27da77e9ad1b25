// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version holds the tldrctl release string. It is set at build time:
//
//	go build -ldflags "-X github.com/staranto/tldrctl/internal/version.Version=v1.2.3"
package version

var Version = "dev"
