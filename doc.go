// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// tldrctl is the main package for the tldrctl command line tool. It looks up
// tldr pages in a locally mirrored cache, wires the CLI and serves as the
// entry point.
package main
