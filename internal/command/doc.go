// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the tldrctl command line. It wires flags,
// validators, the page actions and shell completion.
package command
