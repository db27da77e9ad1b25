// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders page listings and cache reports as text tables,
// JSON or YAML.
package output
