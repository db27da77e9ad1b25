// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package browse provides an interactive picker over the listed pages.
package browse
