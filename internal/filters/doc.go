// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package filters implements the --filter expressions applied to page
// listings.
package filters
