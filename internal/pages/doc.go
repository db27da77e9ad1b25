// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package pages finds and lists pages below a resolved cache root. Pages live
// in a "common" tier and optional per-platform tiers; the platform tier is
// always consulted first.
//
// The cache is read without locking. Results are a snapshot of the directory
// tree and may be out of date if another process updates the cache meanwhile.
package pages
