// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache resolves the on-disk page cache directory and reports how
// fresh its contents are. It never writes to the cache.
package cache
