// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package platform maps host operating systems to the page tiers of the
// cache.
package platform
