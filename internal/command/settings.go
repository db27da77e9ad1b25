// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/staranto/tldrctl/internal/cache"
	"github.com/staranto/tldrctl/internal/config"
	"github.com/staranto/tldrctl/internal/pages"
)

// Settings are the cache layout options read from the config file.
type Settings struct {
	// Subpath leads from the cache root to the page tiers.
	Subpath string
	// Marker dates the cache for the freshness check.
	Marker string
	// CheckOverride enables the freshness check for an overridden root.
	CheckOverride bool
}

// LoadSettings reads the cache layout from the config file. An overridden
// root points straight at the page tiers unless cache.override_subpath says
// otherwise.
func LoadSettings(overridden bool) Settings {
	s := Settings{}
	if overridden {
		s.Subpath, _ = config.GetString("cache.override_subpath", "")
	} else {
		s.Subpath, _ = config.GetString("cache.subpath", pages.DefaultSubpath)
	}
	s.Marker, _ = config.GetString("cache.marker", cache.DefaultMarker)
	s.CheckOverride, _ = config.GetBool("cache.check_override", false)
	return s
}
