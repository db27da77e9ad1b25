// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
)

// MaxAge is the age, in seconds, past which the cache is stale (30 days).
const MaxAge int64 = 30 * 24 * 60 * 60

// DefaultMarker is the directory the update process extracts the page archive
// into. Its modification time dates the cache.
const DefaultMarker = "tldr-master"

// Status classifies the cache contents.
type Status int

const (
	Missing Status = iota
	Fresh
	Stale
)

func (s Status) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "missing"
	}
}

// State is the result of a freshness check. Age is in whole seconds and is
// zero when the cache is missing.
type State struct {
	Status Status
	Age    int64
}

// AgeDuration returns Age as a time.Duration.
func (s State) AgeDuration() time.Duration {
	return time.Duration(s.Age) * time.Second
}

// Freshness dates the cache by the modification time of Marker below the
// root.
type Freshness struct {
	Marker string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Check never fails: a marker that cannot be read is reported as Missing.
func (f Freshness) Check(root string) State {
	marker := f.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	info, err := os.Stat(filepath.Join(root, marker))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warnf("failed to stat cache marker %s", marker)
		}
		return State{Status: Missing}
	}

	age := int64(now().Sub(info.ModTime()) / time.Second)
	if age > MaxAge {
		return State{Status: Stale, Age: age}
	}
	return State{Status: Fresh, Age: age}
}

// ShouldCheck decides whether freshness is reported at all. An overridden
// root is only checked when checkOverride is set.
func ShouldCheck(overridden bool, checkOverride bool) bool {
	return !overridden || checkOverride
}
