// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markedRoot returns a root whose marker was modified at mtime.
func markedRoot(t *testing.T, mtime time.Time) string {
	t.Helper()
	root := t.TempDir()
	marker := filepath.Join(root, DefaultMarker)
	require.NoError(t, os.Mkdir(marker, 0o755))
	require.NoError(t, os.Chtimes(marker, mtime, mtime))
	return root
}

func TestCheck(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day := int64(24 * 60 * 60)

	tests := []struct {
		name       string
		age        int64
		wantStatus Status
	}{
		{"just updated", 0, Fresh},
		{"a week old", 7 * day, Fresh},
		{"exactly thirty days", MaxAge, Fresh},
		{"one second past thirty days", MaxAge + 1, Stale},
		{"ninety days", 90 * day, Stale},
		{"mtime in the future", -day, Fresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := markedRoot(t, now.Add(-time.Duration(tt.age)*time.Second))
			f := Freshness{Now: func() time.Time { return now }}

			got := f.Check(root)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.age, got.Age)
			if got.Status == Stale {
				assert.Greater(t, got.Age, int64(2592000))
			}
		})
	}
}

func TestCheck_Missing(t *testing.T) {
	got := Freshness{}.Check(t.TempDir())
	assert.Equal(t, State{Status: Missing}, got)

	got = Freshness{}.Check(filepath.Join(t.TempDir(), "no", "root"))
	assert.Equal(t, Missing, got.Status)
}

func TestCheck_CustomMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "stamp"), nil, 0o600))

	f := Freshness{Marker: "stamp"}
	assert.Equal(t, Fresh, f.Check(root).Status)
	assert.Equal(t, Missing, Freshness{}.Check(root).Status)
}

func TestShouldCheck(t *testing.T) {
	assert.True(t, ShouldCheck(false, false))
	assert.True(t, ShouldCheck(false, true))
	assert.False(t, ShouldCheck(true, false))
	assert.True(t, ShouldCheck(true, true))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "fresh", Fresh.String())
	assert.Equal(t, "stale", Stale.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, 90*time.Second, State{Age: 90}.AgeDuration())
}
