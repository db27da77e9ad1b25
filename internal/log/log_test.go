// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestHandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{W: &buf}

	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	err := h.HandleLog(&log.Entry{Level: log.WarnLevel, Message: "cache is stale", Timestamp: ts})
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-04 05:06:07 W cache is stale\n", buf.String())
}

func TestHandleLog_WithError(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{W: &buf}

	e := &log.Entry{
		Level:   log.DebugLevel,
		Message: "skipping",
		Fields:  log.Fields{"error": errors.New("permission denied")},
	}
	assert.NoError(t, h.HandleLog(e))
	assert.Contains(t, buf.String(), " D skipping: permission denied\n")
}

func TestInitLogger(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	InitLogger()
	l, ok := log.Log.(*log.Logger)
	assert.True(t, ok)
	assert.Equal(t, log.DebugLevel, l.Level)

	t.Setenv(EnvLevel, "bogus")
	InitLogger()
	assert.Equal(t, log.ErrorLevel, l.Level)

	t.Setenv(EnvLevel, "")
	InitLogger()
	assert.Equal(t, log.ErrorLevel, l.Level)
}
