// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the variable holding the log level.
const EnvLevel = "TLDRCTL_LOG"

// InitLogger sets up Apex with a custom handler and a log level from the
// TLDRCTL_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv(EnvLevel))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&CustomHandler{})
	l, err := log.ParseLevel(level)
	if err != nil {
		l = log.ErrorLevel
	}
	log.SetLevel(l)
}

// CustomHandler formats log messages and writes them to W, stderr by default,
// so they never mix with page output.
type CustomHandler struct {
	W io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.W
	if w == nil {
		w = os.Stderr
	}
	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())
	message := e.Message
	if err, ok := e.Fields["error"]; ok {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	_, err := fmt.Fprintf(w, "%s %.1s %s\n", timestamp.Format("2006-01-02 15:04:05"), level, message)
	return err
}
