// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when the output is not a terminal.
	DefaultWidth = 80

	// MinWidth is the narrowest word wrap handed to glamour.
	MinWidth = 30

	// PlainStyle renders without colors.
	PlainStyle = "notty"
	// DefaultStyle is used for colored output when no style is configured.
	DefaultStyle = "dark"
)

// Options controls page rendering.
type Options struct {
	// Raw writes the markdown source unchanged.
	Raw   bool
	Color bool
	// Style is a glamour standard style name.
	Style string
	Width int
}

// Renderer turns page markdown into terminal output.
type Renderer struct {
	opts     Options
	renderer *glamour.TermRenderer
}

// New builds a Renderer. The glamour renderer is not created in raw mode.
func New(opts Options) (*Renderer, error) {
	r := &Renderer{opts: opts}
	if opts.Raw {
		return r, nil
	}

	style := PlainStyle
	if opts.Color {
		style = opts.Style
		if style == "" {
			style = DefaultStyle
		}
	}

	width := opts.Width
	if width < MinWidth {
		width = MinWidth
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer with style %q: %w", style, err)
	}
	r.renderer = tr
	return r, nil
}

// Render writes content to w.
func (r *Renderer) Render(w io.Writer, content []byte) error {
	if r.renderer == nil {
		_, err := w.Write(content)
		return err
	}

	out, err := r.renderer.Render(string(content))
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err = io.WriteString(w, strings.TrimRight(out, "\n\r\t ")+"\n")
	return err
}

// RenderFile reads the page at path and renders it to w.
func (r *Renderer) RenderFile(w io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	log.Debugf("rendering %s (%d bytes)", path, len(content))
	return r.Render(w, content)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind f, or DefaultWidth
// when f is not a terminal.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
