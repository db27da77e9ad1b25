// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// Minimal doc generator:
// - Reads docs/tldrctl.md as the canonical command doc
// - Generates:
//   - docs/man/share/man1/tldrctl.1 via md2man (convert full markdown)
//   - docs/tldr/common/tldrctl.md using the Quick examples block and short
//     description, laid out as a common tier page so it can be dropped into
//     a cache override

const name = "tldrctl"

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	inPath := filepath.Join(repoRoot, "docs", name+".md")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(repoRoot, "docs", "tldr", "common")

	if err := os.MkdirAll(manOutDir, 0o755); err != nil {
		fatalf("creating man output dir: %v", err)
	}
	if err := os.MkdirAll(tldrOutDir, 0o755); err != nil {
		fatalf("creating tldr output dir: %v", err)
	}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		fatalf("reading %s: %v", inPath, err)
	}

	manPath := filepath.Join(manOutDir, name+".1")
	if err := writeFileIfChanged(manPath, md2man.Render(raw), writeOnlyIfChanged); err != nil {
		fatalf("writing man page: %v", err)
	}

	title, shortDesc := extractTitleAndShortDesc(string(raw))
	examples := extractQuickExamples(string(raw))
	tldrPath := filepath.Join(tldrOutDir, name+".md")
	if err := writeFileIfChanged(tldrPath, []byte(buildTLDR(title, shortDesc, examples)), writeOnlyIfChanged); err != nil {
		fatalf("writing TLDR page: %v", err)
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, new []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, new, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, new, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(new)) {
		return nil
	}
	return os.WriteFile(path, new, 0o644)
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// sectionBody returns the lines following the header whose text contains
// heading, up to the next header.
func sectionBody(md string, heading string) []string {
	lower := strings.ToLower(md)
	idx := strings.Index(lower, strings.ToLower(heading))
	if idx < 0 {
		return nil
	}
	rest := md[idx:]
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		return nil
	}
	var (
		out   []string
		fence bool
	)
	for _, ln := range strings.Split(rest, "\n") {
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			fence = !fence
		}
		if !fence && strings.HasPrefix(ln, "#") {
			break
		}
		out = append(out, strings.TrimRight(ln, "\r"))
	}
	return out
}

func extractTitleAndShortDesc(md string) (title, short string) {
	if m := h1Re.FindStringSubmatch(md); m != nil {
		title = strings.TrimSpace(m[1])
	}

	// First paragraph of the "Short description" section.
	var b strings.Builder
	for _, ln := range sectionBody(md, "short description") {
		if strings.TrimSpace(ln) == "" {
			if b.Len() > 0 {
				break
			}
			continue
		}
		b.WriteString(strings.TrimSpace(ln))
		b.WriteString(" ")
	}
	short = strings.TrimSpace(b.String())

	if short == "" && title != "" {
		short = fmt.Sprintf("%s.", title)
	}
	return
}

type example struct {
	Desc string
	Cmd  string
}

// extractQuickExamples reads the first fenced block of the "Quick examples"
// section. A "#" line describes the command line that follows it.
func extractQuickExamples(md string) []example {
	var (
		exs    []example
		desc   string
		inside bool
	)
	for _, ln := range sectionBody(md, "quick examples") {
		s := strings.TrimSpace(ln)
		if strings.HasPrefix(s, "```") {
			if inside {
				break
			}
			inside = true
			continue
		}
		if !inside || s == "" {
			continue
		}
		if strings.HasPrefix(s, "#") {
			desc = strings.TrimSpace(strings.TrimPrefix(s, "#"))
			continue
		}
		if desc == "" {
			desc = "Example"
		}
		exs = append(exs, example{Desc: desc, Cmd: s})
		desc = ""
	}
	return exs
}

func buildTLDR(title, short string, exs []example) string {
	var b strings.Builder
	b.WriteString("# " + name + "\n\n")
	switch {
	case short != "":
		b.WriteString("> " + short + "\n")
	case title != "":
		b.WriteString("> " + title + "\n")
	default:
		b.WriteString("> " + name + "\n")
	}
	b.WriteString("> More information: https://github.com/staranto/tldrctl.\n\n")

	if len(exs) == 0 {
		b.WriteString("- Show help for the command:\n\n")
		b.WriteString("`" + name + " --help`\n")
		return b.String()
	}

	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + strings.TrimSuffix(strings.TrimSpace(ex.Desc), ":") + ":\n\n")
		b.WriteString("`" + sanitizeCommand(ex.Cmd) + "`\n")
	}
	return b.String()
}

func sanitizeCommand(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
