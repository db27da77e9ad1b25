// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = "# tldrctl\n\n" +
	"## Short description\n\n" +
	"Look up tldr pages\nfrom a local cache.\n\n" +
	"More text.\n\n" +
	"## Quick examples\n\n" +
	"```\n" +
	"# Show a page\n" +
	"tldrctl   tar\n" +
	"tldrctl --list\n" +
	"```\n"

func TestExtractTitleAndShortDesc(t *testing.T) {
	title, short := extractTitleAndShortDesc(sample)
	assert.Equal(t, "tldrctl", title)
	assert.Equal(t, "Look up tldr pages from a local cache.", short)

	title, short = extractTitleAndShortDesc("# Only a title\n")
	assert.Equal(t, "Only a title", title)
	assert.Equal(t, "Only a title.", short)
}

func TestExtractQuickExamples(t *testing.T) {
	exs := extractQuickExamples(sample)
	assert.Equal(t, []example{
		{Desc: "Show a page", Cmd: "tldrctl   tar"},
		{Desc: "Example", Cmd: "tldrctl --list"},
	}, exs)
	assert.Nil(t, extractQuickExamples("# nothing\n"))
}

func TestBuildTLDR(t *testing.T) {
	page := buildTLDR("tldrctl", "Look up pages.", []example{{Desc: "Show a page", Cmd: "tldrctl   tar"}})
	assert.Equal(t, "# tldrctl\n\n"+
		"> Look up pages.\n"+
		"> More information: https://github.com/staranto/tldrctl.\n\n"+
		"- Show a page:\n\n"+
		"`tldrctl tar`\n", page)

	assert.Contains(t, buildTLDR("", "", nil), "`tldrctl --help`")
}
