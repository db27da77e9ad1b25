// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type row struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
}

var dataset = []row{
	{Name: "tar", Tier: "linux"},
	{Name: "git", Tier: "common"},
	{Name: "apt", Tier: "linux"},
}

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"name": "zebra", "count": 3.0, "tier": "linux"},
		{"name": "Alpha", "count": 1.0, "tier": "common"},
		{"name": "beta", "count": 2.0, "tier": "linux"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{name: "ascending by name", spec: "name", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "descending by name", spec: "-name", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "ascending by count", spec: "count", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "descending by count", spec: "-count", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "case sensitive", spec: "!name", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "case sensitive descending", spec: "-!name", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "multiple fields", spec: "tier,-name", wantOrder: []string{"Alpha", "zebra", "beta"}},
		{name: "empty spec", spec: "", wantOrder: []string{"zebra", "Alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedName := range tt.wantOrder {
				assert.Equal(t, expectedName, data[i]["name"], "at index %d", i)
			}
		})
	}
}

func TestSliceDiceSpit_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := SliceDiceSpit(dataset, Options{Format: "json", Columns: []string{"name", "tier"}, Sort: "name"}, &buf)
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{
		{"name": "apt", "tier": "linux"},
		{"name": "git", "tier": "common"},
		{"name": "tar", "tier": "linux"},
	}, got)
}

func TestSliceDiceSpit_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := SliceDiceSpit(dataset, Options{Format: "json", Columns: []string{"name"}, Filter: "name=nope"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestSliceDiceSpit_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := SliceDiceSpit(dataset, Options{Format: "yaml", Columns: []string{"name"}, Filter: "tier=linux", Sort: "name"}, &buf)
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{{"name": "apt"}, {"name": "tar"}}, got)
}

func TestSliceDiceSpit_Text(t *testing.T) {
	var buf bytes.Buffer
	err := SliceDiceSpit(dataset, Options{Columns: []string{"name"}, Sort: "name"}, &buf)
	require.NoError(t, err)

	var lines []string
	for _, l := range strings.Split(buf.String(), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	assert.Equal(t, []string{"apt", "git", "tar"}, lines)
}

func TestSliceDiceSpit_TextTitles(t *testing.T) {
	var buf bytes.Buffer
	err := SliceDiceSpit(dataset, Options{Format: "text", Columns: []string{"name", "tier"}, Titles: true}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name")
	assert.Contains(t, buf.String(), "tier")
	assert.Contains(t, buf.String(), "common")
}

func TestSliceDiceSpit_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := SliceDiceSpit([]row{}, Options{Columns: []string{"name"}}, &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSliceDiceSpit_BadFormat(t *testing.T) {
	err := SliceDiceSpit(dataset, Options{Format: "xml", Columns: []string{"name"}}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(2592001), want: "2592001"},
		{name: "float64", value: 42.5, want: "42"},
		{name: "float64 with decimal", value: 42.7, want: "43"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false is zero value", value: false, want: ""},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]int{"x": 1}, want: `{"x":1}`},
		{name: "zero value int", value: 0, want: ""},
		{name: "zero value with custom empty", value: 0, emptyVal: "N/A", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")
	assert.NotEmpty(t, header)
	assert.NotEmpty(t, even)
	assert.NotEmpty(t, odd)
}

func BenchmarkSortDataset(b *testing.B) {
	testData := []map[string]interface{}{
		{"name": "zebra", "count": 3.0},
		{"name": "alpha", "count": 1.0},
		{"name": "beta", "count": 2.0},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := make([]map[string]interface{}, len(testData))
		copy(data, testData)
		SortDataset(data, "name")
	}
}
