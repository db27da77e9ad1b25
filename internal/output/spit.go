// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/staranto/tldrctl/internal/config"
	"github.com/staranto/tldrctl/internal/filters"
)

// Formats accepted by --output.
var Formats = []string{"text", "json", "yaml"}

// Options controls how a dataset is rendered.
type Options struct {
	// Format is one of Formats. Empty means text.
	Format string
	// Columns selects, in order, the keys that are emitted.
	Columns []string
	Filter  string
	Sort    string
	Titles  bool
	Color   bool
}

// SliceDiceSpit filters, sorts and renders a dataset. raw is anything that
// marshals to a JSON array of objects.
func SliceDiceSpit(raw any, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	dataset := filters.FilterRows(gjson.ParseBytes(doc), opts.Columns, opts.Filter)
	SortDataset(dataset, opts.Sort)
	log.Debugf("emitting %d rows as %q", len(dataset), opts.Format)

	switch opts.Format {
	case "json":
		if dataset == nil {
			dataset = []map[string]interface{}{}
		}
		out, err := json.Marshal(dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal json output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		if dataset == nil {
			dataset = []map[string]interface{}{}
		}
		out, err := yaml.Marshal(dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "", "text":
		TableWriter(dataset, opts, w)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

// SortDataset orders rows by a comma separated list of keys. A key prefixed
// with "-" sorts descending, one prefixed with "!" compares strings case
// sensitively. An empty spec leaves the order alone.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	type sortKey struct {
		name          string
		desc          bool
		caseSensitive bool
	}

	var keys []sortKey
	for _, s := range strings.Split(spec, ",") {
		k := sortKey{}
		for len(s) > 0 && (s[0] == '-' || s[0] == '!') {
			if s[0] == '-' {
				k.desc = true
			} else {
				k.caseSensitive = true
			}
			s = s[1:]
		}
		if s == "" {
			continue
		}
		k.name = s
		keys = append(keys, k)
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, k := range keys {
			c := compare(dataset[i][k.name], dataset[j][k.name], k.caseSensitive)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compare(a, b interface{}, caseSensitive bool) int {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as, bs := InterfaceToString(a), InterfaceToString(b)
	if !caseSensitive {
		as, bs = strings.ToLower(as), strings.ToLower(bs)
	}
	return strings.Compare(as, bs)
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(resultSet []map[string]interface{}, opts Options, w io.Writer) {
	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(opts.Columns))
		for _, col := range opts.Columns {
			row = append(row, InterfaceToString(result[col], "-"))
		}
		rows = append(rows, row)
	}

	pad, _ := config.GetInt("padding", 0)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(opts.Columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
