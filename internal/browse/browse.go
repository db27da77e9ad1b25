// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package browse

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/staranto/tldrctl/internal/pages"
)

type item struct {
	entry pages.Entry
}

func (i item) Title() string       { return i.entry.Name }
func (i item) Description() string { return i.entry.Tier }
func (i item) FilterValue() string { return i.entry.Name }

// Model is a filterable list of pages. Choosing a page with enter quits the
// program and records the choice.
type Model struct {
	list     list.Model
	selected *pages.Entry
}

// NewModel builds the picker for entries.
func NewModel(entries []pages.Entry) Model {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, item{entry: e})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "tldr pages"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Enter while typing a filter applies the filter instead.
		if msg.String() == "enter" && m.list.FilterState() != list.Filtering {
			if it, ok := m.list.SelectedItem().(item); ok {
				e := it.entry
				m.selected = &e
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// Selected returns the chosen page, if any.
func (m Model) Selected() (pages.Entry, bool) {
	if m.selected == nil {
		return pages.Entry{}, false
	}
	return *m.selected, true
}

// Run shows the picker on the terminal and returns the chosen page. The
// second result is false when the user quit without choosing.
func Run(ctx context.Context, entries []pages.Entry, in io.Reader, out io.Writer) (pages.Entry, bool, error) {
	p := tea.NewProgram(NewModel(entries),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return pages.Entry{}, false, fmt.Errorf("page browser failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return pages.Entry{}, false, nil
	}
	e, ok := m.Selected()
	return e, ok, nil
}
