// Package tui implements the interactive shell: a menu-driven view over
// the directory store with a browsable record table, substring search,
// and form-based add/edit.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/teledex/internal/directory"
	"github.com/thenoetrevino/teledex/internal/models"
	"github.com/thenoetrevino/teledex/internal/tui/huhforms"
)

// viewState identifies which screen the model is showing.
type viewState int

const (
	stateBrowse viewState = iota
	stateSearch
	stateAdd
	stateEdit
)

// Model represents the application state for the TUI
type Model struct {
	store *directory.Store

	state   viewState
	records []models.Record // currently visible records
	keyword string          // active search filter, empty = all
	cursor  int
	status  string

	searchInput textinput.Model
	form        *huh.Form
	formValues  huhforms.Values
	editingID   int

	width  int
	height int
}

// InitialModel creates and initializes the TUI model with data from the store
func InitialModel(store *directory.Store) Model {
	input := textinput.New()
	input.Placeholder = "поиск..."
	input.CharLimit = 64

	return Model{
		store:       store,
		state:       stateBrowse,
		records:     store.List(),
		searchInput: input,
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads the visible records, reapplying the active filter, and
// clamps the cursor.
func (m *Model) refresh() {
	if m.keyword == "" {
		m.records = m.store.List()
	} else {
		m.records = m.store.Search(m.keyword)
	}
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the record under the cursor, or false when the view is
// empty.
func (m Model) selected() (models.Record, bool) {
	if len(m.records) == 0 || m.cursor >= len(m.records) {
		return models.Record{}, false
	}
	return m.records[m.cursor], true
}
