package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/teledex/internal/directory"
	"github.com/thenoetrevino/teledex/internal/tui/huhforms"
)

// Update handles all messages and updates the model.
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	switch m.state {
	case stateSearch:
		return m.updateSearch(msg)
	case stateAdd, stateEdit:
		return m.updateForm(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}

	case "/":
		m.state = stateSearch
		m.searchInput.SetValue(m.keyword)
		m.searchInput.Focus()
		m.status = ""

	case "esc":
		// Drop the active filter
		m.keyword = ""
		m.refresh()
		m.status = ""

	case "a":
		m.state = stateAdd
		m.formValues = huhforms.NewValues()
		m.form = huhforms.AddRecordForm(m.formValues)
		m.status = ""
		return m, m.form.Init()

	case "e":
		rec, ok := m.selected()
		if !ok {
			m.status = "нет записи для редактирования"
			return m, nil
		}
		m.state = stateEdit
		m.editingID = rec.ID
		m.formValues = huhforms.NewValues()
		m.form = huhforms.EditRecordForm(rec, m.formValues)
		m.status = ""
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.keyword = m.searchInput.Value()
			m.state = stateBrowse
			m.cursor = 0
			m.refresh()
			return m, nil
		case "esc":
			m.state = stateBrowse
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	model, cmd := m.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateAborted:
		m.state = stateBrowse
		m.status = "отменено"
		return m, nil

	case huh.StateCompleted:
		if m.state == stateAdd {
			m.submitAdd()
		} else {
			m.submitEdit()
		}
		m.state = stateBrowse
		m.refresh()
		return m, nil
	}

	return m, cmd
}

// submitAdd commits the completed add form to the store.
func (m *Model) submitAdd() {
	rec, err := m.store.Add(m.formValues.Fields())
	if err != nil {
		m.status = statusForError(err)
		return
	}
	m.status = fmt.Sprintf("запись %d добавлена", rec.ID)
}

// submitEdit commits the completed edit form to the store. Empty form
// values pass through as the keep-current sentinel.
func (m *Model) submitEdit() {
	err := m.store.Edit(m.editingID, directory.MapSource(m.formValues.Fields()))
	if err != nil {
		m.status = statusForError(err)
		return
	}
	m.status = fmt.Sprintf("запись %d обновлена", m.editingID)
}

func statusForError(err error) string {
	switch {
	case errors.Is(err, directory.ErrEmptyField):
		return "все поля должны быть заполнены"
	case errors.Is(err, directory.ErrInvalidPhone):
		return "телефон должен состоять только из цифр"
	case errors.Is(err, directory.ErrRecordNotFound):
		return "запись не найдена"
	default:
		return err.Error()
	}
}
