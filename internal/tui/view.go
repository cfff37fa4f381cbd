package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/thenoetrevino/teledex/internal/models"
)

// View renders the current state of the application.
// Required by tea.Model interface
func (m Model) View() string {
	switch m.state {
	case stateSearch:
		return m.viewSearch()
	case stateAdd:
		return m.viewForm("Новая запись")
	case stateEdit:
		return m.viewForm(fmt.Sprintf("Редактирование записи %d", m.editingID))
	default:
		return m.viewBrowse()
	}
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	title := "Телефонный справочник"
	if m.keyword != "" {
		title += fmt.Sprintf("  —  поиск: %q (%d)", m.keyword, len(m.records))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(m.records) == 0 {
		b.WriteString(helpStyle.Render("записей нет"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTable())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ выбор · a добавить · e изменить · / поиск · esc сброс · q выход"))
	return b.String()
}

func (m Model) renderTable() string {
	headers := append([]string{""}, models.Schema...)
	rows := make([][]string, len(m.records))
	for i, rec := range m.records {
		marker := " "
		if i == m.cursor {
			marker = selectedStyle.Render(">")
		}
		rows[i] = append([]string{marker}, rec.Row()...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

func (m Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Поиск по ключевому слову"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter применить · esc отмена"))
	return b.String()
}

func (m Model) viewForm(title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.form.View())
	return b.String()
}
