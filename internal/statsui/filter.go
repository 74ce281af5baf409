package statsui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/slowtype/internal/model"
)

const dateLayout = "2006-01-02"

const (
	fieldLang = iota
	fieldMode
	fieldSince
	fieldLast
	fieldWindow
)

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("Lang (en/th): "),
		newFilterInput("Mode (words/quotes): "),
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Curve window: "),
	}
	m.setInputsFromFilter()
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromFilter() {
	values := make([]string, len(m.filterInputs))
	values[fieldLang] = string(m.filter.Lang)
	values[fieldMode] = string(m.filter.Mode)
	if m.filter.Since != nil {
		values[fieldSince] = m.filter.Since.Format(dateLayout)
	}
	if m.filter.Last > 0 {
		values[fieldLast] = strconv.Itoa(m.filter.Last)
	}
	values[fieldWindow] = strconv.Itoa(m.filter.CurveWindow)
	for i, v := range values {
		m.filterInputs[i].SetValue(v)
	}
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromFilter()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		filter, err := parseFilter(m.filterValues())
		if err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filter = filter
		m.filterMode = false
		m.filterError = ""
		m.refreshReport()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) filterValues() []string {
	values := make([]string, len(m.filterInputs))
	for i, input := range m.filterInputs {
		values[i] = strings.TrimSpace(input.Value())
	}
	return values
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	m.filterIndex = (idx%count + count) % count
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Filter (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

// parseFilter validates the form values in field order.
func parseFilter(values []string) (model.HistoryFilter, error) {
	var filter model.HistoryFilter
	if v := values[fieldLang]; v != "" {
		lang, err := model.ParseLanguage(v)
		if err != nil {
			return filter, err
		}
		filter.Lang = lang
	}
	if v := values[fieldMode]; v != "" {
		mode, err := model.ParseMode(v)
		if err != nil {
			return filter, err
		}
		filter.Mode = mode
	}
	if v := values[fieldSince]; v != "" {
		since, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
		}
		filter.Since = &since
	}
	if v := values[fieldLast]; v != "" {
		last, err := strconv.Atoi(v)
		if err != nil || last < 0 {
			return filter, fmt.Errorf("invalid last value (use 0 or positive integer)")
		}
		filter.Last = last
	}
	filter.CurveWindow = 1
	if v := values[fieldWindow]; v != "" {
		window, err := strconv.Atoi(v)
		if err != nil || window < 1 {
			return filter, fmt.Errorf("invalid curve window (use integer >= 1)")
		}
		filter.CurveWindow = window
	}
	return filter, nil
}
