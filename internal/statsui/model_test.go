package statsui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/slowtype/internal/model"
)

type fakeLister struct {
	results []model.Result
	err     error
	filters []model.HistoryFilter
}

func (f *fakeLister) ListResults(_ context.Context, filter model.HistoryFilter) ([]model.Result, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Result
	for _, r := range f.results {
		if filter.Lang != "" && r.Language != filter.Lang {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func sampleResults() []model.Result {
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.Local)
	return []model.Result{
		{ID: "a", WPM: 40, Accuracy: 95, Language: model.LangEnglish, Mode: model.ModeWords, Duration: 15, WPMBuckets: []float64{35, 40, 45}, CreatedAt: base},
		{ID: "b", WPM: 55, Accuracy: 97, Language: model.LangThai, Mode: model.ModeWords, Duration: 10, WPMBuckets: []float64{50, 60}, CreatedAt: base.Add(time.Hour)},
		{ID: "c", WPM: 61, Accuracy: 99, Language: model.LangEnglish, Mode: model.ModeQuotes, Duration: 30, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func newSizedModel(t *testing.T, l *fakeLister) *Model {
	t.Helper()
	m := NewModel(l, model.HistoryFilter{CurveWindow: 5})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestOverviewShowsSummary(t *testing.T) {
	m := newSizedModel(t, &fakeLister{results: sampleResults()})
	view := m.View()
	if !strings.Contains(view, "Overview") || !strings.Contains(view, "Best WPM") {
		t.Fatalf("expected overview in view:\n%s", view)
	}
	if !strings.Contains(view, "61.0") {
		t.Fatalf("expected best wpm value in view")
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := newSizedModel(t, &fakeLister{results: sampleResults()})
	m.Update(key("left"))
	if m.activeTab != tabTrend {
		t.Fatalf("expected wrap to trend tab, got %d", m.activeTab)
	}
	m.Update(key("right"))
	if m.activeTab != tabOverview {
		t.Fatalf("expected wrap to overview tab, got %d", m.activeTab)
	}
}

func TestSelectResultOpensTrend(t *testing.T) {
	m := newSizedModel(t, &fakeLister{results: sampleResults()})
	if m.selected != 2 {
		t.Fatalf("expected newest result selected, got %d", m.selected)
	}
	m.Update(key("right"))
	if m.activeTab != tabResults {
		t.Fatalf("expected results tab")
	}
	m.Update(key("up"))
	m.Update(key("enter"))
	if m.activeTab != tabTrend {
		t.Fatalf("expected trend tab after enter, got %d", m.activeTab)
	}
	if m.selected != 1 {
		t.Fatalf("expected second result selected, got %d", m.selected)
	}
	if !strings.Contains(m.renderTrend(80), "th words 10s") {
		t.Fatalf("expected trend for selected result: %s", m.renderTrend(80))
	}
}

func TestFilterFormAppliesLanguage(t *testing.T) {
	l := &fakeLister{results: sampleResults()}
	m := newSizedModel(t, l)
	m.Update(key("/"))
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	m.Update(key("th"))
	m.Update(key("enter"))
	if m.filterMode {
		t.Fatalf("expected filter mode to close: %s", m.filterError)
	}
	if m.filter.Lang != model.LangThai || len(m.report.Results) != 1 {
		t.Fatalf("unexpected filter result: %+v (%d results)", m.filter, len(m.report.Results))
	}
	last := l.filters[len(l.filters)-1]
	if last.Lang != model.LangThai || last.CurveWindow != 5 {
		t.Fatalf("unexpected filter passed to lister: %+v", last)
	}
}

func TestFilterFormRejectsBadInput(t *testing.T) {
	m := newSizedModel(t, &fakeLister{results: sampleResults()})
	m.Update(key("/"))
	m.Update(key("xx"))
	m.Update(key("enter"))
	if !m.filterMode || m.filterError == "" {
		t.Fatalf("expected filter error to keep form open")
	}
	m.Update(key("esc"))
	if m.filterMode {
		t.Fatalf("expected esc to close filter form")
	}
}

func TestParseFilter(t *testing.T) {
	filter, err := parseFilter([]string{"en", "quotes", "2026-01-02", "3", "7"})
	if err != nil {
		t.Fatalf("parseFilter failed: %v", err)
	}
	if filter.Lang != model.LangEnglish || filter.Mode != model.ModeQuotes || filter.Last != 3 || filter.CurveWindow != 7 {
		t.Fatalf("unexpected filter: %+v", filter)
	}
	if filter.Since == nil || filter.Since.Format(dateLayout) != "2026-01-02" {
		t.Fatalf("unexpected since: %v", filter.Since)
	}
	bad := [][]string{
		{"fr", "", "", "", ""},
		{"", "zen", "", "", ""},
		{"", "", "02/01/2026", "", ""},
		{"", "", "", "-1", ""},
		{"", "", "", "", "0"},
	}
	for _, values := range bad {
		if _, err := parseFilter(values); err == nil {
			t.Fatalf("expected error for %v", values)
		}
	}
}

func TestListerErrorIsShown(t *testing.T) {
	m := newSizedModel(t, &fakeLister{err: errors.New("db locked")})
	if !strings.Contains(m.View(), "db locked") {
		t.Fatalf("expected error in footer")
	}
}

func TestCurveWindowSteps(t *testing.T) {
	cases := []struct{ in, next, prev int }{
		{1, 5, 1},
		{5, 10, 1},
		{7, 10, 5},
		{10, 15, 5},
	}
	for _, tc := range cases {
		if got := nextCurveWindow(tc.in); got != tc.next {
			t.Fatalf("nextCurveWindow(%d) = %d, want %d", tc.in, got, tc.next)
		}
		if got := prevCurveWindow(tc.in); got != tc.prev {
			t.Fatalf("prevCurveWindow(%d) = %d, want %d", tc.in, got, tc.prev)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newSizedModel(t, &fakeLister{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
