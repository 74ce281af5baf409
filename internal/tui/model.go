// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/slowtype/internal/logging"
	"github.com/verte-zerg/slowtype/internal/model"
	"github.com/verte-zerg/slowtype/internal/session"
	"github.com/verte-zerg/slowtype/internal/stats"
)

const tickInterval = 200 * time.Millisecond

// Recorder persists finished sessions.
type Recorder interface {
	InsertResult(ctx context.Context, res model.Result) (string, error)
}

// TextSource yields practice texts.
type TextSource interface {
	NextText() string
}

// Options wires the typing model to its collaborators.
type Options struct {
	Config   model.Config
	Display  model.Display
	Texts    TextSource
	Recorder Recorder
	Clock    session.Clock
	Logger   *slog.Logger
	// History holds earlier results for the footer averages.
	History []model.Result
	Now     func() time.Time
}

type tickMsg struct{}

type savedMsg struct {
	id  string
	err error
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	cfg      model.Config
	display  model.Display
	texts    TextSource
	recorder Recorder
	clock    session.Clock
	logger   *slog.Logger
	now      func() time.Time

	state   session.State
	record  *session.Record
	history []model.Result
	saving  bool
	saveErr error

	width  int
	height int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	statsStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a typing TUI model with a fresh text.
func NewModel(opts Options) *Model {
	m := &Model{
		cfg:      opts.Config,
		display:  opts.Display,
		texts:    opts.Texts,
		recorder: opts.Recorder,
		clock:    opts.Clock,
		logger:   opts.Logger,
		now:      opts.Now,
		history:  slices.Clone(opts.History),
	}
	if m.clock == nil {
		m.clock = session.NewMonotonicClock()
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.restart()
	return m
}

// State returns the current session state.
func (m *Model) State() session.State {
	return m.state
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.apply(session.TickEvent{AtMs: m.clock.NowMs()}), tick())
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.saveErr = msg.err
			m.logger.Error("failed to save result", "err", msg.err)
			return m, nil
		}
		m.logger.Info("result saved", "id", msg.id)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		var cmds []tea.Cmd
		for _, ev := range keyEvents(msg, m.clock.NowMs()) {
			cmds = append(cmds, m.apply(ev))
		}
		return m, tea.Batch(cmds...)
	default:
		return m, nil
	}
}

// keyEvents translates a Bubble Tea key message. Pasted text is dropped.
// Terminals do not report key-repeat or IME composition, so Repeat and
// Composing stay unset.
func keyEvents(msg tea.KeyMsg, atMs int64) []session.KeyEvent {
	if msg.Paste {
		return nil
	}
	key := func(name string, ctrl bool) session.KeyEvent {
		return session.KeyEvent{Key: name, Ctrl: ctrl, Alt: msg.Alt, AtMs: atMs}
	}
	switch msg.Type {
	case tea.KeyEsc:
		return []session.KeyEvent{key(session.KeyNameEscape, false)}
	case tea.KeyCtrlR:
		return []session.KeyEvent{key(session.KeyNameRestart, true)}
	case tea.KeyBackspace:
		return []session.KeyEvent{key(session.KeyNameBackspace, false)}
	case tea.KeySpace:
		return []session.KeyEvent{key(" ", false)}
	case tea.KeyRunes:
		events := make([]session.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, key(string(r), false))
		}
		return events
	default:
		return nil
	}
}

func (m *Model) apply(ev session.Event) tea.Cmd {
	next, out := session.Step(m.state, ev)
	m.state = next
	if out.Restarted {
		m.restart()
		return nil
	}
	if out.Record == nil {
		return nil
	}
	m.record = out.Record
	res := out.Record.Result(m.now())
	m.history = append(m.history, res)
	m.logger.Debug("session finished",
		"wpm", res.WPM,
		"accuracy", res.Accuracy,
		"duration", res.Duration,
		"lang", res.Language,
	)
	return m.save(res)
}

// save persists a result once. Failures are reported but never retried.
func (m *Model) save(res model.Result) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	m.saving = true
	recorder := m.recorder
	return func() tea.Msg {
		id, err := recorder.InsertResult(context.Background(), res)
		return savedMsg{id: id, err: err}
	}
}

func (m *Model) restart() {
	m.state = session.New(session.Params{
		Target:   m.texts.NextText(),
		Duration: m.cfg.Duration,
		Mode:     m.cfg.Mode,
		Language: m.cfg.Lang,
	})
	m.record = nil
	m.saveErr = nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.record != nil {
		return m.layout(m.renderResults())
	}
	target := []rune(m.state.Target())
	if len(target) == 0 {
		return ""
	}
	typed := []rune(m.state.Typed())
	cursor := -1
	if len(typed) < len(target) {
		cursor = len(typed)
	}
	cells := styleCells(target, typed, cursor)
	if m.width == 0 || m.height == 0 {
		return joinCells(cells)
	}
	contentWidth := max(1, int(float64(m.width)*0.70))
	text := lipgloss.NewStyle().Width(contentWidth).Render(wrapCells(cells, contentWidth))
	return m.layout(lipgloss.JoinVertical(lipgloss.Left, m.renderStatsBar(), "", text))
}

func (m *Model) layout(content string) string {
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderStatsBar() string {
	snap := m.state.Snapshot()
	var parts []string
	if m.display.StatsWPM {
		parts = append(parts, fmt.Sprintf("%.0f wpm", snap.WPM))
	}
	if m.display.StatsAccuracy {
		parts = append(parts, fmt.Sprintf("%.0f%% acc", snap.Accuracy))
	}
	if m.display.StatsTime {
		parts = append(parts, fmt.Sprintf("%ds", m.state.RemainingSeconds()))
	}
	if m.display.StatsSmoothness {
		parts = append(parts, fmt.Sprintf("%.0fms/key", snap.AvgKeyIntervalMs))
	}
	if m.display.StatsConsistency {
		parts = append(parts, "consistency "+stats.FormatConsistency(snap.Consistency))
	}
	return statsStyle.Render(strings.Join(parts, "   "))
}

func (m *Model) renderResults() string {
	snap := m.record.Snapshot
	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-12s", label)) + statsStyle.Render(value)
	}
	lines := []string{labelStyle.Render(fmt.Sprintf("%s · %s · %ds", m.record.Language, m.record.Mode, m.record.Duration)), ""}
	if m.display.ResultWPM {
		lines = append(lines, row("wpm", fmt.Sprintf("%.1f", snap.WPM)))
	}
	if m.display.ResultAccuracy {
		lines = append(lines, row("accuracy", fmt.Sprintf("%.1f%%", snap.Accuracy)))
	}
	if m.display.ResultChars {
		lines = append(lines, row("chars", fmt.Sprintf("%d/%d", snap.CorrectChars, snap.IncorrectChars())))
	}
	if m.display.ResultTime {
		lines = append(lines, row("time", fmt.Sprintf("%.1fs", float64(snap.ElapsedMs)/1000)))
	}
	lines = append(lines,
		row("key interval", fmt.Sprintf("%.0fms", snap.AvgKeyIntervalMs)),
		row("consistency", stats.FormatConsistency(snap.Consistency)),
	)
	if len(m.record.Trend) > 0 {
		lines = append(lines, row("trend", stats.Sparkline(m.record.Trend)))
	}
	lines = append(lines, "", labelStyle.Render("esc / ctrl+r next test · ctrl+c quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	var segments []string
	if m.record == nil && m.state.TargetLen() > 0 {
		progress := m.state.TypedLen() * 100 / m.state.TargetLen()
		segments = append(segments, fmt.Sprintf("Progress %d%%", progress))
	}
	if len(m.history) > 0 {
		last := m.history[len(m.history)-1]
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", last.WPM, last.Accuracy))
		sum := stats.Summarize(m.history)
		segments = append(segments, fmt.Sprintf("Avg %.1f WPM · %.1f%% over %d", sum.AvgWPM, sum.AvgAccuracy, sum.Sessions))
	}
	switch {
	case m.saving:
		segments = append(segments, "saving…")
	case m.saveErr != nil:
		segments = append(segments, "save failed (see log)")
	}
	if len(segments) == 0 {
		return ""
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
