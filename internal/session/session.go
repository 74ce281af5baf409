// Package session implements the lifecycle of a single typing attempt.
//
// State is an immutable value: Step returns a new State and never writes
// into the slices of the State it was given, so earlier states and emitted
// records stay valid while the next attempt is typed.
package session

import (
	"slices"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/slowtype/internal/metrics"
	"github.com/verte-zerg/slowtype/internal/model"
	"github.com/verte-zerg/slowtype/internal/trend"
)

// Phase is the lifecycle stage of an attempt.
type Phase int

// Session phases.
const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Params describe one attempt as supplied by the text source.
type Params struct {
	Target   string
	Duration int
	Mode     model.Mode
	Language model.Language
}

// State is the full state of one attempt.
type State struct {
	params    Params
	target    []rune
	typed     []rune
	log       []int64
	phase     Phase
	startMs   int64
	elapsedMs int64
	recorded  bool
}

// Record is the completed-session payload handed to the history recorder.
type Record struct {
	Snapshot metrics.Snapshot
	Trend    []float64
	Mode     model.Mode
	Duration int
	Language model.Language
	Target   string
	Typed    string
}

// Outcome reports side effects of a transition.
type Outcome struct {
	// Record is set only on the transition into PhaseFinished.
	Record *Record
	// Restarted is set when a reset event cleared the attempt.
	Restarted bool
}

// New returns an idle attempt for the given parameters.
func New(p Params) State {
	return State{params: p, target: []rune(p.Target)}
}

// Params returns the attempt parameters.
func (s State) Params() Params { return s.params }

// Phase returns the current phase.
func (s State) Phase() Phase { return s.phase }

// Target returns the text to reproduce.
func (s State) Target() string { return s.params.Target }

// Typed returns the typed buffer.
func (s State) Typed() string { return string(s.typed) }

// TypedLen returns the number of runes typed so far.
func (s State) TypedLen() int { return len(s.typed) }

// TargetLen returns the number of runes in the target.
func (s State) TargetLen() int { return len(s.target) }

// Log returns a copy of the keystroke timestamps.
func (s State) Log() []int64 { return slices.Clone(s.log) }

// ElapsedMs returns the elapsed time since the first keystroke.
func (s State) ElapsedMs() int64 { return s.elapsedMs }

// ElapsedSeconds returns whole elapsed seconds.
func (s State) ElapsedSeconds() int { return int(s.elapsedMs / 1000) }

// RemainingSeconds returns whole seconds left before the duration expires.
func (s State) RemainingSeconds() int {
	left := s.params.Duration - s.ElapsedSeconds()
	if left < 0 {
		return 0
	}
	return left
}

// Recorded reports whether this attempt already produced its Record.
func (s State) Recorded() bool { return s.recorded }

// Snapshot computes live metrics for the current state.
func (s State) Snapshot() metrics.Snapshot {
	return metrics.Compute(s.params.Target, string(s.typed), s.log, s.elapsedMs)
}

// Step applies one event and returns the next state.
func Step(s State, ev Event) (State, Outcome) {
	switch ev := ev.(type) {
	case ResetEvent:
		return reset(s), Outcome{Restarted: true}
	case KeyEvent:
		return stepKey(s, ev)
	case TickEvent:
		return stepTick(s, ev)
	default:
		return s, Outcome{}
	}
}

func stepKey(s State, ev KeyEvent) (State, Outcome) {
	kind := Classify(ev)
	if kind == KeyReset {
		return reset(s), Outcome{Restarted: true}
	}
	if s.phase == PhaseFinished {
		return s, Outcome{}
	}
	switch kind {
	case KeyBackspace:
		return backspace(s), Outcome{}
	case KeyChar:
		r, _ := utf8.DecodeRuneInString(ev.Key)
		return typeRune(s, r, ev.AtMs)
	default:
		return s, Outcome{}
	}
}

func stepTick(s State, ev TickEvent) (State, Outcome) {
	if s.phase != PhaseRunning {
		return s, Outcome{}
	}
	s.elapsedMs = sinceStart(s.startMs, ev.AtMs)
	limit := int64(s.params.Duration) * 1000
	if s.elapsedMs >= limit {
		// A late tick must not stretch the test past its duration.
		s.elapsedMs = limit
		return finish(s)
	}
	return s, Outcome{}
}

// typeRune appends the rune and its timestamp together.
func typeRune(s State, r rune, atMs int64) (State, Outcome) {
	if len(s.typed) >= len(s.target) {
		return s, Outcome{}
	}
	if s.phase == PhaseIdle {
		s.phase = PhaseRunning
		s.startMs = atMs
	}
	s.typed = append(s.typed[:len(s.typed):len(s.typed)], r)
	s.log = append(s.log[:len(s.log):len(s.log)], atMs)
	s.elapsedMs = sinceStart(s.startMs, atMs)
	if len(s.typed) >= len(s.target) {
		return finish(s)
	}
	return s, Outcome{}
}

// backspace removes the last rune and its timestamp together.
func backspace(s State) State {
	if len(s.typed) == 0 {
		return s
	}
	n := len(s.typed) - 1
	s.typed = s.typed[:n:n]
	if len(s.log) > 0 {
		m := len(s.log) - 1
		s.log = s.log[:m:m]
	}
	return s
}

func finish(s State) (State, Outcome) {
	s.phase = PhaseFinished
	if s.recorded {
		return s, Outcome{}
	}
	s.recorded = true
	typed := string(s.typed)
	rec := &Record{
		Snapshot: metrics.Compute(s.params.Target, typed, s.log, s.elapsedMs),
		Trend:    trend.WPMBuckets(slices.Clone(s.log), s.params.Target, typed, s.params.Duration),
		Mode:     s.params.Mode,
		Duration: s.params.Duration,
		Language: s.params.Language,
		Target:   s.params.Target,
		Typed:    typed,
	}
	return s, Outcome{Record: rec}
}

// Result converts the record into a history entry stamped at the given time.
func (r *Record) Result(at time.Time) model.Result {
	var consistency *float64
	if r.Snapshot.Consistency != nil {
		v := *r.Snapshot.Consistency
		consistency = &v
	}
	return model.Result{
		WPM:           r.Snapshot.WPM,
		Accuracy:      r.Snapshot.Accuracy,
		AvgIntervalMs: r.Snapshot.AvgKeyIntervalMs,
		Consistency:   consistency,
		Mode:          r.Mode,
		Duration:      r.Duration,
		Language:      r.Language,
		WPMBuckets:    slices.Clone(r.Trend),
		CreatedAt:     at,
	}
}

func reset(s State) State {
	return New(s.params)
}

func sinceStart(startMs, atMs int64) int64 {
	if atMs < startMs {
		return 0
	}
	return atMs - startMs
}
