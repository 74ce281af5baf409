package session

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// Key names understood by the state machine.
const (
	KeyNameEscape    = "esc"
	KeyNameBackspace = "backspace"
	KeyNameRestart   = "r"
)

// Event is an input to Step.
type Event interface {
	event()
}

// KeyEvent is a discrete key press. Shift is not tracked because shifted
// characters arrive as their own rune.
type KeyEvent struct {
	Key       string
	Repeat    bool
	Composing bool
	Ctrl      bool
	Alt       bool
	Meta      bool
	AtMs      int64
}

// TickEvent is a periodic timer tick.
type TickEvent struct {
	AtMs int64
}

// ResetEvent restarts the attempt regardless of phase.
type ResetEvent struct{}

func (KeyEvent) event()   {}
func (TickEvent) event()  {}
func (ResetEvent) event() {}

// KeyKind is the classification of a key event.
type KeyKind int

// Key classifications.
const (
	KeyIgnored KeyKind = iota
	KeyReset
	KeyBackspace
	KeyChar
)

// Classify decides how a key event affects a session.
func Classify(ev KeyEvent) KeyKind {
	if ev.Key == KeyNameEscape || (ev.Ctrl && ev.Key == KeyNameRestart) {
		return KeyReset
	}
	if ev.Repeat || ev.Composing {
		return KeyIgnored
	}
	if ev.Key == KeyNameBackspace {
		return KeyBackspace
	}
	if ev.Ctrl || ev.Alt || ev.Meta {
		return KeyIgnored
	}
	if utf8.RuneCountInString(ev.Key) != 1 {
		return KeyIgnored
	}
	r, _ := utf8.DecodeRuneInString(ev.Key)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return KeyIgnored
	}
	return KeyChar
}

// Clock supplies monotonic millisecond timestamps.
type Clock interface {
	NowMs() int64
}

// MonotonicClock measures milliseconds since its creation using the
// monotonic reading of time.Time.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock returns a clock starting at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// NowMs implements Clock.
func (c *MonotonicClock) NowMs() int64 {
	return time.Since(c.origin).Milliseconds()
}
