// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects how practice text is generated.
type Mode string

// Supported text modes.
const (
	ModeWords  Mode = "words"
	ModeQuotes Mode = "quotes"
)

// Language identifies a built-in word pool.
type Language string

// Supported languages.
const (
	LangEnglish Language = "en"
	LangThai    Language = "th"
)

// Languages lists the built-in languages in display order.
var Languages = []Language{LangEnglish, LangThai}

// Level groups words by difficulty.
type Level string

// Word levels.
const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// AllLevels lists every level in ascending difficulty.
var AllLevels = []Level{LevelEasy, LevelMedium, LevelHard}

// Durations lists the accepted session lengths in seconds.
var Durations = []int{10, 15, 25, 30, 50, 60, 100, 120}

// Config defines practice settings.
type Config struct {
	Lang     Language
	Mode     Mode
	Duration int
	Levels   []Level
	CapsPct  float64
	PunctPct float64
	PunctSet string
}

// Display toggles which live stats and result blocks are shown.
type Display struct {
	StatsWPM         bool
	StatsAccuracy    bool
	StatsTime        bool
	StatsSmoothness  bool
	StatsConsistency bool
	ResultWPM        bool
	ResultAccuracy   bool
	ResultChars      bool
	ResultTime       bool
}

// DefaultDisplay shows everything.
func DefaultDisplay() Display {
	return Display{
		StatsWPM:         true,
		StatsAccuracy:    true,
		StatsTime:        true,
		StatsSmoothness:  true,
		StatsConsistency: true,
		ResultWPM:        true,
		ResultAccuracy:   true,
		ResultChars:      true,
		ResultTime:       true,
	}
}

// HistoryFilter defines filters for history queries.
type HistoryFilter struct {
	Lang        Language
	Mode        Mode
	Since       *time.Time
	Last        int
	CurveWindow int
}

// Result is a completed typing session as stored in history.
type Result struct {
	ID            string
	WPM           float64
	Accuracy      float64
	AvgIntervalMs float64
	Consistency   *float64
	Mode          Mode
	Duration      int
	Language      Language
	WPMBuckets    []float64
	CreatedAt     time.Time
}

// CustomWord is a user supplied word merged into the generator pool.
type CustomWord struct {
	Word     string
	Language Language
	Level    Level
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range Languages {
		if l == lang {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// ParseMode validates a text mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeWords:
		return ModeWords, nil
	case ModeQuotes:
		return ModeQuotes, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// ParseLevels parses a comma separated level list. Unknown entries are
// skipped; an empty result means all levels.
func ParseLevels(s string) []Level {
	var out []Level
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		for _, l := range AllLevels {
			if Level(part) == l {
				out = append(out, l)
			}
		}
	}
	if len(out) == 0 {
		return append([]Level(nil), AllLevels...)
	}
	return out
}

// ValidDuration reports whether d is an accepted session length.
func ValidDuration(d int) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}
