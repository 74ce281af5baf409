package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrongSpace marks a space position that received another character.
const wrongSpace = '•'

// cell is one rendered target rune.
type cell struct {
	s     string
	width int
	space bool
}

func styleCells(target, typed []rune, cursor int) []cell {
	active, hasActive := activeWord(wordSpans(target), cursor)

	out := make([]cell, len(target))
	for i, want := range target {
		shown := want
		style := pendingStyle
		switch {
		case i < len(typed):
			switch {
			case want == ' ' && typed[i] != ' ':
				shown = wrongSpace
				style = incorrectStyle
			case typed[i] == want:
				style = correctStyle
			default:
				style = incorrectStyle
			}
		case want != ' ' && hasActive && i >= active.start && i < active.end:
			style = currentWordStyle
		}
		if i == cursor && i >= len(typed) {
			style = style.Underline(true)
		}
		out[i] = cell{
			s:     style.Render(string(shown)),
			width: runewidth.RuneWidth(shown),
			space: want == ' ',
		}
	}
	return out
}

type span struct {
	start int
	end   int
}

func wordSpans(target []rune) []span {
	var spans []span
	start := -1
	for i, r := range target {
		switch {
		case r == ' ' && start >= 0:
			spans = append(spans, span{start: start, end: i})
			start = -1
		case r != ' ' && start < 0:
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, span{start: start, end: len(target)})
	}
	return spans
}

// activeWord returns the word holding the cursor, or the next word when
// the cursor sits on a space.
func activeWord(spans []span, cursor int) (span, bool) {
	if len(spans) == 0 {
		return span{}, false
	}
	if cursor < 0 {
		return spans[0], true
	}
	for _, s := range spans {
		if cursor < s.end {
			return s, true
		}
	}
	return spans[len(spans)-1], true
}

func joinCells(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.s)
	}
	return b.String()
}

// wrapCells lays words out greedily within width. A space that would
// overflow a line is consumed by the line break; words wider than the
// line are split.
func wrapCells(cells []cell, width int) string {
	if width <= 0 {
		return joinCells(cells)
	}
	var b strings.Builder
	col := 0
	newline := func() {
		b.WriteByte('\n')
		col = 0
	}
	for i := 0; i < len(cells); {
		if cells[i].space {
			if col+cells[i].width > width {
				newline()
			} else {
				b.WriteString(cells[i].s)
				col += cells[i].width
			}
			i++
			continue
		}
		j := i
		wordWidth := 0
		for j < len(cells) && !cells[j].space {
			wordWidth += cells[j].width
			j++
		}
		if col > 0 && col+wordWidth > width {
			newline()
		}
		for _, c := range cells[i:j] {
			if col > 0 && col+c.width > width {
				newline()
			}
			b.WriteString(c.s)
			col += c.width
		}
		i = j
	}
	return b.String()
}
