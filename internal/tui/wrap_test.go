package tui

import "testing"

func TestStyleCellsCursor(t *testing.T) {
	cells := styleCells([]rune("ab"), []rune("a"), 1)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if cells[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if cells[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined current-word style for cursor rune")
	}
}

func TestStyleCellsNoCursorWhenComplete(t *testing.T) {
	cells := styleCells([]rune("a"), []rune("a"), -1)
	if cells[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestStyleCellsKeepsTargetOnMistype(t *testing.T) {
	cells := styleCells([]rune("ab"), []rune("ax"), 2)
	if cells[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style showing target rune")
	}
}

func TestStyleCellsWordHighlighting(t *testing.T) {
	cells := styleCells([]rune("one two"), []rune("o"), 1)
	if cells[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped rune in current word")
	}
	if cells[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestStyleCellsCursorOnSpaceHighlightsNextWord(t *testing.T) {
	cells := styleCells([]rune("ab cd"), []rune("ab"), 2)
	if cells[3].s != currentWordStyle.Render("c") {
		t.Fatalf("expected next word to be current")
	}
}

func TestStyleCellsWrongSpaceDot(t *testing.T) {
	cells := styleCells([]rune("a b"), []rune("ax"), 2)
	if cells[1].s != incorrectStyle.Render(string(wrongSpace)) {
		t.Fatalf("expected marker for wrong space")
	}
}

func plainCells(s string) []cell {
	out := make([]cell, 0, len(s))
	for _, r := range s {
		out = append(out, cell{s: string(r), width: 1, space: r == ' '})
	}
	return out
}

func TestWrapCellsBreaksBetweenWords(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{"aa bb cc", 5, "aa bb\ncc"},
		{"aa bb cc", 4, "aa \nbb \ncc"},
		{"abcdefg", 3, "abc\ndef\ng"},
		{"aa bb", 0, "aa bb"},
	}
	for _, tc := range cases {
		if got := wrapCells(plainCells(tc.text), tc.width); got != tc.want {
			t.Fatalf("wrapCells(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}
