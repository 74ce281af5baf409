package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlotPerSeries(t *testing.T) {
	var buf bytes.Buffer
	err := Plot(&buf, PlotOptions{Title: "Test Plot", Width: 10, Height: 4},
		Series{Name: "A", Values: []float64{1, 2, 3, 2, 1}},
		Series{Name: "B", Values: []float64{1, 1, 2, 3, 4}},
	)
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Test Plot") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, perSeriesNote) {
		t.Fatalf("expected scale note in output")
	}
	if !strings.Contains(out, "Legend:") || !strings.Contains(out, "B (dashed)") {
		t.Fatalf("expected legend in output: %q", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// title + note + 2 ranges + 4 rows + legend
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines of output, got %d", len(lines))
	}
}

func TestPlotSharedLabelsValues(t *testing.T) {
	var buf bytes.Buffer
	err := Plot(&buf, PlotOptions{Width: 10, Height: 3, Shared: true},
		Series{Name: "WPM", Values: []float64{20, 40, 60}},
	)
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, perSeriesNote) {
		t.Fatalf("shared plot should not print per-series note")
	}
	for _, label := range []string{"60.0", "40.0", "20.0"} {
		if !strings.Contains(out, label) {
			t.Fatalf("expected axis label %s in %q", label, out)
		}
	}
}

func TestPlotSkipsEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	if err := Plot(&buf, PlotOptions{}, Series{Name: "empty"}); err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
