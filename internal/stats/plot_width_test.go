package stats

import (
	"testing"
	"unicode/utf8"
)

func TestPlotWidthFor(t *testing.T) {
	axisWidth := axisLabelWidth + utf8.RuneCountInString(axisSeparator)
	if got := PlotWidthFor(80); got != 80-axisWidth {
		t.Fatalf("expected width %d, got %d", 80-axisWidth, got)
	}
	if got := PlotWidthFor(0); got != minPlotWidth {
		t.Fatalf("expected min width %d, got %d", minPlotWidth, got)
	}
	if got := PlotWidthFor(12); got != minPlotWidth {
		t.Fatalf("expected min width %d for narrow terminal, got %d", minPlotWidth, got)
	}
}

func TestResampleKeepsEndpoints(t *testing.T) {
	out := resample([]float64{0, 10}, 11)
	if len(out) != 11 || out[0] != 0 || out[10] != 10 || out[5] != 5 {
		t.Fatalf("unexpected resample: %v", out)
	}
	out = resample([]float64{1, 3, 5, 7}, 2)
	if out[0] != 2 || out[1] != 6 {
		t.Fatalf("unexpected downsample: %v", out)
	}
}
