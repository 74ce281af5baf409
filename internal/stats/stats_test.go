package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/slowtype/internal/model"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestSummarize(t *testing.T) {
	results := []model.Result{
		{WPM: 40, Accuracy: 90, AvgIntervalMs: 300, Consistency: floatPtr(60)},
		{WPM: 60, Accuracy: 100, AvgIntervalMs: 200},
		{WPM: 50, Accuracy: 95, AvgIntervalMs: 250, Consistency: floatPtr(80)},
	}
	s := Summarize(results)
	if s.Sessions != 3 || s.AvgWPM != 50 || s.BestWPM != 60 {
		t.Fatalf("unexpected wpm summary: %+v", s)
	}
	if s.AvgAccuracy != 95 || s.AvgIntervalMs != 250 {
		t.Fatalf("unexpected accuracy/interval: %+v", s)
	}
	if s.AvgConsistency == nil || *s.AvgConsistency != 70 {
		t.Fatalf("expected consistency averaged over present values, got %v", s.AvgConsistency)
	}

	if got := Summarize(nil); got.Sessions != 0 || got.AvgConsistency != nil {
		t.Fatalf("unexpected empty summary: %+v", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MovingAverage[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	same := MovingAverage([]float64{1, 5}, 0)
	if same[0] != 1 || same[1] != 5 {
		t.Fatalf("expected copy for window <= 1, got %v", same)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{5, 5, 5}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
}

func TestRenderSummaryShowsConsistency(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSummary(&buf, []model.Result{{WPM: 42, Accuracy: 97.5, Consistency: floatPtr(88)}})
	if err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Avg WPM: 42.00") || !strings.Contains(out, "Avg Consistency: 88") {
		t.Fatalf("unexpected summary output: %q", out)
	}
}

func TestRenderTrendWithoutBuckets(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTrend(&buf, model.Result{Language: model.LangThai, Mode: model.ModeWords, Duration: 10}, 40, 4, false); err != nil {
		t.Fatalf("RenderTrend failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No trend recorded.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestFormatConsistency(t *testing.T) {
	if got := FormatConsistency(nil); got != "-" {
		t.Fatalf("expected dash, got %q", got)
	}
	if got := FormatConsistency(floatPtr(77.6)); got != "78" {
		t.Fatalf("expected rounded score, got %q", got)
	}
}
