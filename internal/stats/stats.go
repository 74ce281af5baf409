// Package stats contains history statistics and plain-text reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/slowtype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a set of results.
type Summary struct {
	Sessions       int
	AvgWPM         float64
	BestWPM        float64
	AvgAccuracy    float64
	AvgIntervalMs  float64
	AvgConsistency *float64
}

// Summarize computes averages over results. Consistency is averaged only
// over results that have one.
func Summarize(results []model.Result) Summary {
	sum := Summary{Sessions: len(results)}
	if len(results) == 0 {
		return sum
	}
	var consistencySum float64
	consistencyCount := 0
	for _, r := range results {
		sum.AvgWPM += r.WPM
		sum.AvgAccuracy += r.Accuracy
		sum.AvgIntervalMs += r.AvgIntervalMs
		if r.WPM > sum.BestWPM {
			sum.BestWPM = r.WPM
		}
		if r.Consistency != nil {
			consistencySum += *r.Consistency
			consistencyCount++
		}
	}
	n := float64(len(results))
	sum.AvgWPM /= n
	sum.AvgAccuracy /= n
	sum.AvgIntervalMs /= n
	if consistencyCount > 0 {
		avg := consistencySum / float64(consistencyCount)
		sum.AvgConsistency = &avg
	}
	return sum
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		n := i + 1
		if i >= window {
			sum -= values[i-window]
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	last := len(sparkChars) - 1
	var b strings.Builder
	for _, v := range values {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(last)))
		b.WriteByte(sparkChars[max(0, min(last, idx))])
	}
	return b.String()
}

// FormatConsistency renders an optional consistency score.
func FormatConsistency(c *float64) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", *c)
}

// RenderSummary prints the summary block for results.
func RenderSummary(w io.Writer, results []model.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}
	s := Summarize(results)
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", s.Sessions),
		fmt.Sprintf("Avg WPM: %.2f", s.AvgWPM),
		fmt.Sprintf("Best WPM: %.2f", s.BestWPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", s.AvgAccuracy),
		fmt.Sprintf("Avg Key Interval: %.0f ms", s.AvgIntervalMs),
		fmt.Sprintf("Avg Consistency: %s", FormatConsistency(s.AvgConsistency)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints smoothed WPM and accuracy curves across results.
func RenderCurves(w io.Writer, results []model.Result, window, totalWidth, height int, useColor bool) error {
	if len(results) == 0 {
		return nil
	}
	wpms := make([]float64, len(results))
	accs := make([]float64, len(results))
	for i, r := range results {
		wpms[i] = r.WPM
		accs[i] = r.Accuracy
	}
	return Plot(w, PlotOptions{
		Title:  "Learning Curves",
		Width:  widthFor(totalWidth),
		Height: height,
		Color:  useColor,
	},
		Series{Name: "WPM", Values: MovingAverage(wpms, window)},
		Series{Name: "Accuracy", Values: MovingAverage(accs, window)},
	)
}

// RenderTrend plots the per-bucket WPM of one result.
func RenderTrend(w io.Writer, r model.Result, totalWidth, height int, useColor bool) error {
	title := fmt.Sprintf("WPM trend %s (%s %s %ds)", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Language, r.Mode, r.Duration)
	if len(r.WPMBuckets) == 0 {
		_, err := fmt.Fprintf(w, "%s\nNo trend recorded.\n\n", title)
		return err
	}
	return Plot(w, PlotOptions{
		Title:  title,
		Width:  widthFor(totalWidth),
		Height: height,
		Shared: true,
		Color:  useColor,
	}, Series{Name: "WPM", Values: r.WPMBuckets})
}

// RenderResultsTable prints one row per result, newest last.
func RenderResultsTable(w io.Writer, results []model.Result) error {
	if len(results) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Results"); err != nil {
		return err
	}
	for _, line := range formatTable(ResultHeaders, ResultRows(results), resultRightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// ResultHeaders are the column titles for result tables.
var ResultHeaders = []string{"When", "Lang", "Mode", "Time", "WPM", "Accuracy", "Interval", "Consistency", "Trend"}

var resultRightAlign = map[int]bool{3: true, 4: true, 5: true, 6: true, 7: true}

// ResultRows formats results as table cells matching ResultHeaders.
func ResultRows(results []model.Result) [][]string {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(r.Language),
			string(r.Mode),
			fmt.Sprintf("%ds", r.Duration),
			fmt.Sprintf("%.1f", r.WPM),
			fmt.Sprintf("%.1f%%", r.Accuracy),
			fmt.Sprintf("%.0fms", r.AvgIntervalMs),
			FormatConsistency(r.Consistency),
			Sparkline(r.WPMBuckets),
		}
	}
	return rows
}

func widthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return 0
	}
	return PlotWidthFor(totalWidth)
}
