package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/slowtype/internal/model"
)

// Lister loads history results.
type Lister interface {
	ListResults(ctx context.Context, filter model.HistoryFilter) ([]model.Result, error)
}

// Report contains precomputed data for history rendering.
type Report struct {
	Results []model.Result
	Summary Summary
	// Window holds the newest CurveWindow results shown in tables.
	Window []model.Result
}

// Latest returns the newest result, if any.
func (r Report) Latest() (model.Result, bool) {
	if len(r.Results) == 0 {
		return model.Result{}, false
	}
	return r.Results[len(r.Results)-1], true
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, l Lister, filter model.HistoryFilter) (Report, error) {
	results, err := l.ListResults(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	window := results
	if filter.CurveWindow > 0 && len(results) > filter.CurveWindow {
		window = results[len(results)-filter.CurveWindow:]
	}
	return Report{
		Results: results,
		Summary: Summarize(results),
		Window:  window,
	}, nil
}

// RenderOptions controls plain-text report output.
type RenderOptions struct {
	Width       int
	PlotHeight  int
	CurveWindow int
	Color       bool
}

// RenderReport writes the summary, learning curves, latest trend and the
// results table.
func RenderReport(w io.Writer, report Report, opts RenderOptions) error {
	if err := RenderSummary(w, report.Results); err != nil {
		return err
	}
	if len(report.Results) == 0 {
		return nil
	}
	if err := RenderCurves(w, report.Results, opts.CurveWindow, opts.Width, opts.PlotHeight, opts.Color); err != nil {
		return err
	}
	if latest, ok := report.Latest(); ok {
		if err := RenderTrend(w, latest, opts.Width, opts.PlotHeight, opts.Color); err != nil {
			return err
		}
	}
	return RenderResultsTable(w, report.Window)
}
