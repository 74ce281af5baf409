package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/slowtype/internal/model"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "slowtype.db"), opts...)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func testResult(i int, lang model.Language) model.Result {
	consistency := 80.0 + float64(i)
	return model.Result{
		WPM:           40 + float64(i),
		Accuracy:      95,
		AvgIntervalMs: 210,
		Consistency:   &consistency,
		Mode:          model.ModeWords,
		Duration:      15,
		Language:      lang,
		WPMBuckets:    []float64{38, 41, 40 + float64(i)},
		CreatedAt:     time.Unix(1700000000, 0).Add(time.Duration(i) * time.Minute),
	}
}

func TestInsertAndListResults(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	id, err := st.InsertResult(ctx, testResult(0, model.LangEnglish))
	if err != nil {
		t.Fatalf("insert result: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}
	noConsistency := testResult(1, model.LangThai)
	noConsistency.Consistency = nil
	noConsistency.WPMBuckets = nil
	if _, err := st.InsertResult(ctx, noConsistency); err != nil {
		t.Fatalf("insert result: %v", err)
	}

	all, err := st.ListResults(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 results, got %d", len(all))
	}
	first := all[0]
	if first.ID != id || first.WPM != 40 || first.Consistency == nil || *first.Consistency != 80 {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if len(first.WPMBuckets) != 3 || first.WPMBuckets[2] != 40 {
		t.Fatalf("unexpected buckets: %v", first.WPMBuckets)
	}
	if !first.CreatedAt.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("unexpected created_at: %v", first.CreatedAt)
	}
	if all[1].Consistency != nil {
		t.Fatalf("expected nil consistency, got %v", *all[1].Consistency)
	}
	if all[1].WPMBuckets == nil || len(all[1].WPMBuckets) != 0 {
		t.Fatalf("expected empty buckets, got %v", all[1].WPMBuckets)
	}

	th, err := st.ListResults(ctx, model.HistoryFilter{Lang: model.LangThai})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(th) != 1 || th[0].Language != model.LangThai {
		t.Fatalf("unexpected thai results: %+v", th)
	}
}

func TestListResultsSinceAndLast(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := st.InsertResult(ctx, testResult(i, model.LangEnglish)); err != nil {
			t.Fatalf("insert result: %v", err)
		}
	}
	since := time.Unix(1700000000, 0).Add(2 * time.Minute)
	got, err := st.ListResults(ctx, model.HistoryFilter{Since: &since})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(got) != 3 || got[0].WPM != 42 {
		t.Fatalf("unexpected since results: %+v", got)
	}
	got, err = st.ListResults(ctx, model.HistoryFilter{Last: 2})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(got) != 2 || got[0].WPM != 43 || got[1].WPM != 44 {
		t.Fatalf("unexpected last results: %+v", got)
	}
}

func TestInsertResultTrimsHistory(t *testing.T) {
	st := openTestStore(t, WithMaxResults(3))
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := st.InsertResult(ctx, testResult(i, model.LangEnglish)); err != nil {
			t.Fatalf("insert result: %v", err)
		}
	}
	got, err := st.ListResults(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(got) != 3 || got[0].WPM != 42 {
		t.Fatalf("expected newest 3 results, got %+v", got)
	}
}

func TestClearResults(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.InsertResult(ctx, testResult(0, model.LangEnglish)); err != nil {
		t.Fatalf("insert result: %v", err)
	}
	if err := st.ClearResults(ctx); err != nil {
		t.Fatalf("clear results: %v", err)
	}
	got, err := st.ListResults(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestCustomWords(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	words := []model.CustomWord{
		{Word: "zephyr", Language: model.LangEnglish, Level: model.LevelHard},
		{Word: "cat", Language: model.LangEnglish, Level: model.LevelEasy},
		{Word: "cat", Language: model.LangEnglish, Level: model.LevelEasy},
		{Word: "แมว", Language: model.LangThai, Level: model.LevelEasy},
	}
	added, err := st.AddCustomWords(ctx, words)
	if err != nil {
		t.Fatalf("add words: %v", err)
	}
	if added != 3 {
		t.Fatalf("expected 3 new words, got %d", added)
	}

	en, err := st.ListCustomWords(ctx, model.LangEnglish, nil)
	if err != nil {
		t.Fatalf("list words: %v", err)
	}
	if got := CustomWordStrings(en); len(got) != 2 || got[0] != "cat" || got[1] != "zephyr" {
		t.Fatalf("unexpected english words: %v", got)
	}
	easy, err := st.ListCustomWords(ctx, model.LangEnglish, []model.Level{model.LevelEasy})
	if err != nil {
		t.Fatalf("list words: %v", err)
	}
	if len(easy) != 1 || easy[0].Level != model.LevelEasy {
		t.Fatalf("unexpected easy words: %+v", easy)
	}

	removed, err := st.RemoveCustomWord(ctx, model.LangEnglish, "cat")
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v, %v", removed, err)
	}
	removed, err = st.RemoveCustomWord(ctx, model.LangEnglish, "cat")
	if err != nil || removed {
		t.Fatalf("expected no-op removal, got %v, %v", removed, err)
	}
}
