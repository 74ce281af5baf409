// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/slowtype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DefaultMaxResults is the number of history entries kept by default.
const DefaultMaxResults = 50

// Store wraps SQLite access for history and custom words.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxResults caps how many history entries are kept. Zero or negative
// keeps everything.
func WithMaxResults(n int) Option {
	return func(s *Store) {
		s.maxResults = n
	}
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string, opts ...Option) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, maxResults: DefaultMaxResults}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			wpm REAL NOT NULL,
			accuracy REAL NOT NULL,
			avg_interval_ms REAL NOT NULL,
			consistency REAL,
			mode TEXT NOT NULL,
			duration INTEGER NOT NULL,
			language TEXT NOT NULL,
			wpm_buckets TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS custom_words (
			language TEXT NOT NULL,
			level TEXT NOT NULL,
			word TEXT NOT NULL,
			created_at TEXT NOT NULL,
			PRIMARY KEY (language, level, word)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult stores a completed session and trims history to the
// configured size. The stored ID is returned.
func (s *Store) InsertResult(ctx context.Context, res model.Result) (id string, err error) {
	buckets := res.WPMBuckets
	if buckets == nil {
		buckets = []float64{}
	}
	encoded, err := json.Marshal(buckets)
	if err != nil {
		return "", fmt.Errorf("failed to encode wpm buckets: %w", err)
	}
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	var consistency sql.NullFloat64
	if res.Consistency != nil {
		consistency = sql.NullFloat64{Float64: *res.Consistency, Valid: true}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO results (id, created_at, wpm, accuracy, avg_interval_ms, consistency, mode, duration, language, wpm_buckets)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID,
		res.CreatedAt.UTC().Format(timeLayout),
		res.WPM,
		res.Accuracy,
		res.AvgIntervalMs,
		consistency,
		string(res.Mode),
		res.Duration,
		string(res.Language),
		string(encoded),
	)
	if err != nil {
		return "", err
	}
	if s.maxResults > 0 {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM results WHERE id NOT IN (
				SELECT id FROM results ORDER BY created_at DESC, rowid DESC LIMIT ?
			)`, s.maxResults)
		if err != nil {
			return "", err
		}
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}
	return res.ID, nil
}

// ListResults returns history entries filtered by lang, mode and since,
// ordered oldest first. Last limits the output to the newest N entries.
func (s *Store) ListResults(ctx context.Context, filter model.HistoryFilter) ([]model.Result, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Lang != "" {
		clauses = append(clauses, "language = ?")
		args = append(args, string(filter.Lang))
	}
	if filter.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, string(filter.Mode))
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}
	query := fmt.Sprintf(`SELECT id, created_at, wpm, accuracy, avg_interval_ms, consistency, mode, duration, language, wpm_buckets
		FROM results
		WHERE %s
		ORDER BY created_at ASC, rowid ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var results []model.Result
	for rows.Next() {
		var (
			res         model.Result
			createdAt   string
			consistency sql.NullFloat64
			mode        string
			lang        string
			buckets     string
		)
		if err := rows.Scan(&res.ID, &createdAt, &res.WPM, &res.Accuracy, &res.AvgIntervalMs, &consistency, &mode, &res.Duration, &lang, &buckets); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, err
		}
		res.CreatedAt = parsed
		if consistency.Valid {
			v := consistency.Float64
			res.Consistency = &v
		}
		res.Mode = model.Mode(mode)
		res.Language = model.Language(lang)
		if err := json.Unmarshal([]byte(buckets), &res.WPMBuckets); err != nil {
			return nil, fmt.Errorf("failed to decode wpm buckets for %s: %w", res.ID, err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(results) > filter.Last {
		results = results[len(results)-filter.Last:]
	}
	return results, nil
}

// ClearResults deletes all history entries.
func (s *Store) ClearResults(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM results`)
	return err
}
