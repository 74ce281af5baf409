package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/slowtype/internal/model"
)

// AddCustomWords stores words for a language and level. Existing words are
// left untouched. The number of newly added words is returned.
func (s *Store) AddCustomWords(ctx context.Context, words []model.CustomWord) (added int, err error) {
	if len(words) == 0 {
		return 0, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO custom_words (language, level, word, created_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	now := time.Now().UTC().Format(timeLayout)
	for _, w := range words {
		res, err := stmt.ExecContext(ctx, string(w.Language), string(w.Level), w.Word, now)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// ListCustomWords returns custom words for a language, optionally limited
// to the given levels, ordered by word.
func (s *Store) ListCustomWords(ctx context.Context, lang model.Language, levels []model.Level) ([]model.CustomWord, error) {
	clauses := []string{"language = ?"}
	args := []any{string(lang)}
	if len(levels) > 0 {
		placeholders := make([]string, len(levels))
		for i, l := range levels {
			placeholders[i] = "?"
			args = append(args, string(l))
		}
		clauses = append(clauses, fmt.Sprintf("level IN (%s)", strings.Join(placeholders, ",")))
	}
	query := fmt.Sprintf(`SELECT word, language, level FROM custom_words WHERE %s ORDER BY word ASC, level ASC`,
		strings.Join(clauses, " AND "))
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

	var result []model.CustomWord
	for rows.Next() {
		var (
			w     model.CustomWord
			lang  string
			level string
		)
		if err := rows.Scan(&w.Word, &lang, &level); err != nil {
			return nil, err
		}
		w.Language = model.Language(lang)
		w.Level = model.Level(level)
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveCustomWord deletes a word from every level of a language and
// reports whether anything was removed.
func (s *Store) RemoveCustomWord(ctx context.Context, lang model.Language, word string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM custom_words WHERE language = ? AND word = ?`, string(lang), word)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CustomWordStrings returns just the words for use as extra generator input.
func CustomWordStrings(words []model.CustomWord) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Word
	}
	return out
}
