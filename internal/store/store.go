// Package store handles SQLite persistence of run history. Only metadata is
// stored; passwords never reach the database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/glyphpass/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Filter narrows ListRuns. Zero values match everything.
type Filter struct {
	Variant model.Variant
	Since   *time.Time
	Last    int
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			variant TEXT NOT NULL,
			length INTEGER NOT NULL,
			pool_size INTEGER NOT NULL,
			entropy_bits REAL NOT NULL,
			digits INTEGER NOT NULL,
			scripts INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRuns stores run metadata in a single transaction and returns the new
// ids in input order.
func (s *Store) InsertRuns(ctx context.Context, runs []model.Run) (ids []int64, err error) {
	if len(runs) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
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
		`INSERT INTO runs (created_at, variant, length, pool_size, entropy_bits, digits, scripts)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	ids = make([]int64, 0, len(runs))
	for _, r := range runs {
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		res, err := stmt.ExecContext(ctx,
			createdAt.UTC().Format(timeLayout),
			string(r.Variant),
			r.Length,
			r.PoolSize,
			r.EntropyBits,
			r.Digits,
			r.Scripts,
		)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ListRuns returns runs matching the filter, oldest first. Last keeps only the
// most recent N matches.
func (s *Store) ListRuns(ctx context.Context, f Filter) ([]model.Run, error) {
	clauses, args := filterClauses(f)
	query := fmt.Sprintf(`SELECT id, created_at, variant, length, pool_size, entropy_bits, digits, scripts
		FROM runs
		WHERE %s
		ORDER BY created_at DESC, id DESC`, strings.Join(clauses, " AND "))
	if f.Last > 0 {
		query += " LIMIT ?"
		args = append(args, f.Last)
	}
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

	var runs []model.Run
	for rows.Next() {
		var r model.Run
		var createdAt, variant string
		if err := rows.Scan(&r.ID, &createdAt, &variant, &r.Length, &r.PoolSize, &r.EntropyBits, &r.Digits, &r.Scripts); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, err
		}
		r.CreatedAt = parsed
		r.Variant = model.Variant(variant)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
	return runs, nil
}

// Summarize aggregates runs matching the filter per variant. Last is ignored.
func (s *Store) Summarize(ctx context.Context, f Filter) ([]model.VariantAggregate, error) {
	clauses, args := filterClauses(f)
	query := fmt.Sprintf(`SELECT variant, COUNT(*), AVG(length), AVG(entropy_bits), MAX(entropy_bits), MAX(created_at)
		FROM runs
		WHERE %s
		GROUP BY variant
		ORDER BY variant ASC`, strings.Join(clauses, " AND "))
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

	var result []model.VariantAggregate
	for rows.Next() {
		var agg model.VariantAggregate
		var variant, last string
		if err := rows.Scan(&variant, &agg.Runs, &agg.AvgLength, &agg.AvgEntropy, &agg.MaxEntropy, &last); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, last)
		if err != nil {
			return nil, err
		}
		agg.Variant = model.Variant(variant)
		agg.LastCreated = parsed
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteBefore removes runs created before t and returns how many were
// removed.
func (s *Store) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, t.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func filterClauses(f Filter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if f.Variant != "" {
		clauses = append(clauses, "variant = ?")
		args = append(args, string(f.Variant))
	}
	if f.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, f.Since.UTC().Format(timeLayout))
	}
	return clauses, args
}
