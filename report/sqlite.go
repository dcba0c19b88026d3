// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync"

	_ "modernc.org/sqlite"
)

// Sentinel errors for SQLiteStore.
var (
	ErrNoPath         = errors.New("report: sqlite path is required")
	ErrNotInitialized = errors.New("report: store is not initialized")
)

// SQLiteStore keeps records in a SQLite database, one row per run.
// Infinite costs are stored as NULL.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns a store for the database file at path; call Init
// before use.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database and creates the schema. It is idempotent.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return ErrNoPath
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveRecords inserts records in one transaction. A record with the same
// (run, test, algorithm, repeat) key replaces the stored one.
func (s *SQLiteStore) SaveRecords(ctx context.Context, records []Record) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO runs (run_id, test_id, source, destination, algorithm, repeat, time_ms, cost, path_length)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, test_id, algorithm, repeat) DO UPDATE SET
			source = excluded.source,
			destination = excluded.destination,
			time_ms = excluded.time_ms,
			cost = excluded.cost,
			path_length = excluded.path_length
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		var cost sql.NullFloat64
		if r.Found() {
			cost = sql.NullFloat64{Float64: r.Cost, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			r.RunID, r.TestID, r.Source, r.Destination, r.Algorithm, r.Repeat, r.TimeMS, cost, r.PathLength,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save record %s/%d/%s/%d: %w", r.RunID, r.TestID, r.Algorithm, r.Repeat, err)
		}
	}
	return tx.Commit()
}

// Records returns the records of runID ordered by test, algorithm and repeat.
func (s *SQLiteStore) Records(ctx context.Context, runID string) ([]Record, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT run_id, test_id, source, destination, algorithm, repeat, time_ms, cost, path_length
		FROM runs
		WHERE run_id = ?
		ORDER BY test_id, algorithm, repeat
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r    Record
			cost sql.NullFloat64
		)
		if err := rows.Scan(&r.RunID, &r.TestID, &r.Source, &r.Destination, &r.Algorithm,
			&r.Repeat, &r.TimeMS, &cost, &r.PathLength); err != nil {
			return nil, err
		}
		r.Cost = math.Inf(1)
		if cost.Valid {
			r.Cost = cost.Float64
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RunIDs lists the stored run identifiers.
func (s *SQLiteStore) RunIDs(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT run_id FROM runs ORDER BY run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT NOT NULL,
			test_id INTEGER NOT NULL,
			source INTEGER NOT NULL,
			destination INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			repeat INTEGER NOT NULL,
			time_ms REAL NOT NULL,
			cost REAL,
			path_length INTEGER NOT NULL,
			PRIMARY KEY (run_id, test_id, algorithm, repeat)
		);
	`)
	return err
}
