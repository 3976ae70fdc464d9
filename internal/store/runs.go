package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// QueryRun is one recorded query execution.
type QueryRun struct {
	ID          int64
	Timestamp   time.Time
	QueryType   string
	DatabaseKey string
	ItemCount   int
	Parameters  string
	Summary     string
}

// SaveRun appends a query run to the log and returns its ID.
func (s *Store) SaveRun(run *QueryRun) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO query_runs (query_type, database_key, item_count, parameters, summary)
		 VALUES (?, ?, ?, ?, ?)`,
		run.QueryType, run.DatabaseKey, run.ItemCount, run.Parameters, run.Summary,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save query run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent query runs, newest first. A limit of 0
// returns all runs.
func (s *Store) ListRuns(limit int) ([]*QueryRun, error) {
	query := `SELECT id, timestamp, query_type, database_key, item_count, parameters, summary
	          FROM query_runs ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list query runs: %w", err)
	}
	defer rows.Close()

	var runs []*QueryRun
	for rows.Next() {
		var run QueryRun
		var ts string
		if err := rows.Scan(&run.ID, &ts, &run.QueryType, &run.DatabaseKey, &run.ItemCount, &run.Parameters, &run.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan query run: %w", err)
		}
		run.Timestamp = parseTimestamp(ts)
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// GetRun returns one query run by ID, or nil if it does not exist.
func (s *Store) GetRun(id int64) (*QueryRun, error) {
	row := s.db.QueryRow(
		`SELECT id, timestamp, query_type, database_key, item_count, parameters, summary
		 FROM query_runs WHERE id = ?`, id,
	)

	var run QueryRun
	var ts string
	err := row.Scan(&run.ID, &ts, &run.QueryType, &run.DatabaseKey, &run.ItemCount, &run.Parameters, &run.Summary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get query run: %w", err)
	}
	run.Timestamp = parseTimestamp(ts)
	return &run, nil
}
