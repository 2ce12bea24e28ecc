package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Outcome is how a level attempt ended.
type Outcome string

const (
	OutcomeCleared  Outcome = "cleared"
	OutcomeCaptured Outcome = "captured"
)

// LevelRun is one attempt at a level.
type LevelRun struct {
	ID        int64
	Level     int
	Outcome   Outcome
	Stars     int
	Ticks     int
	CreatedAt time.Time
}

// LevelStats aggregates every attempt at one level.
type LevelStats struct {
	Level        int
	Attempts     int
	Clears       int
	Captures     int
	BestStars    int
	FastestTicks int // Fastest clear, 0 if never cleared
}

// SaveLevelRun records a level attempt.
func (s *Store) SaveLevelRun(run LevelRun) (int64, error) {
	if run.Level < 1 {
		return 0, fmt.Errorf("storage: invalid level %d", run.Level)
	}

	res, err := s.db.Exec(
		"INSERT INTO level_runs (level, outcome, stars, ticks) VALUES (?, ?, ?, ?)",
		run.Level, string(run.Outcome), run.Stars, run.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentLevelRuns returns the latest attempts, newest first.
func (s *Store) RecentLevelRuns(limit int) ([]LevelRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level, outcome, stars, ticks, created_at
		 FROM level_runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level runs: %w", err)
	}
	defer rows.Close()

	var runs []LevelRun
	for rows.Next() {
		var r LevelRun
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &outcome, &r.Stars, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// AllLevelStats returns statistics for every level that has been attempted,
// ordered by level.
func (s *Store) AllLevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level,
		        COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        COALESCE(MAX(stars), 0),
		        MIN(CASE WHEN outcome = ? THEN ticks END)
		 FROM level_runs
		 GROUP BY level
		 ORDER BY level`,
		string(OutcomeCleared), string(OutcomeCaptured), string(OutcomeCleared),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var ls LevelStats
		var fastest sql.NullInt64
		if err := rows.Scan(&ls.Level, &ls.Attempts, &ls.Clears, &ls.Captures, &ls.BestStars, &fastest); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if fastest.Valid {
			ls.FastestTicks = int(fastest.Int64)
		}
		stats = append(stats, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// BestStars returns the most stars earned on a level, 0 if never cleared.
func (s *Store) BestStars(level int) (int, error) {
	var stars sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(stars) FROM level_runs WHERE level = ? AND outcome = ?",
		level, string(OutcomeCleared),
	).Scan(&stars)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best stars: %w", err)
	}
	if !stars.Valid {
		return 0, nil
	}
	return int(stars.Int64), nil
}
