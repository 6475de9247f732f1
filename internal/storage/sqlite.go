// Package storage provides SQLite-based persistence for scores and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	LevelID   string
	Score     int
	CreatedAt time.Time
}

// Run outcomes as stored in the runs table.
const (
	OutcomeVictory = "victory"
	OutcomeFall    = "fall"
	OutcomeDefeat  = "defeat"
)

// Run is one finished play-through of a level.
type Run struct {
	ID        int64
	RunID     string // UUID; generated on save when empty
	LevelID   string
	Score     int
	Outcome   string
	Lives     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_level_id ON scores(level_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			lives INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime converts a DATETIME column value; the driver may hand back
// either a time.Time or its text form.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a new score for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(levelID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (level_id, score) VALUES (?, ?)",
		levelID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given level.
// Results are ordered by score descending.
func (s *Store) TopScores(levelID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, score, created_at
		 FROM scores
		 WHERE level_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given level.
// Returns 0 if no scores exist.
func (s *Store) HighScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE level_id = ?",
		levelID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and runs for the given level.
func (s *Store) ClearScores(levelID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveRun records a finished run and returns its run ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	} else if _, err := uuid.Parse(run.RunID); err != nil {
		return "", fmt.Errorf("storage: invalid run ID %q: %w", run.RunID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, level_id, score, outcome, lives, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.LevelID, run.Score, run.Outcome, run.Lives, run.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.RunID, nil
}

// RunByID retrieves a run by its run ID. Returns nil if there is none.
func (s *Store) RunByID(runID string) (*Run, error) {
	var run Run
	var durationMs int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, run_id, level_id, score, outcome, lives, duration_ms, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	).Scan(&run.ID, &run.RunID, &run.LevelID, &run.Score, &run.Outcome, &run.Lives, &durationMs, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.CreatedAt = parseTime(createdAt)
	return &run, nil
}

// RecentRuns retrieves the most recent runs of a level, newest first.
func (s *Store) RecentRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, score, outcome, lives, duration_ms, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&run.ID, &run.RunID, &run.LevelID, &run.Score, &run.Outcome, &run.Lives, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		run.CreatedAt = parseTime(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// OutcomeCounts returns how many runs of a level ended each way.
func (s *Store) OutcomeCounts(levelID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT outcome, COUNT(*) FROM runs WHERE level_id = ? GROUP BY outcome`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[outcome] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	RunsCount  int
	Victories  int
	HighScore  int
	AvgScore   float64
	BestTime   time.Duration // Fastest victory; zero without one
	LastPlayed time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var bestMs sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MIN(CASE WHEN outcome = ? THEN duration_ms END),
		        MAX(created_at)
		 FROM runs WHERE level_id = ?`,
		OutcomeVictory, OutcomeVictory, levelID,
	).Scan(&stats.RunsCount, &stats.Victories, &stats.HighScore, &stats.AvgScore, &bestMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	if bestMs.Valid {
		stats.BestTime = time.Duration(bestMs.Int64) * time.Millisecond
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
