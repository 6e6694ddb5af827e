// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run.
type RunEntry struct {
	ID        int64     `csv:"id"`
	GameID    string    `csv:"game"`
	Mode      string    `csv:"mode"`
	Score     int       `csv:"score"`
	Level     int       `csv:"max_level"`
	Ticks     uint64    `csv:"ticks"`
	CreatedAt time.Time `csv:"created_at"`
}

// Run is what the game reports when a run ends.
type Run struct {
	GameID string
	Mode   string
	Score  int
	Level  int
	Ticks  uint64
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL DEFAULT 'normal',
			score INTEGER NOT NULL,
			max_level INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(game_id, mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, mode, score DESC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, mode, score, max_level, ticks) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Mode, r.Score, r.Level, int64(r.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N runs for a game and mode.
// An empty mode matches every mode. Results are ordered by score descending.
func (s *Store) TopScores(gameID, mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, mode, score, max_level, ticks, created_at
		 FROM runs
		 WHERE game_id = ? AND (? = '' OR mode = ?)
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRuns(rows)
}

// AllScores retrieves every run for a game and mode (no limit).
func (s *Store) AllScores(gameID, mode string) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, mode, score, max_level, ticks, created_at
		 FROM runs
		 WHERE game_id = ? AND (? = '' OR mode = ?)
		 ORDER BY score DESC, id ASC`,
		gameID, mode, mode,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Mode, &e.Score, &e.Level, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for a game and mode.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID, mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ? AND (? = '' OR mode = ?)",
		gameID, mode, mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes runs for a game and mode. An empty mode clears all.
func (s *Store) ClearScores(gameID, mode string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs WHERE game_id = ? AND (? = '' OR mode = ?)", gameID, mode, mode)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared rows: %w", err)
	}
	return n, nil
}

// ModeSummary contains aggregated numbers for one mode.
type ModeSummary struct {
	Mode       string
	Runs       int
	HighScore  int
	MaxLevel   int
	TotalTicks int64
	LastPlayed time.Time
}

// Summaries aggregates runs per mode for a game.
func (s *Store) Summaries(gameID string) (map[string]*ModeSummary, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), MAX(max_level), SUM(ticks), MAX(created_at)
		 FROM runs
		 WHERE game_id = ?
		 GROUP BY mode`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summaries: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*ModeSummary)
	for rows.Next() {
		var m ModeSummary
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.Runs, &m.HighScore, &m.MaxLevel, &m.TotalTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		m.LastPlayed = parseTime(lastPlayed)
		out[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}
