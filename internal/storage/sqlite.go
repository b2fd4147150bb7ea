// Package storage provides SQLite-based persistence for level results and
// the power-up inventory.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ResultEntry represents a single finished session record.
type ResultEntry struct {
	ID        int64
	LevelID   string
	Score     int
	Stars     int
	Won       bool
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID   string
	Played    int
	Wins      int
	BestScore int
	BestStars int
	AvgScore  float64
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			stars INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_level_id ON results(level_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(level_id, score DESC);

		CREATE TABLE IF NOT EXISTS inventory (
			power TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0
		);
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

// SaveResult records a finished session for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(levelID string, score, stars int, won bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (level_id, score, stars, won) VALUES (?, ?, ?, ?)",
		levelID, score, stars, won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopResults retrieves the top N results for the given level.
// Results are ordered by score descending.
func (s *Store) TopResults(levelID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, score, stars, won, created_at
		 FROM results
		 WHERE level_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		e, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestResult returns the highest-scoring result for the given level, or nil
// if the level has never been played.
func (s *Store) BestResult(levelID string) (*ResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, score, stars, won, created_at
		 FROM results
		 WHERE level_id = ?
		 ORDER BY score DESC
		 LIMIT 1`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best result: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	e, err := scanResult(rows)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ClearResults deletes all results for the given level.
func (s *Store) ClearResults(levelID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(MAX(stars), 0), COALESCE(AVG(score), 0)
		 FROM results WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Played, &stats.Wins, &stats.BestScore, &stats.BestStars, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	return stats, nil
}

// GetAllLevelStats retrieves statistics for every level that has been played.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), COALESCE(SUM(won), 0), MAX(score), MAX(stars), AVG(score)
		 FROM results
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		if err := rows.Scan(&st.LevelID, &st.Played, &st.Wins, &st.BestScore, &st.BestStars, &st.AvgScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// SaveInventory replaces the persisted power-up counts with the given
// inventory. Kinds absent from the inventory are removed.
func (s *Store) SaveInventory(inv match3.Inventory) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM inventory"); err != nil {
		return fmt.Errorf("storage: cannot clear inventory: %w", err)
	}
	for kind, count := range inv {
		if count <= 0 {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO inventory (power, count) VALUES (?, ?)",
			kind.String(), count,
		); err != nil {
			return fmt.Errorf("storage: cannot save inventory: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit inventory: %w", err)
	}
	return nil
}

// LoadInventory retrieves the persisted power-up counts. Rows with unknown
// power names are skipped.
func (s *Store) LoadInventory() (match3.Inventory, error) {
	rows, err := s.db.Query("SELECT power, count FROM inventory")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inventory: %w", err)
	}
	defer rows.Close()

	inv := make(match3.Inventory)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan inventory row: %w", err)
		}
		kind, err := match3.ParsePowerType(name)
		if err != nil || count <= 0 {
			continue
		}
		inv[kind] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return inv, nil
}

// scanResult reads one results row, tolerating both time.Time and string
// datetime representations from the driver.
func scanResult(rows *sql.Rows) (ResultEntry, error) {
	var e ResultEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.LevelID, &e.Score, &e.Stars, &e.Won, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
