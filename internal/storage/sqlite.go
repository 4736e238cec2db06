// Package storage keeps the round history of a play session in SQLite.
// The database lives in memory and disappears with the process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store is the session's round history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Round is one finished game, from start or restart to game over.
type Round struct {
	ID           string
	GameID       string
	Maze         string
	Score        int
	SpeedLevel   int
	MazesCleared int
	Ticks        int
	Seed         int64
	EndedAt      time.Time
}

// OpenMemory creates an empty in-memory store.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			maze TEXT NOT NULL,
			score INTEGER NOT NULL,
			speed_level INTEGER NOT NULL DEFAULT 0,
			mazes_cleared INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database and drops the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round. A missing ID is generated and a
// zero EndedAt is set to now. It returns the round ID.
func (s *Store) SaveRound(r Round) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, game_id, maze, score, speed_level, mazes_cleared, ticks, seed, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Maze, r.Score, r.SpeedLevel, r.MazesCleared, r.Ticks, r.Seed, r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.ID, nil
}

// RecentRounds returns up to limit rounds for gameID, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]Round, error) {
	return s.queryRounds(`WHERE game_id = ? ORDER BY seq DESC LIMIT ?`, gameID, limitOrDefault(limit))
}

// TopRounds returns up to limit rounds for gameID, best score first.
// Ties go to the earlier round.
func (s *Store) TopRounds(gameID string, limit int) ([]Round, error) {
	return s.queryRounds(`WHERE game_id = ? ORDER BY score DESC, seq ASC LIMIT ?`, gameID, limitOrDefault(limit))
}

// BestScore returns the highest score for gameID, or 0 without rounds.
func (s *Store) BestScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// RoundCount returns the number of rounds recorded for gameID.
func (s *Store) RoundCount(gameID string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM rounds WHERE game_id = ?", gameID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}

// queryRounds runs a SELECT over rounds with the given tail clause.
func (s *Store) queryRounds(tail string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, maze, score, speed_level, mazes_cleared, ticks, seed, ended_at
		 FROM rounds `+tail,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var endedAt int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Maze, &r.Score, &r.SpeedLevel,
			&r.MazesCleared, &r.Ticks, &r.Seed, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = time.UnixMilli(endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}
