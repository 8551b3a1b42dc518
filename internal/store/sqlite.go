package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL,
			arena_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			data_json TEXT NOT NULL CHECK (json_valid(data_json))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_arena ON matches(arena_id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateMatch inserts a match row.
func (s *SQLiteStore) CreateMatch(ctx context.Context, match *Match) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO matches (id, created_at, arena_id, user_id, data_json)
		 VALUES (?, ?, ?, ?, ?)`,
		match.ID.String(), match.CreatedAt.UTC(), match.ArenaID, match.UserID, match.DataJSON,
	)
	return err
}

// ListMatches returns matches oldest first. A limit <= 0 returns all of them.
func (s *SQLiteStore) ListMatches(ctx context.Context, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, arena_id, user_id, data_json
		 FROM matches
		 ORDER BY created_at ASC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var id string
		if err := rows.Scan(&id, &m.CreatedAt, &m.ArenaID, &m.UserID, &m.DataJSON); err != nil {
			return nil, err
		}
		if err := m.ID.UnmarshalText([]byte(id)); err != nil {
			return nil, fmt.Errorf("failed to parse match id %q: %w", id, err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// matchData is the subset of data_json the leaderboard reads.
type matchData struct {
	TeamA  teamData `json:"teamA"`
	TeamB  teamData `json:"teamB"`
	Winner string   `json:"winner"`
}

type teamData struct {
	Players []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"players"`
}

// GetLeaderboard retrieves player stats for the leaderboard.
func (s *SQLiteStore) GetLeaderboard(ctx context.Context, startDate, endDate *time.Time) ([]LeaderboardEntry, error) {
	matches, err := s.ListMatches(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	byPlayer := make(map[string]*LeaderboardEntry)
	// Results per player, oldest first. 1 = win, -1 = loss.
	results := make(map[string][]int)

	for _, m := range matches {
		if startDate != nil && m.CreatedAt.Before(*startDate) {
			continue
		}
		if endDate != nil && m.CreatedAt.After(*endDate) {
			continue
		}

		var data matchData
		if err := json.Unmarshal([]byte(m.DataJSON), &data); err != nil {
			return nil, fmt.Errorf("failed to decode match %s: %w", m.ID, err)
		}

		for _, side := range []struct {
			team teamData
			tag  string
		}{{data.TeamA, "A"}, {data.TeamB, "B"}} {
			for _, p := range side.team.Players {
				e, ok := byPlayer[p.ID]
				if !ok {
					e = &LeaderboardEntry{PlayerID: p.ID, Name: p.Name}
					byPlayer[p.ID] = e
				}
				e.Total++
				if data.Winner == side.tag {
					e.Wins++
					results[p.ID] = append(results[p.ID], 1)
				} else {
					e.Losses++
					results[p.ID] = append(results[p.ID], -1)
				}
			}
		}
	}

	entries := make([]LeaderboardEntry, 0, len(byPlayer))
	for id, e := range byPlayer {
		if e.Name == "" {
			e.Name = id
		}
		if e.Total > 0 {
			e.WinRate = float64(e.Wins) / float64(e.Total) * 100
		}
		e.Streak = calculateStreak(results[id])
		entries = append(entries, *e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		if entries[i].WinRate != entries[j].WinRate {
			return entries[i].WinRate > entries[j].WinRate
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// calculateStreak returns the current streak from results ordered oldest first.
func calculateStreak(results []int) int {
	streak := 0
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		if streak != 0 && (r > 0) != (streak > 0) {
			break // Streak ended
		}
		streak += r
	}
	return streak
}
