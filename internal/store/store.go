package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Match mirrors a row of the production matches table.
type Match struct {
	ID        uuid.UUID
	CreatedAt time.Time
	ArenaID   string
	UserID    string
	DataJSON  string
}

type Store interface {
	CreateMatch(ctx context.Context, match *Match) error
	ListMatches(ctx context.Context, limit int) ([]Match, error)

	GetLeaderboard(ctx context.Context, startDate, endDate *time.Time) ([]LeaderboardEntry, error)

	Close() error
}

type LeaderboardEntry struct {
	PlayerID string
	Name     string
	Wins     int
	Losses   int
	Total    int
	WinRate  float64
	Streak   int // Positive = win streak, negative = loss streak
}
