package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testArena = "08acfc87-6124-4be3-8b7b-63efed17617e"
	testUser  = "d38634ca-0403-4678-ac1d-beb3a5d5f0fb"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func matchJSON(a1, a2, b1, b2, winner string) string {
	p := func(id string) string { return `{"id":"` + id + `","name":"` + id + `"}` }
	return `{"teamA":{"score":0,"players":[` + p(a1) + `,` + p(a2) + `]},` +
		`"teamB":{"score":0,"players":[` + p(b1) + `,` + p(b2) + `]},` +
		`"winner":"` + winner + `","duration":7}`
}

func addMatch(t *testing.T, s *SQLiteStore, at time.Time, data string) {
	t.Helper()
	err := s.CreateMatch(context.Background(), &Match{
		ID:        uuid.New(),
		CreatedAt: at,
		ArenaID:   testArena,
		UserID:    testUser,
		DataJSON:  data,
	})
	require.NoError(t, err)
}

func TestCreateAndListMatches(t *testing.T) {
	s := newTestStore(t)
	zone := time.FixedZone("UTC-03", -3*60*60)
	base := time.Date(2026, time.February, 19, 18, 14, 0, 0, zone)

	// Inserted out of order on purpose.
	addMatch(t, s, base.Add(7*time.Minute), matchJSON("a", "b", "c", "d", "B"))
	addMatch(t, s, base, matchJSON("a", "b", "c", "d", "A"))

	matches, err := s.ListMatches(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.True(t, matches[0].CreatedAt.Equal(base))
	assert.True(t, matches[1].CreatedAt.Equal(base.Add(7*time.Minute)))
	assert.Equal(t, testArena, matches[0].ArenaID)
	assert.Equal(t, testUser, matches[0].UserID)
	assert.NotEqual(t, uuid.Nil, matches[0].ID)

	limited, err := s.ListMatches(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCreateMatch_RejectsInvalidJSON(t *testing.T) {
	s := newTestStore(t)
	err := s.CreateMatch(context.Background(), &Match{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		ArenaID:   testArena,
		UserID:    testUser,
		DataJSON:  `{"teamA":`,
	})
	assert.Error(t, err)
}

func TestGetLeaderboard(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, time.February, 19, 21, 14, 0, 0, time.UTC)

	addMatch(t, s, base, matchJSON("ana", "beto", "carla", "dani", "A"))
	addMatch(t, s, base.Add(7*time.Minute), matchJSON("ana", "carla", "beto", "dani", "A"))
	addMatch(t, s, base.Add(14*time.Minute), matchJSON("ana", "dani", "beto", "carla", "B"))

	entries, err := s.GetLeaderboard(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	byName := make(map[string]LeaderboardEntry)
	total := 0
	for _, e := range entries {
		byName[e.Name] = e
		total += e.Total
	}
	assert.Equal(t, 12, total)

	ana := byName["ana"]
	assert.Equal(t, 2, ana.Wins)
	assert.Equal(t, 1, ana.Losses)
	assert.Equal(t, -1, ana.Streak)
	assert.InDelta(t, 66.67, ana.WinRate, 0.01)

	beto := byName["beto"]
	assert.Equal(t, 2, beto.Wins)
	assert.Equal(t, 1, beto.Streak)

	carla := byName["carla"]
	assert.Equal(t, 2, carla.Wins)
	assert.Equal(t, 2, carla.Streak)

	dani := byName["dani"]
	assert.Equal(t, 0, dani.Wins)
	assert.Equal(t, 3, dani.Losses)
	assert.Equal(t, -3, dani.Streak)
	assert.Zero(t, dani.WinRate)

	// Ties on wins and rate fall back to name order.
	assert.Equal(t, "ana", entries[0].Name)
	assert.Equal(t, "beto", entries[1].Name)
	assert.Equal(t, 2, entries[2].Wins)
	assert.Equal(t, "dani", entries[3].Name)
}

func TestGetLeaderboard_DateRange(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, time.February, 19, 21, 14, 0, 0, time.UTC)

	addMatch(t, s, base, matchJSON("ana", "beto", "carla", "dani", "A"))
	addMatch(t, s, base.Add(time.Hour), matchJSON("ana", "beto", "carla", "dani", "B"))

	start := base.Add(30 * time.Minute)
	entries, err := s.GetLeaderboard(context.Background(), &start, nil)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Equal(t, 1, e.Total, e.Name)
	}
	assert.Equal(t, "carla", entries[0].Name)

	end := base.Add(-time.Minute)
	entries, err = s.GetLeaderboard(context.Background(), nil, &end)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCalculateStreak(t *testing.T) {
	assert.Equal(t, 0, calculateStreak(nil))
	assert.Equal(t, 3, calculateStreak([]int{-1, 1, 1, 1}))
	assert.Equal(t, -2, calculateStreak([]int{1, 1, -1, -1}))
	assert.Equal(t, 1, calculateStreak([]int{-1, 1}))
}
