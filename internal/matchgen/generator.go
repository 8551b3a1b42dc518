package matchgen

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jjamesnt/placar-elite-pro/internal/roster"
)

// Entry is one row of the generated INSERT.
type Entry struct {
	CreatedAt time.Time
	ArenaID   uuid.UUID
	UserID    uuid.UUID
	Record    Record
}

// Generator turns match sheet lines into rows.
type Generator struct {
	Roster   *roster.Roster
	Schedule Schedule
	ArenaID  uuid.UUID
	UserID   uuid.UUID
}

// NewDefault returns a generator for the default arena, owner and schedule.
func NewDefault() *Generator {
	return &Generator{
		Roster:   roster.Default(),
		Schedule: DefaultSchedule(),
		ArenaID:  roster.DefaultArenaID,
		UserID:   roster.DefaultUserID,
	}
}

// Generate builds one entry per line. The first unresolved line aborts the run.
func (g *Generator) Generate(rows []RawMatch) ([]Entry, error) {
	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		rec, err := BuildRecord(g.Roster, row)
		if err != nil {
			return nil, fmt.Errorf("match %d (%s vs %s): %w", i, row.TeamA, row.TeamB, err)
		}
		entries = append(entries, Entry{
			CreatedAt: g.Schedule.At(i),
			ArenaID:   g.ArenaID,
			UserID:    g.UserID,
			Record:    rec,
		})
	}
	return entries, nil
}
