package matchgen

import (
	"fmt"
	"strings"

	"github.com/jjamesnt/placar-elite-pro/internal/roster"
)

// MatchDuration is the recorded length of every match, in minutes.
const MatchDuration = 7

const (
	WinnerA = "A"
	WinnerB = "B"
)

// RawMatch is one line of the match sheet.
type RawMatch struct {
	TeamA  string // "Peterson / Italo"
	TeamB  string
	ScoreA int
	ScoreB int
}

type Team struct {
	Score   int             `json:"score"`
	Players []roster.Player `json:"players"`
}

// Record is the data_json payload of a match row.
type Record struct {
	TeamA    Team   `json:"teamA"`
	TeamB    Team   `json:"teamB"`
	Winner   string `json:"winner"`
	Duration int    `json:"duration"`
}

// WinnerOf returns "A" when team A scored strictly more, otherwise "B".
func WinnerOf(scoreA, scoreB int) string {
	if scoreA > scoreB {
		return WinnerA
	}
	return WinnerB
}

// SplitTeam splits a "name / name" string into trimmed names.
func SplitTeam(s string) []string {
	parts := strings.Split(s, "/")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.TrimSpace(p))
	}
	return names
}

// BuildRecord resolves both sides of a match line and derives the winner.
func BuildRecord(r *roster.Roster, m RawMatch) (Record, error) {
	teamA, err := resolveTeam(r, m.TeamA)
	if err != nil {
		return Record{}, fmt.Errorf("team A: %w", err)
	}
	teamB, err := resolveTeam(r, m.TeamB)
	if err != nil {
		return Record{}, fmt.Errorf("team B: %w", err)
	}

	return Record{
		TeamA:    Team{Score: m.ScoreA, Players: teamA},
		TeamB:    Team{Score: m.ScoreB, Players: teamB},
		Winner:   WinnerOf(m.ScoreA, m.ScoreB),
		Duration: MatchDuration,
	}, nil
}

func resolveTeam(r *roster.Roster, s string) ([]roster.Player, error) {
	names := SplitTeam(s)
	players := make([]roster.Player, 0, len(names))
	for _, n := range names {
		p, err := r.Resolve(n)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
