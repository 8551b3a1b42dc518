package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is how player timestamps appear in the match payload.
const TimeLayout = "2006-01-02T15:04:05.000000-07:00"

// ErrUnknownPlayer is returned when a name has no roster entry.
var ErrUnknownPlayer = errors.New("unknown player")

type Player struct {
	ID        uuid.UUID
	Name      string
	UserID    uuid.UUID
	ArenaID   uuid.UUID
	CreatedAt time.Time
	DeletedAt *time.Time
}

// playerJSON is the stored shape of a player inside data_json.
type playerJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserID    uuid.UUID `json:"user_id"`
	ArenaID   uuid.UUID `json:"arena_id"`
	CreatedAt string    `json:"created_at"`
	DeletedAt *string   `json:"deleted_at"`
}

func (p Player) MarshalJSON() ([]byte, error) {
	out := playerJSON{
		ID:        p.ID,
		Name:      p.Name,
		UserID:    p.UserID,
		ArenaID:   p.ArenaID,
		CreatedAt: p.CreatedAt.Format(TimeLayout),
	}
	if p.DeletedAt != nil {
		deleted := p.DeletedAt.Format(TimeLayout)
		out.DeletedAt = &deleted
	}
	return json.Marshal(out)
}

func (p *Player) UnmarshalJSON(data []byte) error {
	var in playerJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	createdAt, err := time.Parse(TimeLayout, in.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to parse created_at: %w", err)
	}
	*p = Player{
		ID:        in.ID,
		Name:      in.Name,
		UserID:    in.UserID,
		ArenaID:   in.ArenaID,
		CreatedAt: createdAt,
	}
	if in.DeletedAt != nil {
		deletedAt, err := time.Parse(TimeLayout, *in.DeletedAt)
		if err != nil {
			return fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		p.DeletedAt = &deletedAt
	}
	return nil
}

// NameMap maps a free-text spelling to a canonical roster key.
type NameMap map[string]string

// Roster resolves player names from match sheets.
type Roster struct {
	players map[string]Player
	names   NameMap
}

// New creates a roster from players keyed by canonical key and the
// spellings that point at those keys.
func New(players map[string]Player, names NameMap) *Roster {
	return &Roster{players: players, names: names}
}

// Resolve looks up the player a written name refers to.
func (r *Roster) Resolve(name string) (Player, error) {
	key := strings.TrimSpace(name)
	// Match sheets mix the accented and plain spelling.
	if key == "João" {
		key = "Joao"
	}

	canonical, ok := r.names[key]
	if !ok {
		return Player{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	p, ok := r.players[canonical]
	if !ok {
		return Player{}, fmt.Errorf("%w: %q maps to missing key %q", ErrUnknownPlayer, name, canonical)
	}
	return p, nil
}

// Names returns every known spelling, sorted.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.names))
	for n := range r.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of distinct players.
func (r *Roster) Len() int {
	return len(r.players)
}
