package roster

import (
	"time"

	"github.com/google/uuid"
)

// Owner of every player and match in the default data set.
var (
	DefaultArenaID = uuid.MustParse("08acfc87-6124-4be3-8b7b-63efed17617e")
	DefaultUserID  = uuid.MustParse("d38634ca-0403-4678-ac1d-beb3a5d5f0fb")
)

// DefaultNames lists every spelling used on the match sheets.
var DefaultNames = NameMap{
	"Peterson": "Peterson",
	"Italo":    "Italo",
	"Fernando": "Fernando",
	"Joao":     "Joao",
	"João":     "Joao",
	"Luiz":     "Luiz",
	"Lucas":    "Lucas",
	"Pedrinho": "Pedrinho",
	"Pedro":    "Pedro",
}

// Default returns the arena's registered players.
func Default() *Roster {
	players := map[string]Player{
		"Peterson": newPlayer("704c0c61-ea43-4749-b92b-4de34b24fb55", "Peterson", "2026-02-05T11:22:51.882537+00:00"),
		"Fernando": newPlayer("eded6302-0e95-4abc-92f5-b25483fb82b2", "Fernando", "2026-02-05T11:22:56.897455+00:00"),
		"Pedrinho": newPlayer("089c5655-7381-4664-84be-1010998b7bc9", "Pedrinho", "2026-02-05T11:23:01.735167+00:00"),
		"Italo":    newPlayer("ff5a5231-cabd-4d1f-8600-fa32695be7f9", "Italo", "2026-02-05T11:23:06.436896+00:00"),
		"Luiz":     newPlayer("a9ea67c2-5a5f-4275-b92d-be0e1ce30e98", "Luiz", "2026-02-05T11:23:09.783548+00:00"),
		"Lucas":    newPlayer("8ada090b-f0bb-46a4-a8f7-54f286ebf3a7", "Lucas", "2026-02-05T11:23:23.564502+00:00"),
		"Joao":     newPlayer("65c0d99d-4d88-435a-8da9-acb8124bd24c", "João", "2026-02-24T14:42:18.578839+00:00"),
		"Pedro":    newPlayer("a31b17e2-18fa-4229-adae-ff75bde11db4", "Pedro", "2026-02-24T15:01:48.541057+00:00"),
	}

	names := make(NameMap, len(DefaultNames))
	for k, v := range DefaultNames {
		names[k] = v
	}
	return New(players, names)
}

func newPlayer(id, name, createdAt string) Player {
	t, err := time.Parse(TimeLayout, createdAt)
	if err != nil {
		panic(err)
	}
	return Player{
		ID:        uuid.MustParse(id),
		Name:      name,
		UserID:    DefaultUserID,
		ArenaID:   DefaultArenaID,
		CreatedAt: t,
	}
}
