package matchgen

// DefaultMatches returns matches 2 to 17 of the 2026-02-19 session.
func DefaultMatches() []RawMatch {
	return []RawMatch{
		{"Peterson / Italo", "Fernando / João", 2, 3},
		{"Luiz / Fernando", "Lucas / João", 8, 10},
		{"Lucas / Italo", "João / Peterson", 10, 6},
		{"Luiz / Lucas", "Fernando / Italo", 10, 5},
		{"Lucas / João", "Luiz / Peterson", 3, 10},
		{"Fernando / Peterson", "Luiz / Italo", 2, 3},
		{"Pedro / Italo", "Luiz / Lucas", 2, 3},
		{"Luiz / Peterson", "Lucas / Fernando", 0, 5},
		{"Italo / Fernando", "Lucas / João", 3, 0},
		{"Fernando / Pedro", "Luiz / Italo", 10, 7},
		{"Fernando / Peterson", "Pedro / João", 0, 3},
		{"Lucas / Pedrinho", "Italo / João", 7, 10},
		{"Italo / Peterson", "Luiz / João", 3, 10},
		{"João / Fernando", "Luiz / Lucas", 7, 10},
		{"João / Pedrinho", "Luiz / Italo", 2, 3},
		{"Pedro / Luiz", "Italo / Lucas", 10, 6},
	}
}
