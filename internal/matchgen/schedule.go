package matchgen

import "time"

// TimestampLayout renders created_at as Postgres accepts it, e.g.
// "2026-02-19 18:14:00-03".
const TimestampLayout = "2006-01-02 15:04:05-07"

// MatchInterval separates consecutive matches on the same court.
const MatchInterval = 7 * time.Minute

// ArenaZone is the arena's fixed UTC-03 offset.
var ArenaZone = time.FixedZone("UTC-03", -3*60*60)

// Schedule assigns start times to consecutive matches.
type Schedule struct {
	Start    time.Time
	Interval time.Duration
}

// DefaultSchedule starts at 18:14 on 2026-02-19. The session's first match
// (18:07) is already in the database, so the generated rows begin with the
// second one.
func DefaultSchedule() Schedule {
	return Schedule{
		Start:    time.Date(2026, time.February, 19, 18, 14, 0, 0, ArenaZone),
		Interval: MatchInterval,
	}
}

// At returns the start time of the i-th generated match.
func (s Schedule) At(i int) time.Time {
	return s.Start.Add(time.Duration(i) * s.Interval)
}

// FormatTimestamp formats t in the arena zone.
func FormatTimestamp(t time.Time) string {
	return t.In(ArenaZone).Format(TimestampLayout)
}
