package matchrecorder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jjamesnt/placar-elite-pro/internal/matchgen"
	"github.com/jjamesnt/placar-elite-pro/internal/sqlgen"
	"github.com/jjamesnt/placar-elite-pro/internal/store"
)

// Recorder saves generated matches to a store.
type Recorder struct {
	store store.Store
	log   logrus.FieldLogger
}

// New creates a new match recorder.
func New(s store.Store, log logrus.FieldLogger) *Recorder {
	return &Recorder{store: s, log: log}
}

// Record inserts every entry, stopping at the first failure.
func (r *Recorder) Record(ctx context.Context, entries []matchgen.Entry) error {
	for i, e := range entries {
		data, err := sqlgen.MarshalRecord(e.Record)
		if err != nil {
			return fmt.Errorf("match %d: %w", i, err)
		}

		match := &store.Match{
			ID:        uuid.New(),
			CreatedAt: e.CreatedAt,
			ArenaID:   e.ArenaID.String(),
			UserID:    e.UserID.String(),
			DataJSON:  data,
		}
		if err := r.store.CreateMatch(ctx, match); err != nil {
			return fmt.Errorf("failed to create match %d: %w", i, err)
		}

		r.log.WithFields(logrus.Fields{
			"match":      match.ID.String()[:8],
			"created_at": matchgen.FormatTimestamp(e.CreatedAt),
			"score":      fmt.Sprintf("%d x %d", e.Record.TeamA.Score, e.Record.TeamB.Score),
			"winner":     e.Record.Winner,
		}).Debug("Recorded match")
	}

	r.log.Infof("Match recorder: recorded %d matches", len(entries))
	return nil
}
