package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jjamesnt/placar-elite-pro/internal/matchgen"
	"github.com/jjamesnt/placar-elite-pro/internal/matchrecorder"
	"github.com/jjamesnt/placar-elite-pro/internal/sqlgen"
	"github.com/jjamesnt/placar-elite-pro/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Failed to load .env: %v", err)
	}

	// Configuration from environment
	outputPath := getEnv("OUTPUT_PATH", "inserts_utf8.sql")
	previewDB := getEnv("PREVIEW_DB", "")
	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Invalid LOG_LEVEL: %v", err)
	}

	rows := matchgen.DefaultMatches()
	entries, err := matchgen.NewDefault().Generate(rows)
	if err != nil {
		log.Fatalf("Failed to build matches: %v", err)
	}

	if err := sqlgen.WriteFile(outputPath, entries); err != nil {
		log.Fatalf("Failed to write inserts: %v", err)
	}
	log.WithFields(logrus.Fields{
		"path":  outputPath,
		"rows":  len(entries),
		"first": matchgen.FormatTimestamp(entries[0].CreatedAt),
		"last":  matchgen.FormatTimestamp(entries[len(entries)-1].CreatedAt),
	}).Info("Wrote INSERT statement")

	if previewDB == "" {
		return
	}
	if err := preview(context.Background(), log, previewDB, entries); err != nil {
		log.Fatalf("Preview failed: %v", err)
	}
}

// preview loads the entries into a local SQLite mirror and logs the ranking
// they produce.
func preview(ctx context.Context, log *logrus.Logger, path string, entries []matchgen.Entry) error {
	db, err := store.NewSQLiteStore(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := matchrecorder.New(db, log).Record(ctx, entries); err != nil {
		return err
	}

	board, err := db.GetLeaderboard(ctx, nil, nil)
	if err != nil {
		return err
	}
	for i, e := range board {
		log.WithFields(logrus.Fields{
			"rank":    i + 1,
			"wins":    e.Wins,
			"losses":  e.Losses,
			"winrate": int(e.WinRate + 0.5),
			"streak":  e.Streak,
		}).Info(e.Name)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
