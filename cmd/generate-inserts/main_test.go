package main

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjamesnt/placar-elite-pro/internal/matchgen"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("OUTPUT_PATH", "")
	assert.Equal(t, "inserts_utf8.sql", getEnv("OUTPUT_PATH", "inserts_utf8.sql"))

	t.Setenv("OUTPUT_PATH", "/tmp/out.sql")
	assert.Equal(t, "/tmp/out.sql", getEnv("OUTPUT_PATH", "inserts_utf8.sql"))
}

func TestPreview_LogsRanking(t *testing.T) {
	entries, err := matchgen.NewDefault().Generate(matchgen.DefaultMatches())
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	require.NoError(t, preview(context.Background(), logger, ":memory:", entries))

	logs := hook.AllEntries()
	// Recorder summary plus one line per player.
	require.Len(t, logs, 9)
	assert.Equal(t, "Luiz", logs[1].Message)
	assert.Equal(t, 1, logs[1].Data["rank"])
	assert.Equal(t, "Pedrinho", logs[8].Message)
}
