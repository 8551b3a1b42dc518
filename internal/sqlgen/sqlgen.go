package sqlgen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jjamesnt/placar-elite-pro/internal/matchgen"
)

const insertHeader = "INSERT INTO matches (created_at, arena_id, user_id, data_json) VALUES\n"

// ErrNoEntries is returned when there is nothing to insert.
var ErrNoEntries = errors.New("no entries to insert")

// MarshalRecord encodes a match payload as JSON, keeping non-ASCII
// characters as they are.
func MarshalRecord(rec matchgen.Record) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// QuoteLiteral escapes s for use inside a single-quoted SQL string.
func QuoteLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// FormatTuple renders one VALUES tuple.
func FormatTuple(e matchgen.Entry) (string, error) {
	data, err := MarshalRecord(e.Record)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("('%s', '%s', '%s', '%s'::jsonb)",
		matchgen.FormatTimestamp(e.CreatedAt), e.ArenaID, e.UserID, QuoteLiteral(data)), nil
}

// Write emits a single INSERT statement covering all entries.
func Write(w io.Writer, entries []matchgen.Entry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}

	values := make([]string, 0, len(entries))
	for i, e := range entries {
		tuple, err := FormatTuple(e)
		if err != nil {
			return fmt.Errorf("match %d: %w", i, err)
		}
		values = append(values, tuple)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(insertHeader)
	bw.WriteString(strings.Join(values, ",\n"))
	bw.WriteString(";\n")
	return bw.Flush()
}

// WriteFile writes the INSERT statement to path as UTF-8 text.
func WriteFile(path string, entries []matchgen.Entry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := Write(f, entries); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
