package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigure_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	lgr.Info().Msg("dropped")
	lgr.Warn().Str("collegecode", "CCS").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "kept" || entry["collegecode"] != "CCS" || entry["service"] != "ssis" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "verbose", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", zerolog.GlobalLevel())
	}
}
