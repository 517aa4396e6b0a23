package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "wowgen.log")

	closer, err := Init(Config{Level: "debug", File: p})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	l := Component("codegen")
	l.Debug().Str("unit", "login/all").Msg("generated")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), b)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["component"] != "codegen" || entry["unit"] != "login/all" || entry["level"] != "debug" {
		t.Errorf("got %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("missing timestamp")
	}
}

func TestInitLevel(t *testing.T) {
	tcs := []struct {
		level string
		want  zerolog.Level
	}{
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	for _, tc := range tcs {
		if _, err := Init(Config{Level: tc.level}); err != nil {
			t.Fatal(err)
		}
		if got := zerolog.GlobalLevel(); got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.level, got, tc.want)
		}
	}
}
