package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "json", "warn")

	log.Info().Msg("hidden")
	log.Warn().Str("code", "99490").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec["message"] != "shown" || rec["code"] != "99490" || rec["level"] != "warn" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestNew_BadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "json", "chatty")

	log.Debug().Msg("debug")
	log.Info().Msg("info")

	out := buf.String()
	if strings.Contains(out, `"debug"`) {
		t.Errorf("debug line emitted at default level: %q", out)
	}
	if !strings.Contains(out, `"info"`) {
		t.Errorf("info line missing: %q", out)
	}
}

func TestNew_TextIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", "info")
	log.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Fatalf("message missing: %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("text format produced JSON: %q", out)
	}
}
