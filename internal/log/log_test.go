package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, "", "info"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(Close)

	Info("hello")
	Debug("hidden")
	Errorf("bad %d", 42)

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("missing info line: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "bad 42") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestInitToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cymatics.log")
	if err := Init(nil, path, "debug"); err != nil {
		t.Fatal(err)
	}
	Tone("tone_started", 1400, 44100, 0.1, 4410)
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, "tone_started") || !strings.Contains(s, "freq_hz=1400") {
		t.Errorf("unexpected log contents: %q", s)
	}
}

func TestInitBadLevel(t *testing.T) {
	if err := Init(&bytes.Buffer{}, "", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNoopBeforeInit(t *testing.T) {
	Close()
	// Must not panic with no logger configured.
	Info("x")
	Warn("x")
	Tone("x", 1, 1, 1, 1)
}
