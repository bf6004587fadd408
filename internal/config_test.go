package internal

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "log_level: debug\nmax_steps: 100\ncolor: false\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.MaxSteps != 100 || cfg.Color == nil || *cfg.Color {
		t.Errorf("unexpected config %+v", cfg)
	}
	if level, _ := cfg.Level(); level != logrus.DebugLevel {
		t.Errorf("expected debug, got %s", level)
	}

	cfg, err = LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "info" || cfg.Color != nil || cfg.MaxSteps != 0 {
		t.Errorf("empty file should give the defaults, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, content := range []string{
		"verbose: true\n",
		"log_level: loud\n",
		"max_steps: -1\n",
		"max_steps: [1\n",
	} {
		if _, err := LoadConfig(writeConfig(t, content)); err == nil {
			t.Errorf("expected %q to be rejected", content)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestConfigLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trace = true
	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !logger.IsLevelEnabled(logrus.TraceLevel) {
		t.Error("trace should enable the trace level")
	}
	logger.Trace("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("unexpected log output %q", buf.String())
	}

	cfg = &Config{LogLevel: "nope"}
	if _, err := cfg.NewLogger(io.Discard); err == nil {
		t.Error("invalid level should fail")
	}
}

func TestLineReader(t *testing.T) {
	r := NewLineReader(strings.NewReader("a\nb\r\n\nc"))
	for _, expected := range []string{"a", "b", "", "c"} {
		line, err := r.ReadLine()
		if err != nil || line != expected {
			t.Errorf("expected %q, got %q %v", expected, line, err)
		}
	}
	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}
