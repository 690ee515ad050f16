package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stderr" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	ok := Config{Level: "debug", Format: "json"}
	if err := ok.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	badLevel := Config{Level: "loud", Format: "json"}
	if err := badLevel.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	badFormat := Config{Level: "info", Format: "xml"}
	if err := badFormat.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestWithDevice(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "debug").WithComponent("nso").WithDevice("ncs", "rest")
	log.Debug("sending request", map[string]any{FieldMethod: "GET"})

	out := buf.String()
	for _, want := range []string{`"component":"nso"`, `"device":"ncs"`, `"alias":"rest"`, `"method":"GET"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "info")
	log.Debug("hidden")
	log.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("info message should pass at info level")
	}
}
