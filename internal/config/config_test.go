package config

import (
	"log/slog"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(nil) = %+v, want %+v", cfg, Default())
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-width", "900", "-seed", "7", "-track", "demo.mp3", "-log-level", "debug"})
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if cfg.Width != 900 || cfg.Seed != 7 || cfg.Track != "demo.mp3" {
		t.Errorf("Parse = %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"-width", "0"}},
		{"height under navbar", []string{"-height", "90"}},
		{"bad tps", []string{"-tps", "-1"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"unknown flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args); err == nil {
				t.Errorf("Parse(%v) error = nil, want error", tt.args)
			}
		})
	}
}

func TestOffsetsAreIndependent(t *testing.T) {
	if ClipNavbarOffset == AnchorScrollOffset {
		t.Errorf("clip offset and anchor offset should be tuned separately, both %d", ClipNavbarOffset)
	}
}
