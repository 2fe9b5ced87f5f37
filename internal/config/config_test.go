package config

import "testing"

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("logging defaults = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestDefaultSolveConfig(t *testing.T) {
	cfg := DefaultSolveConfig()
	if cfg.Heuristic != "lpt" {
		t.Errorf("Heuristic = %q, want lpt", cfg.Heuristic)
	}
	if cfg.ColorMode != "auto" {
		t.Errorf("ColorMode = %q, want auto", cfg.ColorMode)
	}
	if cfg.Chart {
		t.Error("Chart defaults to true, want false")
	}
}
