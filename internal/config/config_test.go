package config_test

import (
	"testing"

	"github.com/mvasanth/voxhound/internal/config"
)

func TestLogLevel_IsValid(t *testing.T) {
	t.Parallel()
	valid := []config.LogLevel{config.LogDebug, config.LogInfo, config.LogWarn, config.LogError}
	for _, l := range valid {
		if !l.IsValid() {
			t.Errorf("LogLevel(%q).IsValid() = false, want true", l)
		}
	}
	invalid := []config.LogLevel{"", "trace", "INFO", "verbose"}
	for _, l := range invalid {
		if l.IsValid() {
			t.Errorf("LogLevel(%q).IsValid() = true, want false", l)
		}
	}
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("Validate(Default()) = %v, want nil", err)
	}
}

func TestDefault_Values(t *testing.T) {
	t.Parallel()
	cfg := config.Default()

	if got := cfg.Server.ListenAddr; got != ":8000" {
		t.Errorf("Server.ListenAddr = %q, want %q", got, ":8000")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		t.Errorf("Server.ShutdownTimeout = %v, want > 0", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.MaxBodyBytes != 0 {
		t.Errorf("Server.MaxBodyBytes = %d, want 0 (unlimited)", cfg.Server.MaxBodyBytes)
	}
	if cfg.Limits.MaxConcurrentExtractions != 0 {
		t.Errorf("Limits.MaxConcurrentExtractions = %d, want 0 (unlimited)", cfg.Limits.MaxConcurrentExtractions)
	}
	if got := cfg.Log.Level; got != config.LogInfo {
		t.Errorf("Log.Level = %q, want %q", got, config.LogInfo)
	}
	if !cfg.Telemetry.MetricsEnabled {
		t.Error("Telemetry.MetricsEnabled = false, want true")
	}
	if cfg.Stats.Window < 1 {
		t.Errorf("Stats.Window = %d, want >= 1", cfg.Stats.Window)
	}
}
