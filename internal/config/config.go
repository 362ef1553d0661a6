// Package config provides the configuration schema and loader for the
// Voxhound detection server.
package config

import "time"

// LogLevel controls log verbosity for the Voxhound server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for Voxhound.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
// Loading starts from [Default], so a file only needs to name the fields it
// changes, and no file at all yields a fully working server.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Limits    LimitsConfig    `yaml:"limits"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Stats     StatsConfig     `yaml:"stats"`
}

// ServerConfig holds network settings for the HTTP server.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g., ":8000").
	ListenAddr string `yaml:"listen_addr"`

	// ReadHeaderTimeout bounds how long the server waits for request headers.
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`

	// ReadTimeout bounds reading an entire request, body included.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout bounds how long a keep-alive connection may sit idle.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds the graceful drain after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxBodyBytes caps the accepted request body size. 0 means unlimited.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// LimitsConfig bounds resource usage of the detection pipeline.
type LimitsConfig struct {
	// MaxConcurrentExtractions caps how many feature extractions may run at
	// once across all in-flight requests. 0 means unlimited.
	MaxConcurrentExtractions int `yaml:"max_concurrent_extractions"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level controls verbosity.
	Level LogLevel `yaml:"level"`
}

// TelemetryConfig holds observability settings.
type TelemetryConfig struct {
	// MetricsEnabled exposes Prometheus metrics on /metrics when true.
	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// StatsConfig tunes the in-memory runtime statistics exposed on /stats.
type StatsConfig struct {
	// Window is the number of recent detection latency samples retained for
	// percentile computation.
	Window int `yaml:"window"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:        ":8000",
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   15 * time.Second,
		},
		Log: LogConfig{
			Level: LogInfo,
		},
		Telemetry: TelemetryConfig{
			MetricsEnabled: true,
		},
		Stats: StatsConfig{
			Window: 512,
		},
	}
}
