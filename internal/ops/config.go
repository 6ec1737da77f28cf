package ops

import (
	"encoding/json"
	"os"

	"github.com/yanun0323/errors"

	"main/internal/fixgen"
	"main/internal/risk"
)

const (
	defaultMaxOrderSize int64 = 1000
	defaultMaxPosition  int64 = 2000
	defaultEventLogPath       = "trading_events.json"
	defaultInvalidEvery       = 4
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Risk      *risk.Config   `json:"risk"`
	Generator *fixgen.Config `json:"generator"`
	EventLog  EventLogConfig `json:"eventLog"`
	Postgres  PostgresConfig `json:"postgres"`
}

// EventLogConfig controls where the JSON event log is flushed.
type EventLogConfig struct {
	Path string `json:"path"`
}

// PostgresConfig enables the optional Postgres event sink.
type PostgresConfig struct {
	Enabled  bool   `json:"enabled"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	SSLMode  string `json:"sslMode"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Risk         risk.Config
	Generator    fixgen.Config
	EventLogPath string
	Postgres     PostgresConfig
}

// Default returns the reference limits and paths.
func Default() Loaded {
	return Loaded{
		Risk: risk.Config{
			MaxOrderSize: defaultMaxOrderSize,
			MaxPosition:  defaultMaxPosition,
		},
		Generator:    fixgen.Config{InvalidEvery: defaultInvalidEvery},
		EventLogPath: defaultEventLogPath,
	}
}

// Load reads a JSON config file and resolves defaults. An empty path yields
// the default configuration.
func Load(path string) (Loaded, error) {
	loaded := Default()
	if path == "" {
		return loaded, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "read config")
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrap(err, "parse config")
	}

	if cfg.Risk != nil {
		loaded.Risk = *cfg.Risk
	}
	if cfg.Generator != nil {
		loaded.Generator = *cfg.Generator
	}
	if cfg.EventLog.Path != "" {
		loaded.EventLogPath = cfg.EventLog.Path
	}
	loaded.Postgres = cfg.Postgres

	if err := loaded.Risk.Validate(); err != nil {
		return Loaded{}, errors.Wrap(err, "validate risk config")
	}
	return loaded, nil
}
