// Package config loads the engine configuration from a YAML file with
// environment variable expansion and sane defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/haptitalk/feedback-engine/pkg/policy"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`

	Database struct {
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
	} `yaml:"database"`

	Redis struct {
		Addr           string        `yaml:"addr"`
		Password       string        `yaml:"password"`
		DB             int           `yaml:"db"`
		PublishTimeout time.Duration `yaml:"publish_timeout"`
		MarkerTTL      time.Duration `yaml:"marker_ttl"`
	} `yaml:"redis"`

	Engine EngineConfig `yaml:"engine"`
}

// EngineConfig holds decision cascade tunables
type EngineConfig struct {
	RetryAttempts int           `yaml:"retry_attempts"` // settings lookup retries
	AppendTimeout time.Duration `yaml:"append_timeout"` // async history append budget
	MaxContextLen int           `yaml:"max_context_len"`

	PaceThresholdWPM    float64 `yaml:"pace_threshold_wpm"`
	PaceConfidenceSpan  float64 `yaml:"pace_confidence_span"`
	ExcellenceThreshold float64 `yaml:"excellence_threshold"`
	DeficiencyThreshold float64 `yaml:"deficiency_threshold"`
	FillerRatio         float64 `yaml:"filler_ratio"`
	FillerMinCount      int     `yaml:"filler_min_count"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedback.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for redis
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.PublishTimeout == 0 {
		cfg.Redis.PublishTimeout = 2 * time.Second
	}

	// set defaults for engine
	if cfg.Engine.RetryAttempts == 0 {
		cfg.Engine.RetryAttempts = 3
	}
	if cfg.Engine.AppendTimeout == 0 {
		cfg.Engine.AppendTimeout = 5 * time.Second
	}
	if cfg.Engine.MaxContextLen == 0 {
		cfg.Engine.MaxContextLen = 200
	}
	def := policy.DefaultConfig()
	if cfg.Engine.PaceThresholdWPM == 0 {
		cfg.Engine.PaceThresholdWPM = def.PaceThresholdWPM
	}
	if cfg.Engine.PaceConfidenceSpan == 0 {
		cfg.Engine.PaceConfidenceSpan = def.PaceConfidenceSpan
	}
	if cfg.Engine.ExcellenceThreshold == 0 {
		cfg.Engine.ExcellenceThreshold = def.ExcellenceThreshold
	}
	if cfg.Engine.DeficiencyThreshold == 0 {
		cfg.Engine.DeficiencyThreshold = def.DeficiencyThreshold
	}
	if cfg.Engine.FillerRatio == 0 {
		cfg.Engine.FillerRatio = def.FillerRatio
	}
	if cfg.Engine.FillerMinCount == 0 {
		cfg.Engine.FillerMinCount = def.FillerMinCount
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate engine config
	if cfg.Engine.PaceThresholdWPM <= 0 {
		return fmt.Errorf("engine.pace_threshold_wpm must be positive")
	}
	if cfg.Engine.ExcellenceThreshold <= cfg.Engine.DeficiencyThreshold {
		return fmt.Errorf("engine.excellence_threshold must be above deficiency_threshold")
	}
	if cfg.Engine.DeficiencyThreshold < 0 || cfg.Engine.DeficiencyThreshold > 1 {
		return fmt.Errorf("engine.deficiency_threshold must be between 0 and 1")
	}
	if cfg.Engine.FillerRatio < 0 || cfg.Engine.FillerRatio > 1 {
		return fmt.Errorf("engine.filler_ratio must be between 0 and 1")
	}

	return nil
}

// PolicyConfig converts the engine section to cascade thresholds
func (c *Config) PolicyConfig() policy.Config {
	return policy.Config{
		PaceThresholdWPM:    c.Engine.PaceThresholdWPM,
		PaceConfidenceSpan:  c.Engine.PaceConfidenceSpan,
		ExcellenceThreshold: c.Engine.ExcellenceThreshold,
		DeficiencyThreshold: c.Engine.DeficiencyThreshold,
		FillerRatio:         c.Engine.FillerRatio,
		FillerMinCount:      c.Engine.FillerMinCount,
	}
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
