package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	ASRBaseURL          string   `yaml:"asr_base_url"`
	UploadTimeoutMin    int      `yaml:"upload_timeout_min"`
	SplitDurationMin    int      `yaml:"split_duration_min"`
	MaxConcurrentChunks int      `yaml:"max_concurrent_chunks"`
	MaxRetries          int      `yaml:"max_retries"`
	APIRateLimitPerMin  int      `yaml:"api_rate_limit_per_min"`
	DefaultKeywords     []string `yaml:"default_keywords"`
	DefaultRound        string   `yaml:"default_round"`
	MaxKeyPoints        int      `yaml:"max_key_points"`
}

// Default returns a Config with hardcoded defaults.
func Default() *Config {
	return &Config{
		ASRBaseURL:          "http://localhost:9000",
		UploadTimeoutMin:    30,
		SplitDurationMin:    90,
		MaxConcurrentChunks: 3,
		MaxRetries:          3,
		APIRateLimitPerMin:  30,
		DefaultKeywords:     []string{"data", "algorithm", "project"},
		DefaultRound:        "General",
		MaxKeyPoints:        5,
	}
}

// Load returns the defaults overlaid with the first config file found:
// $INTERVIEW_ANALYZER_CONFIG if set, then ./interview-analyzer.yaml.
// A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	var guesses []string
	if p := os.Getenv("INTERVIEW_ANALYZER_CONFIG"); p != "" {
		guesses = append(guesses, p)
	}
	guesses = append(guesses, "interview-analyzer.yaml")

	for _, p := range guesses {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		err = yaml.NewDecoder(f).Decode(cfg)
		f.Close()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %s: %w", p, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

// UploadTimeout returns the configured upload timeout as a duration.
func (c *Config) UploadTimeout() time.Duration {
	return time.Duration(c.UploadTimeoutMin) * time.Minute
}
