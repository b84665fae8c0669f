// Package config holds all debattle configuration: model provider, gate
// thresholds, and case preparation settings. Config is loaded from a YAML
// file with environment overrides for secrets and endpoints.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all debattle configuration.
type Config struct {
	// LLM configures the judging model.
	LLM LLMConfig `yaml:"llm"`

	// Gate names the low-content thresholds.
	Gate GateConfig `yaml:"gate"`

	// CasePrep configures hypothetical case generation.
	CasePrep CasePrepConfig `yaml:"caseprep"`
}

// LLMConfig configures the judging model client.
type LLMConfig struct {
	Provider string `yaml:"provider"` // ollama, gemini
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// GateConfig names the low-content thresholds.
type GateConfig struct {
	MinSpeechLines  int `yaml:"min_speech_lines"`
	MinPayloadChars int `yaml:"min_payload_chars"`
}

// CasePrepConfig configures source fetching for case generation.
type CasePrepConfig struct {
	Timeout     string `yaml:"timeout"`
	MaxExtracts int    `yaml:"max_extracts"`
}

// DefaultConfig returns the standard configuration: local Ollama judging
// with the standard gate thresholds.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "ollama",
			Model:    "deepseek-r1:latest",
			BaseURL:  "http://localhost:11434",
			Timeout:  "120s",
		},
		Gate: GateConfig{
			MinSpeechLines:  3,
			MinPayloadChars: 120,
		},
		CasePrep: CasePrepConfig{
			Timeout:     "60s",
			MaxExtracts: 6,
		},
	}
}

// Load reads configuration from path, layered over the defaults, then
// applies environment overrides. An empty path loads defaults plus
// environment only.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides layers environment variables over file values:
// OLLAMA_HOST for the Ollama endpoint, GEMINI_API_KEY for the Gemini key.
func (c *Config) applyEnvOverrides() {
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		c.LLM.BaseURL = host
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = key
	}
}

// TimeoutDuration parses the LLM timeout, defaulting to 120s.
func (c *LLMConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 120 * time.Second
	}
	return d
}

// TimeoutDuration parses the caseprep timeout, defaulting to 60s.
func (c *CasePrepConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}
