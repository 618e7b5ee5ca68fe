package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LLM holds the completion-service settings.
type LLM struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	APIKey   string `json:"api_key"`
	BaseURL  string `json:"base_url,omitempty"`
}

// Config is the single configuration object for a run. It is constructed
// once at process start and passed into every component that needs it;
// nothing reads environment state directly.
type Config struct {
	LLM        LLM    `json:"llm"`
	OutDir     string `json:"out_dir,omitempty"`
	DataDir    string `json:"data_dir,omitempty"`
	SourcesDir string `json:"sources_dir,omitempty"`
	ServerAddr string `json:"server_addr,omitempty"`

	// Concurrency caps how many sections are in flight at once.
	Concurrency int `json:"concurrency,omitempty"`

	// KeepCountryPlaceholder leaves {Country} in section instructions
	// verbatim instead of substituting the country name before the prompt
	// is sent.
	KeepCountryPlaceholder bool `json:"keep_country_placeholder,omitempty"`
}

// ExpandCountryPlaceholder reports whether {Country} in instructions should
// be substituted before prompts are built.
func (c Config) ExpandCountryPlaceholder() bool {
	return !c.KeepCountryPlaceholder
}

// Load reads JSON config from disk and validates the credential fields so a
// bad setup fails before any network call.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c Config) validate() error {
	if c.LLM.Provider == "" {
		return errors.New("config must include llm.provider")
	}
	if c.LLM.Model == "" {
		return errors.New("config must include llm.model")
	}
	if c.LLM.APIKey == "" && c.LLM.Provider != "mock" {
		return errors.New("config must include llm.api_key")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.OutDir == "" {
		c.OutDir = "out"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.SourcesDir == "" {
		c.SourcesDir = "sources"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 2
	}
}
