package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// RelevanceConfig carries the system prompts for the two query shapes and the
// per-call timeout for the completion round-trip.
type RelevanceConfig struct {
	MechanismSystem string `toml:"mechanism_system"`
	ScenarioSystem  string `toml:"scenario_system"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
}

type ScannerConfig struct {
	Extension string `toml:"extension"`
	Workers   int    `toml:"workers"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	LLM       LLMConfig       `toml:"llm"`
	Memgraph  MemgraphConfig  `toml:"memgraph"`
	Relevance RelevanceConfig `toml:"relevance"`
	Scanner   ScannerConfig   `toml:"scanner"`
	Server    ServerConfig    `toml:"server"`
}

const (
	DefaultMechanismSystem = `You are an expert in materials science and corrosion engineering. ` +
		`Analyze which deterioration mechanisms are relevant for the given equipment and fluid combination. ` +
		`Consider all factors including material compatibility, operating conditions, and environmental factors. ` +
		`Each line true or false for each mechanism and nothing else. ` +
		`Only return the list and nothing else.`

	DefaultScenarioSystem = `You are an expert in materials science and failure analysis. ` +
		`Analyze which failure scenarios are relevant for the given deterioration mechanisms. ` +
		`Consider the nature of the deterioration, affected areas, and contributing factors. ` +
		`Each line true or false for each failure scenario and nothing else. ` +
		`Only return the list and nothing else.`
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a usable config when no file is present; env overrides are
// expected to fill in credentials.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Relevance.MechanismSystem == "" {
		c.Relevance.MechanismSystem = DefaultMechanismSystem
	}
	if c.Relevance.ScenarioSystem == "" {
		c.Relevance.ScenarioSystem = DefaultScenarioSystem
	}
	if c.Relevance.TimeoutSeconds <= 0 {
		c.Relevance.TimeoutSeconds = 60
	}
	if c.Scanner.Extension == "" {
		c.Scanner.Extension = ".dxl"
	}
	if c.Scanner.Workers <= 0 {
		c.Scanner.Workers = 4
	}
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Memgraph.URI == "" {
		c.Memgraph.URI = "bolt://localhost:7687"
	}
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		c.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		c.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		c.Memgraph.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}
