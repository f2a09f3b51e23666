package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[llm]
provider = "openrouter"
model = "meta-llama/llama-3.3-70b-instruct:free"
base_url = "https://openrouter.ai/api/v1"

[relevance]
timeout_seconds = 30

[scanner]
workers = 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, 30, cfg.Relevance.TimeoutSeconds)
	assert.Equal(t, 8, cfg.Scanner.Workers)
	// Unset fields fall back to defaults.
	assert.Equal(t, ".dxl", cfg.Scanner.Extension)
	assert.Equal(t, DefaultMechanismSystem, cfg.Relevance.MechanismSystem)
	assert.Equal(t, "8000", cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "bolt://localhost:7687", cfg.Memgraph.URI)
	assert.Equal(t, 60, cfg.Relevance.TimeoutSeconds)
	assert.Equal(t, DefaultScenarioSystem, cfg.Relevance.ScenarioSystem)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("MEMGRAPH_URI", "bolt://memgraph:7687")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, "bolt://memgraph:7687", cfg.Memgraph.URI)
}
