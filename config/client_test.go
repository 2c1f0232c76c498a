package config

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestBuildEmbedder_Offline(t *testing.T) {
	t.Setenv(OfflineEnv, "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	embedder, err := BuildEmbedder(cfg, testLogger())
	require.NoError(t, err)

	vecs, err := embedder.Embed(t.Context(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, vecs, 2)
}

func TestBuildClient_NoProviders(t *testing.T) {
	t.Setenv(OfflineEnv, "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	cfg.Providers = []string{"openai", "anthropic"}

	_, _, err = BuildClient(cfg, testLogger())
	assert.Error(t, err)
}
