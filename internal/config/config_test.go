package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loxite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "descent", cfg.Engine)
	assert.True(t, cfg.Color)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
prompt: "lox> "
color: false
pretty: true
show_tokens: true
engine: participle
log_verbosity: 2
log_file: /tmp/loxite.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.Pretty)
	assert.True(t, cfg.ShowTokens)
	assert.False(t, cfg.ShowAST)
	assert.Equal(t, "participle", cfg.Engine)
	assert.Equal(t, 2, cfg.LogVerbosity)
	assert.Equal(t, "/tmp/loxite.log", cfg.LogFile)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "colour: true\n"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestLoadRejectsUnknownEngine(t *testing.T) {
	_, err := Load(writeConfig(t, "engine: yacc\n"))
	assert.ErrorContains(t, err, `unknown engine "yacc"`)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LOXITE_NO_COLOR", "1")
	t.Setenv("LOXITE_ENGINE", "participle")
	t.Setenv("LOXITE_LOG_VERBOSITY", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Color)
	assert.Equal(t, "participle", cfg.Engine)
	assert.Equal(t, 3, cfg.LogVerbosity)
}

func TestEnvOverrideInvalidVerbosity(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(func(key string) (string, bool) {
		if key == "LOXITE_LOG_VERBOSITY" {
			return "loud", true
		}
		return "", false
	})
	assert.ErrorContains(t, err, "LOXITE_LOG_VERBOSITY")
}
