package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("CALC_LANG sets language", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CALC_LANG", "en")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "en", cfg.Language)
	})

	t.Run("logging overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CALC_LOG_LEVEL", "debug")
		t.Setenv("CALC_LOG_FILE", "/tmp/calc.log")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "/tmp/calc.log", cfg.Logging.File)
	})

	t.Run("empty values leave config untouched", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{Language: "ru", Theme: "dark"}
		cfg.applyEnvOverrides()

		assert.Equal(t, "ru", cfg.Language)
		assert.Equal(t, "dark", cfg.Theme)
	})

	t.Run("env wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CALC_THEME", "plain")

		cfg, err := Load(t.TempDir() + "/missing.yaml")
		assert.NoError(t, err)
		assert.Equal(t, "plain", cfg.Theme)
	})
}
