package config_test

import (
	"testing"

	"github.com/finbooks/fiscal_ledger_app/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_SplitsCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoadConfig_DefaultCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
}
