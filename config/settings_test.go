package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	require.NoError(t, LoadSettings())

	assert.Equal(t, "8081", App.Server.Port)
	assert.NotEmpty(t, App.Server.CORSOrigins)
	assert.Equal(t, 60, App.RateLimit.Requests)
	assert.Equal(t, time.Minute, App.RateLimit.Window)
	assert.Equal(t, 5*time.Minute, App.Cache.TTL)
	assert.Equal(t, 8, App.Search.PageSize)
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv("ANVOGUE_SERVER__PORT", "9090")
	t.Setenv("ANVOGUE_SEARCH__PAGE_SIZE", "12")

	require.NoError(t, LoadSettings())

	assert.Equal(t, "9090", App.Server.Port)
	assert.Equal(t, 12, App.Search.PageSize)
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	t.Setenv("ANVOGUE_SEARCH__PAGE_SIZE", "500")

	assert.Error(t, LoadSettings())
}
