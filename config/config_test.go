package config_test

import (
	"testing"

	"cafe/config"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	cfg := config.Get()

	assert.NotNil(t, cfg)
	assert.Same(t, cfg, config.Get(), "expected Get to return the same instance")
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "cafes.db", cfg.DB.SQLite.File)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "TopSecretAPIKey", cfg.App.APIKey)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}, cfg.App.CORS.AllowedMethods)
}
