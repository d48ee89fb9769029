package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GLRS_ADDR", "")
	t.Setenv("GLRS_BASE_URL", "")
	t.Setenv("GLRS_ENV", "")

	c := Load()

	assert.Equal(t, ":8000", c.Addr)
	assert.Equal(t, "http://localhost:8000", c.BaseURL)
	assert.Equal(t, "development", c.Env)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GLRS_ADDR", ":9999")
	t.Setenv("GLRS_ENV", "production")

	c := Load()

	assert.Equal(t, ":9999", c.Addr)
	assert.Equal(t, "production", c.Env)
}
