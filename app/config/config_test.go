package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ASISTENCIA_TEST_KEY", "valor")
	assert.Equal(t, "valor", getEnv("ASISTENCIA_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("ASISTENCIA_TEST_MISSING", "fallback"))
}

func TestSplitOrigins(t *testing.T) {
	origins := splitOrigins("http://localhost:5173, https://asistencia.example.com ,")
	assert.Equal(t, []string{"http://localhost:5173", "https://asistencia.example.com"}, origins)

	assert.Nil(t, splitOrigins(""))
}

func TestIsDevelopment(t *testing.T) {
	orig := AppConfig
	t.Cleanup(func() { AppConfig = orig })

	AppConfig = nil
	assert.False(t, IsDevelopment())

	AppConfig = &Config{Env: "development"}
	assert.True(t, IsDevelopment())

	AppConfig = &Config{Env: "production"}
	assert.False(t, IsDevelopment())
}

func TestGetDBNilConfig(t *testing.T) {
	orig := AppConfig
	t.Cleanup(func() { AppConfig = orig })

	AppConfig = nil
	assert.Nil(t, GetDB())
}
