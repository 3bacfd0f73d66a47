package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL_MINUTES", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("ORIGIN_URL", "")

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, "skycast", cfg.MongoDatabase)
	assert.Equal(t, "*", cfg.OriginURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_TTL_MINUTES", "5")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5, cfg.JWTTTLMinutes)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")
	cfg := Load()
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
}
