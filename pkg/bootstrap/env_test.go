package bootstrap

import (
	"testing"

	"github.com/caarlos0/env/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_DB_KIND", "postgres")
	t.Setenv("APP_DB_HOST", "localhost")
	t.Setenv("APP_DB_PORT", "5432")
	t.Setenv("APP_DB_USERNAME", "forum")
	t.Setenv("APP_DB_PASSWORD", "forum")
	t.Setenv("APP_DB_DATABASE", "forum")
	t.Setenv("APP_REDIS_HOST", "localhost")
	t.Setenv("APP_REDIS_PORT", "6379")
}

func parseEnv() (*Env, error) {
	var e Env
	err := env.ParseWithOptions(&e, env.Options{
		RequiredIfNoDef: true,
		Prefix:          "APP_",
	})
	return &e, err
}

func TestEnv_Complete(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_JWT_SECRET", "super-secret")
	t.Setenv("APP_JWT_ISSUER", "trainforum")
	t.Setenv("APP_JWT_AUDIENCE", "trainforum-clients")

	e, err := parseEnv()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", e.JWT.Secret)
	assert.Equal(t, "trainforum", e.JWT.Issuer)
	assert.Equal(t, "trainforum-clients", e.JWT.Audience)
	assert.Equal(t, uint(8080), e.Server.Port, "port falls back to its default")
	assert.Equal(t, "admin", e.SeedAdminPassword, "seed password falls back to its default")
	assert.Equal(t, "localhost:6379", e.Redis.DSN())
}

func TestEnv_MissingJWTConfig(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{name: "missing secret", omit: "APP_JWT_SECRET"},
		{name: "missing issuer", omit: "APP_JWT_ISSUER"},
		{name: "missing audience", omit: "APP_JWT_AUDIENCE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for _, key := range []string{"APP_JWT_SECRET", "APP_JWT_ISSUER", "APP_JWT_AUDIENCE"} {
				if key != tt.omit {
					t.Setenv(key, "some-value")
				}
			}

			_, err := parseEnv()
			assert.Error(t, err, "the process must not start without explicit token config")
		})
	}
}
