package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DevelopmentFillsSecrets(t *testing.T) {
	t.Parallel()

	cfg := Config{AppEnv: EnvDevelopment}
	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.JWTAccessSecret)
	assert.NotEmpty(t, cfg.JWTRefreshSecret)
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "no access secret", cfg: Config{AppEnv: "production", JWTRefreshSecret: []byte("r"), DatabaseURL: "postgres://x"}},
		{name: "no refresh secret", cfg: Config{AppEnv: "production", JWTAccessSecret: []byte("a"), DatabaseURL: "postgres://x"}},
		{name: "no database url", cfg: Config{AppEnv: "production", JWTAccessSecret: []byte("a"), JWTRefreshSecret: []byte("r")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Error(t, tt.cfg.Validate())
		})
	}
}

func TestValidate_ProductionComplete(t *testing.T) {
	t.Parallel()

	cfg := Config{
		AppEnv:           "production",
		JWTAccessSecret:  []byte("a"),
		JWTRefreshSecret: []byte("r"),
		DatabaseURL:      "postgres://x",
	}
	require.NoError(t, cfg.Validate())
}

func TestCSV(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a", "b"}, CSV("a, b,"))
}
