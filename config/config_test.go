package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	cfg := Default()
	require.Equal(t, EnvProd, cfg.Environment)
	require.Equal(t, "https://api.ripiotrade.co/v3/public", cfg.Exchange.PublicBaseURL)
	require.Equal(t, "https://api.ripiotrade.co/v3", cfg.Exchange.PrivateBaseURL)
	require.Equal(t, AuthStyleAPIKey, cfg.Exchange.AuthStyle)
	require.Equal(t, 10*time.Second, cfg.Exchange.HTTPTimeout)
	require.Equal(t, 50*time.Millisecond, cfg.Exchange.RateInterval)
	require.False(t, cfg.Exchange.Credentials.Configured())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("RIPIO_ENV", "dev")
	t.Setenv("RIPIO_API_KEY", "key-123")
	t.Setenv("RIPIO_AUTH_STYLE", "bearer")
	t.Setenv("RIPIO_HTTP_TIMEOUT", "3s")
	t.Setenv("RIPIO_PUBLIC_BASE_URL", "https://sandbox.example/v3/public")

	cfg := FromEnv()
	require.Equal(t, EnvDev, cfg.Environment)
	require.Equal(t, "key-123", cfg.Exchange.Credentials.APIKey)
	require.True(t, cfg.Exchange.Credentials.Configured())
	require.Equal(t, AuthStyleBearer, cfg.Exchange.AuthStyle)
	require.Equal(t, 3*time.Second, cfg.Exchange.HTTPTimeout)
	require.Equal(t, "https://sandbox.example/v3/public", cfg.Exchange.PublicBaseURL)
}

func TestApplyOptionsDoesNotMutateBase(t *testing.T) {
	base := Default()
	derived := Apply(base,
		WithEnvironment(EnvStaging),
		WithCredentials("abc", ""),
		WithAuthStyle(AuthStyleBearer),
		WithRateInterval(time.Second),
	)
	require.Equal(t, EnvStaging, derived.Environment)
	require.Equal(t, "abc", derived.Exchange.Credentials.APIKey)
	require.Equal(t, AuthStyleBearer, derived.Exchange.AuthStyle)
	require.Equal(t, time.Second, derived.Exchange.RateInterval)

	require.Equal(t, EnvProd, base.Environment)
	require.Empty(t, base.Exchange.Credentials.APIKey)
	require.Equal(t, AuthStyleAPIKey, base.Exchange.AuthStyle)
}

func TestParseAuthStyle(t *testing.T) {
	for raw, want := range map[string]AuthStyle{
		"api-key":   AuthStyleAPIKey,
		"x-api-key": AuthStyleAPIKey,
		"Bearer":    AuthStyleBearer,
		"token":     AuthStyleBearer,
	} {
		style, ok := ParseAuthStyle(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, style, raw)
	}
	_, ok := ParseAuthStyle("hmac")
	require.False(t, ok)
}

func TestLoadFileLayersOverBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ripio.yaml")
	content := []byte(`
environment: staging
exchange:
  api_key: file-key
  auth_style: bearer
  http_timeout: 5s
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	require.Equal(t, EnvStaging, cfg.Environment)
	require.Equal(t, "file-key", cfg.Exchange.Credentials.APIKey)
	require.Equal(t, AuthStyleBearer, cfg.Exchange.AuthStyle)
	require.Equal(t, 5*time.Second, cfg.Exchange.HTTPTimeout)
	// untouched fields keep defaults
	require.Equal(t, "https://api.ripiotrade.co/v3/public", cfg.Exchange.PublicBaseURL)
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, loaded, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"), Default())
	require.NoError(t, err)
	require.False(t, loaded)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileRejectsUnknownAuthStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ripio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exchange:\n  auth_style: hmac\n"), 0o600))
	_, err := LoadFile(path, Default())
	require.Error(t, err)
}
