package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/repoloc/pkg/errors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestLoadDefaults(t *testing.T) {
	// No config file anywhere near the working directory.
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, 8*time.Second, cfg.Timeout())
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Empty(t, cfg.Proxy.URL)
	assert.Nil(t, cfg.ProxyConfig())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repoloc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[proxy]
url = "http://proxy.corp:3128"
username = "svc-installer"
password = "hunter2"

[http]
timeout = 20

[output]
format = "json"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://proxy.corp:3128", cfg.Proxy.URL)
	assert.Equal(t, 20, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, "json", cfg.Output.Format)

	proxy := cfg.ProxyConfig()
	require.NotNil(t, proxy)
	require.NotNil(t, proxy.Credential)
	assert.Equal(t, "svc-installer", proxy.Credential.Username)
	assert.Equal(t, "hunter2", proxy.Credential.Password)
	assert.False(t, proxy.UseDefaultCredentials)
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`
[http]
timeout = 3
`), 0644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.HTTP.TimeoutSeconds)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repoloc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[proxy]
url = "http://from-file:3128"
`), 0644))

	t.Setenv("REPOLOC_PROXY_URL", "http://from-env:8080")
	t.Setenv("REPOLOC_PROXY_USE_DEFAULT_CREDENTIALS", "true")
	t.Setenv("REPOLOC_HTTP_TIMEOUT", "15")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:8080", cfg.Proxy.URL)
	assert.True(t, cfg.Proxy.UseDefaultCredentials)
	assert.Equal(t, 15, cfg.HTTP.TimeoutSeconds)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repoloc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[proxy\nurl ="), 0644))

	_, err := Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repoloc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[http]\ntimeout = 0\n"), 0644))

	_, err := Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestEnvToKey(t *testing.T) {
	assert.Equal(t, "proxy.url", envToKey("REPOLOC_PROXY_URL"))
	assert.Equal(t, "proxy.use_default_credentials", envToKey("REPOLOC_PROXY_USE_DEFAULT_CREDENTIALS"))
	assert.Equal(t, "output.no_color", envToKey("REPOLOC_OUTPUT_NO_COLOR"))
}

func TestGenerateRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf))

	var cfg Config
	require.NoError(t, gotoml.Unmarshal(buf.Bytes(), &cfg))
	assert.Equal(t, Default(), cfg)
}
