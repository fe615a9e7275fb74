// Package config loads repoloc settings from defaults, an optional TOML
// config file, and REPOLOC_* environment variables, in that order of
// precedence (later layers win).
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/repoloc/pkg/errors"
	"github.com/arthur-debert/repoloc/pkg/probe"
)

// ConfigFileName is the name of the config file, searched in the XDG config
// directory and the working directory.
const ConfigFileName = "repoloc.toml"

// envPrefix namespaces the environment variables read by Load, e.g.
// REPOLOC_PROXY_URL and REPOLOC_HTTP_TIMEOUT.
const envPrefix = "REPOLOC_"

// Config holds all user-facing settings.
type Config struct {
	Proxy  ProxySettings  `koanf:"proxy" toml:"proxy"`
	HTTP   HTTPSettings   `koanf:"http" toml:"http"`
	Output OutputSettings `koanf:"output" toml:"output"`
}

// ProxySettings configures the HTTP proxy used by reachability probes.
type ProxySettings struct {
	URL                   string `koanf:"url" toml:"url"`
	Username              string `koanf:"username" toml:"username"`
	Password              string `koanf:"password" toml:"password"`
	UseDefaultCredentials bool   `koanf:"use_default_credentials" toml:"use_default_credentials"`
}

// HTTPSettings configures probe transport behavior.
type HTTPSettings struct {
	// TimeoutSeconds bounds a single probe.
	TimeoutSeconds int `koanf:"timeout" toml:"timeout"`
}

// OutputSettings configures how results are rendered.
type OutputSettings struct {
	Format  string `koanf:"format" toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTP:   HTTPSettings{TimeoutSeconds: 8},
		Output: OutputSettings{Format: "text"},
	}
}

// Load builds the effective configuration. When path is empty the config
// file is searched at $XDG_CONFIG_HOME/repoloc/repoloc.toml and then
// ./repoloc.toml; a missing file is fine. An explicitly given path must
// exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"http.timeout":  defaults.HTTP.TimeoutSeconds,
		"output.format": defaults.Output.Format,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config from %s", path)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if cfg.HTTP.TimeoutSeconds <= 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "http.timeout must be positive, got %d", cfg.HTTP.TimeoutSeconds)
	}

	return &cfg, nil
}

// envToKey maps REPOLOC_PROXY_USE_DEFAULT_CREDENTIALS to
// proxy.use_default_credentials: only the first underscore separates the
// section from the key.
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func findConfigFile() string {
	candidates := []string{
		filepath.Join(xdg.ConfigHome, "repoloc", ConfigFileName),
		ConfigFileName,
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// ProxyConfig converts the proxy settings into the probe package's form.
// Returns nil when no proxy is configured.
func (c *Config) ProxyConfig() *probe.ProxyConfig {
	if c.Proxy.URL == "" {
		return nil
	}

	cfg := &probe.ProxyConfig{
		URL:                   c.Proxy.URL,
		UseDefaultCredentials: c.Proxy.UseDefaultCredentials,
	}
	if c.Proxy.Username != "" {
		cfg.Credential = &probe.Credential{
			Username: c.Proxy.Username,
			Password: c.Proxy.Password,
		}
	}
	return cfg
}

// Timeout returns the probe timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
