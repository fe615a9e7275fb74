package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/repoloc/pkg/config"
	"github.com/arthur-debert/repoloc/pkg/errors"
	"github.com/arthur-debert/repoloc/pkg/logging"
	"github.com/arthur-debert/repoloc/pkg/output"
	"github.com/arthur-debert/repoloc/pkg/probe"
	"github.com/arthur-debert/repoloc/pkg/resolver"
)

var (
	basePath          string
	forceBase         bool
	checkReachable    bool
	proxyURL          string
	proxyUser         string
	proxyPassword     string
	proxyDefaultCreds bool
	formatName        string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <location>",
	Short: "Classify a location as a URL or a filesystem path",
	Long: `Resolve classifies a location string and prints its canonical absolute
form. A location may be an absolute HTTP(S) URL, an absolute filesystem
path, or a path relative to --base.

With --check, URL locations are probed with a HEAD request. The probe is
an existence check only; nothing is downloaded.

Exits with status 1 when the location does not resolve.`,
	Example: `  repoloc resolve https://example.com/repo/manifest.toml
  repoloc resolve 'payloads\setup.msi' --base https://example.com/repo --check
  repoloc resolve ./manifest.toml --base /srv/repo --force-base --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.resolve")

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		name := formatName
		if name == "" {
			name = cfg.Output.Format
		}
		format, err := output.ParseFormat(name)
		if err != nil {
			return err
		}

		opts := resolver.Options{
			BasePath:            basePath,
			ForceBaseIfRelative: forceBase,
			TestReachable:       checkReachable,
			Proxy:               proxyConfig(cfg),
		}

		r := resolver.New(resolver.WithProber(probe.NewHTTPProber(probe.WithTimeout(cfg.Timeout()))))

		start := time.Now()
		info := r.Resolve(cmd.Context(), args[0], opts)
		logger.Info().
			Str("path", args[0]).
			Str("type", info.Type.String()).
			Bool("valid", info.Valid).
			Dur("duration", time.Since(start)).
			Msg("Resolution completed")

		renderer := output.NewRenderer(cmd.OutOrStdout(), format, noColor || cfg.Output.NoColor)
		if err := renderer.Render(info); err != nil {
			return err
		}

		if !info.Valid {
			// The renderer already showed the diagnostic; the error only
			// carries the exit status.
			return errors.New(errors.ErrNotFound, "location did not resolve")
		}
		return nil
	},
}

// proxyConfig merges proxy flags over the loaded configuration. Flags win.
func proxyConfig(cfg *config.Config) *probe.ProxyConfig {
	merged := cfg.ProxyConfig()

	if proxyURL != "" {
		merged = &probe.ProxyConfig{URL: proxyURL}
	}
	if merged == nil {
		return nil
	}

	if proxyUser != "" {
		merged.Credential = &probe.Credential{Username: proxyUser, Password: proxyPassword}
	}
	if proxyDefaultCreds {
		merged.UseDefaultCredentials = true
	}
	return merged
}

func init() {
	resolveCmd.Flags().StringVarP(&basePath, "base", "b", "", "Base location for resolving relative paths")
	resolveCmd.Flags().BoolVar(&forceBase, "force-base", false, "Only test relative paths against --base, never the working directory")
	resolveCmd.Flags().BoolVarP(&checkReachable, "check", "c", false, "Probe URL locations with a HEAD request")
	resolveCmd.Flags().StringVar(&proxyURL, "proxy", "", "HTTP proxy URL for the reachability probe")
	resolveCmd.Flags().StringVar(&proxyUser, "proxy-user", "", "Username for proxy authentication")
	resolveCmd.Flags().StringVar(&proxyPassword, "proxy-password", "", "Password for proxy authentication")
	resolveCmd.Flags().BoolVar(&proxyDefaultCreds, "proxy-default-credentials", false, "Use ambient credentials for the proxy (wins over --proxy-user)")
	resolveCmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: text, json, xml or yaml")
}
