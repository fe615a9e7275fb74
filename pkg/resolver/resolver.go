package resolver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/repoloc/pkg/filesystem"
	"github.com/arthur-debert/repoloc/pkg/logging"
	"github.com/arthur-debert/repoloc/pkg/pathinfo"
	"github.com/arthur-debert/repoloc/pkg/probe"
)

// Options controls a single resolution.
type Options struct {
	// BasePath anchors relative inputs. Optional.
	BasePath string

	// ForceBaseIfRelative skips the as-is filesystem test for relative
	// inputs, so only the base-joined location is considered.
	ForceBaseIfRelative bool

	// TestReachable requests a HEAD probe for URL locations.
	TestReachable bool

	// Proxy routes the probe through an HTTP proxy. Optional.
	Proxy *probe.ProxyConfig
}

// Resolver classifies location strings. The zero dependencies are the real
// OS filesystem and an HTTP prober; both can be swapped for tests or for
// embedding hosts with their own filesystem layer.
type Resolver struct {
	fs     filesystem.FS
	prober probe.Prober
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFilesystem replaces the filesystem accessor.
func WithFilesystem(fs filesystem.FS) Option {
	return func(r *Resolver) {
		r.fs = fs
	}
}

// WithProber replaces the reachability prober.
func WithProber(p probe.Prober) Option {
	return func(r *Resolver) {
		r.prober = p
	}
}

// New creates a Resolver. Safe for concurrent use; Resolve holds no state
// across calls.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		fs:     filesystem.OS(),
		prober: probe.NewHTTPProber(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve classifies path and returns a fully populated PathInfo. It never
// returns an error: malformed URLs fall through to filesystem
// classification, probe failures are recorded on the result, and inputs that
// resolve to nothing come back as TypeUnknown with a diagnostic message.
func (r *Resolver) Resolve(ctx context.Context, path string, opts Options) pathinfo.PathInfo {
	logger := logging.GetLogger("resolver")

	if location, ok := httpCandidate(path, opts.BasePath); ok {
		logger.Debug().Str("path", path).Str("url", location).Msg("Resolved as URL")
		return r.resolveURL(ctx, location, opts)
	}

	relative := IsRelative(path)

	// The as-is test lets the environment interpret current-drive and
	// current-directory semantics. It is skipped only when the caller pinned
	// relative inputs to the base.
	if !(relative && opts.ForceBaseIfRelative) {
		if info, ok := r.resolveFile(path); ok {
			logger.Debug().Str("path", path).Str("location", info.AbsoluteLocation).Msg("Resolved as file")
			return info
		}
	}

	if opts.BasePath != "" {
		joined := filepath.Join(opts.BasePath, path)
		if info, ok := r.resolveFile(joined); ok {
			logger.Debug().Str("path", path).Str("location", info.AbsoluteLocation).Msg("Resolved as file under base")
			return info
		}
	}

	logger.Debug().Str("path", path).Str("base", opts.BasePath).Msg("Location did not resolve")
	// Plain quoting, not %q: backslash inputs must appear verbatim in the
	// diagnostic.
	return pathinfo.PathInfo{
		ErrorMessage: fmt.Sprintf("\"%s\" is not a supported URL and does not exist as a filesystem path", path),
	}
}

// resolveURL populates a PathInfo for an http/https location, probing it when
// requested. Probe failures are non-fatal: the location stays valid, the
// failure is recorded.
func (r *Resolver) resolveURL(ctx context.Context, location string, opts Options) pathinfo.PathInfo {
	info := pathinfo.PathInfo{
		Valid:            true,
		Type:             pathinfo.TypeHTTP,
		AbsoluteLocation: location,
	}

	if !opts.TestReachable {
		return info
	}

	result := r.prober.Head(ctx, location, opts.Proxy)
	info.Reachable = result.Reachable
	info.ErrorMessage = result.Message
	return info
}

// resolveFile reports whether path names an existing entry on a real
// filesystem, and if so returns its populated PathInfo. Entries in synthetic
// namespaces count as not found.
func (r *Resolver) resolveFile(path string) (pathinfo.PathInfo, bool) {
	if _, err := r.fs.Stat(path); err != nil {
		return pathinfo.PathInfo{}, false
	}
	if !r.fs.IsReal() {
		return pathinfo.PathInfo{}, false
	}

	location, err := r.fs.Canonicalize(path)
	if err != nil {
		return pathinfo.PathInfo{}, false
	}

	return pathinfo.PathInfo{
		Valid:            true,
		Reachable:        true,
		Type:             pathinfo.TypeFile,
		AbsoluteLocation: location,
	}, true
}
