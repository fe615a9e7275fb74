// Package probe implements the lightweight reachability check used for URL
// locations. A probe is a single HEAD request; it never fetches content.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/arthur-debert/repoloc/pkg/logging"
)

// DefaultTimeout bounds a single probe, connection setup included.
const DefaultTimeout = 8 * time.Second

// Credential is a username/password pair for proxy authentication.
type Credential struct {
	Username string
	Password string
}

// ProxyConfig describes how to route a probe through an HTTP proxy.
type ProxyConfig struct {
	// URL is the proxy endpoint, e.g. "http://proxy.corp:3128".
	URL string

	// Credential authenticates against the proxy. Ignored when
	// UseDefaultCredentials is set.
	Credential *Credential

	// UseDefaultCredentials uses the ambient credentials of the execution
	// environment instead of an explicit credential. Wins over Credential
	// when both are supplied.
	UseDefaultCredentials bool
}

// Result is the outcome of a single probe.
type Result struct {
	// Reachable is true when the probe got a 2xx response.
	Reachable bool

	// StatusCode is the HTTP status when a response was received, 0 for
	// transport errors.
	StatusCode int

	// Message describes a transport-level failure (timeout, DNS, connection
	// refused). Empty for any completed request, including non-2xx statuses.
	Message string
}

// Prober performs reachability checks for URL locations.
type Prober interface {
	Head(ctx context.Context, target string, proxy *ProxyConfig) Result
}

// HTTPProber probes with HEAD requests over a fresh, keep-alive-free
// connection per call. It is safe for concurrent use.
type HTTPProber struct {
	timeout time.Duration
}

// Option configures an HTTPProber.
type Option func(*HTTPProber)

// WithTimeout overrides the default probe timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *HTTPProber) {
		p.timeout = d
	}
}

// NewHTTPProber creates a prober with the default timeout.
func NewHTTPProber(opts ...Option) *HTTPProber {
	p := &HTTPProber{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Head issues a HEAD request against target. Redirects are followed.
// Transport failures are reported in Result.Message rather than returned as
// errors; a non-2xx response is simply not reachable.
func (p *HTTPProber) Head(ctx context.Context, target string, proxy *ProxyConfig) Result {
	logger := logging.GetLogger("probe")

	transport := &http.Transport{
		// One connection per probe, nothing kept open afterwards.
		DisableKeepAlives: true,
		Proxy:             http.ProxyFromEnvironment,
	}

	if proxy != nil && proxy.URL != "" {
		proxyURL, err := url.Parse(proxy.URL)
		if err != nil {
			return Result{Message: fmt.Sprintf("HEAD request for %s failed: invalid proxy url %q: %v", target, proxy.URL, err)}
		}
		if !proxy.UseDefaultCredentials && proxy.Credential != nil {
			proxyURL.User = url.UserPassword(proxy.Credential.Username, proxy.Credential.Password)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   p.timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return Result{Message: fmt.Sprintf("HEAD request for %s failed: %v", target, err)}
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Debug().Str("url", target).Err(err).Msg("Probe transport failure")
		return Result{Message: fmt.Sprintf("HEAD request for %s failed: %v", target, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug().Str("url", target).Int("status", resp.StatusCode).Msg("Probe completed")

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return Result{Reachable: true, StatusCode: resp.StatusCode}
	}
	return Result{StatusCode: resp.StatusCode}
}
