package valorant

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	language   Language
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
	cacheSize  int
	cacheTTL   time.Duration
}

// WithBaseURL overrides the API base URL. Useful for testing against
// a mock server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithLanguage selects the display language for localized fields.
func WithLanguage(language Language) Option {
	return func(o *clientOptions) {
		o.language = language
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when a custom
// HTTP client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithCacheSize bounds the number of memoized responses.
func WithCacheSize(size int) Option {
	return func(o *clientOptions) {
		if size > 0 {
			o.cacheSize = size
		}
	}
}

// WithCacheTTL sets the lifetime of memoized responses. Zero keeps
// entries until they are evicted or the key is invalidated.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *clientOptions) {
		if ttl > 0 {
			o.cacheTTL = ttl
		}
	}
}
