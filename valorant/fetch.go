package valorant

import (
	"context"
	"encoding/json"
	"net/url"
)

// FetchOption configures a single fetch call.
type FetchOption func(*fetchOptions)

// fetchOptions holds per-call settings.
type fetchOptions struct {
	cached       bool
	removeUnused bool
	params       url.Values
}

// WithCached serves the call from the memo cache when a matching entry
// exists and stores the result otherwise. Calls made without this
// option invalidate the matching cache entry and always hit the
// network.
func WithCached() FetchOption {
	return func(o *fetchOptions) {
		o.cached = true
	}
}

func newFetchOptions(opts []FetchOption) fetchOptions {
	o := fetchOptions{params: url.Values{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// cacheKey builds a name-qualified key from the endpoint and the full
// query string. url.Values.Encode sorts by parameter name, so keys are
// independent of argument order.
func cacheKey(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}

// fetchList fetches and decodes a list resource, honoring the
// memoization contract.
func fetchList[T any](ctx context.Context, c *Client, endpoint string, opts []FetchOption) ([]T, error) {
	o := newFetchOptions(opts)
	o.params.Set("language", string(c.language))
	key := cacheKey(endpoint, o.params)

	if o.cached {
		if v, ok := c.cache.Get(key); ok {
			if cached, ok := v.([]T); ok {
				return cached, nil
			}
		}
	} else {
		c.cache.Delete(key)
	}

	raw, err := c.get(ctx, endpoint, o.params)
	if err != nil {
		return nil, err
	}

	var out []T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, &DecodeError{Endpoint: endpoint, Err: err}
		}
	}

	if o.cached {
		c.cache.Put(key, out)
	}
	return out, nil
}

// fetchOne fetches and decodes a single resource, honoring the
// memoization contract. The cache stores values, never the returned
// pointer, so callers cannot poison cached entries.
func fetchOne[T any](ctx context.Context, c *Client, endpoint string, opts []FetchOption) (*T, error) {
	o := newFetchOptions(opts)
	o.params.Set("language", string(c.language))
	key := cacheKey(endpoint, o.params)

	if o.cached {
		if v, ok := c.cache.Get(key); ok {
			if cached, ok := v.(T); ok {
				out := cached
				return &out, nil
			}
		}
	} else {
		c.cache.Delete(key)
	}

	raw, err := c.get(ctx, endpoint, o.params)
	if err != nil {
		return nil, err
	}

	var out T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, &DecodeError{Endpoint: endpoint, Err: err}
		}
	}

	if o.cached {
		c.cache.Put(key, out)
	}
	result := out
	return &result, nil
}
