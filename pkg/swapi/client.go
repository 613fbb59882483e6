// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package swapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/NVIDIA/swapi-demo/pkg/cache"
	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
	"github.com/NVIDIA/swapi-demo/pkg/fetcher"
	"github.com/NVIDIA/swapi-demo/pkg/stats"
)

// Fetcher issues one outbound GET and returns the raw body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Option is a functional option for configuring Client instances.
type Option func(*Client)

// WithBaseURL sets the API root that endpoint identifiers are resolved against.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithFetcher sets the outbound fetcher.
func WithFetcher(f Fetcher) Option {
	return func(c *Client) {
		c.fetcher = f
	}
}

// WithCache sets the response store.
func WithCache(s cache.Store) Option {
	return func(c *Client) {
		c.cache = s
	}
}

// WithStats sets the counters the client reports errors to.
func WithStats(s *stats.Stats) Option {
	return func(c *Client) {
		c.stats = s
	}
}

// Client resolves endpoint identifiers to JSON, serving repeats from the cache.
//
// Cached entries never expire, so a hit can return stale data for the life of
// the process. Failed calls are not cached. Concurrent calls for the same
// uncached endpoint each reach the network.
type Client struct {
	baseURL string
	fetcher Fetcher
	cache   cache.Store
	stats   *stats.Stats
}

// NewClient creates a Client. Unset dependencies get defaults: the public
// API base URL, a default fetcher.Reader, an empty in-memory cache and fresh
// counters.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaults.APIBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = fetcher.NewReader()
	}
	if c.cache == nil {
		c.cache = cache.NewMemory()
	}
	if c.stats == nil {
		c.stats = stats.New()
	}
	return c
}

// Stats returns the counters the client updates.
func (c *Client) Stats() *stats.Stats {
	return c.stats
}

// Cache returns the response store.
func (c *Client) Cache() cache.Store {
	return c.cache
}

// URL resolves an endpoint identifier against the base URL.
func (c *Client) URL(endpoint string) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// Fetch returns the JSON document for endpoint in compact form.
//
// On a cache hit no network call is made. On a miss the document is fetched,
// validated and stored under endpoint. Any failure increments the error
// counter once and is returned unchanged.
func (c *Client) Fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	return c.fetch(ctx, endpoint, nil)
}

// fetch is Fetch with an optional decode step. A document is cached only
// after decode accepts it, so a failed call never leaves an entry behind.
func (c *Client) fetch(ctx context.Context, endpoint string, decode func(json.RawMessage) error) (json.RawMessage, error) {
	if cached, ok := c.cache.Get(endpoint); ok {
		cacheHits.Inc()
		slog.Debug("using cached data", "endpoint", endpoint)
		if err := c.decode(endpoint, cached, decode); err != nil {
			return nil, err
		}
		return cached, nil
	}
	cacheMisses.Inc()

	body, err := c.fetcher.Fetch(ctx, c.URL(endpoint))
	if err != nil {
		c.recordError(endpoint, err)
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		perr := apperrors.WrapWithContext(apperrors.ErrCodeJSONParse,
			"response is not valid JSON", err, map[string]any{"endpoint": endpoint})
		c.recordError(endpoint, perr)
		return nil, perr
	}

	doc := json.RawMessage(buf.Bytes())
	if err := c.decode(endpoint, doc, decode); err != nil {
		return nil, err
	}
	c.cache.Set(endpoint, doc)

	slog.Debug("data fetched", "endpoint", endpoint, "bytes", len(doc))
	slog.Debug("cache size", "entries", c.cache.Len())

	return doc, nil
}

func (c *Client) decode(endpoint string, doc json.RawMessage, decode func(json.RawMessage) error) error {
	if decode == nil {
		return nil
	}
	if err := decode(doc); err != nil {
		perr := apperrors.WrapWithContext(apperrors.ErrCodeJSONParse,
			"unexpected document shape", err, map[string]any{"endpoint": endpoint})
		c.recordError(endpoint, perr)
		return perr
	}
	return nil
}

func (c *Client) recordError(endpoint string, err error) {
	c.stats.IncErrors()
	code, ok := apperrors.CodeOf(err)
	if !ok {
		code = apperrors.ErrCodeInternal
	}
	clientErrors.WithLabelValues(string(code)).Inc()
	slog.Debug("api call failed", "endpoint", endpoint, "error", err)
}

// Resource fetches endpoint and decodes it into T. It also returns the size
// of the compact JSON payload in bytes.
//
// A document that cannot be decoded into T counts as a failed call and is
// not cached.
func Resource[T any](ctx context.Context, c *Client, endpoint string) (T, int, error) {
	var out T

	doc, err := c.fetch(ctx, endpoint, func(doc json.RawMessage) error {
		return json.Unmarshal(doc, &out)
	})
	if err != nil {
		var zero T
		return zero, 0, err
	}

	return out, len(doc), nil
}
