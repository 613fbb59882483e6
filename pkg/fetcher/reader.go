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

package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
)

// Option defines a configuration option for Reader.
type Option func(*Reader)

// Reader performs timeout-bounded HTTP GET requests.
// A Reader is safe for concurrent use; every Fetch carries its own deadline.
type Reader struct {
	UserAgent          string
	Timeout            time.Duration
	InsecureSkipVerify bool
	Client             *http.Client

	insecureSkipVerifySet bool
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(r *Reader) {
		r.UserAgent = userAgent
	}
}

// WithTimeout sets the maximum time a single Fetch may take, body included.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Reader) {
		r.Timeout = timeout
	}
}

// WithInsecureSkipVerify disables certificate validation when skip is true.
// Validation is strict unless this option is given.
func WithInsecureSkipVerify(skip bool) Option {
	return func(r *Reader) {
		r.InsecureSkipVerify = skip
		r.insecureSkipVerifySet = true
	}
}

// WithClient replaces the underlying HTTP client.
func WithClient(client *http.Client) Option {
	return func(r *Reader) {
		r.Client = client
	}
}

// NewReader creates a new Reader with the specified options.
func NewReader(options ...Option) *Reader {
	r := &Reader{
		UserAgent: defaults.FetchUserAgent,
		Timeout:   defaults.FetchTimeout,
		Client:    &http.Client{Transport: newTransport()},
	}

	for _, opt := range options {
		opt(r)
	}

	r.apply()
	return r
}

// newTransport returns a transport that opens a fresh connection per request.
func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: defaults.HTTPConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: defaults.HTTPTLSHandshakeTimeout,
		DisableKeepAlives:   true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

func (r *Reader) apply() {
	if r.UserAgent == "" {
		r.UserAgent = defaults.FetchUserAgent
	}
	if r.Timeout <= 0 {
		r.Timeout = defaults.FetchTimeout
	}
	if r.Client == nil {
		r.Client = &http.Client{Transport: newTransport()}
	}

	// TLS knobs only reach the default *http.Transport.
	tr, ok := r.Client.Transport.(*http.Transport)
	if !ok || tr == nil {
		return
	}
	if tr.TLSClientConfig == nil {
		tr.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if r.insecureSkipVerifySet {
		tr.TLSClientConfig.InsecureSkipVerify = r.InsecureSkipVerify //nolint:gosec // explicit operator opt-in
		if r.InsecureSkipVerify {
			slog.Warn("certificate validation disabled for outbound requests")
		}
	}
}

// Fetch issues a single GET for url and returns the complete response body.
//
// Failures are StructuredErrors: ErrCodeHTTPStatus for status >= 400,
// ErrCodeTimeout when the request outlives the Reader's timeout, and
// ErrCodeNetwork for any other transport failure. On timeout the request
// context is canceled, which aborts the connection.
func (r *Reader) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	data, err := r.fetch(ctx, url)
	observeFetch(start, err)
	return data, err
}

func (r *Reader) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to create request for url %s", url), err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, r.classify(ctx, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeHTTPStatus,
			fmt.Sprintf("request failed with status %d", resp.StatusCode),
			map[string]any{
				apperrors.ContextKeyStatus: resp.StatusCode,
				"url":                      url,
			})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, r.classify(ctx, url, err)
	}

	return data, nil
}

// classify maps a transport error onto the fetch error taxonomy.
func (r *Reader) classify(ctx context.Context, url string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.WrapWithContext(apperrors.ErrCodeTimeout,
			fmt.Sprintf("request timed out after %s", r.Timeout), err,
			map[string]any{"url": url, "timeout": r.Timeout.String()})
	}
	return apperrors.WrapWithContext(apperrors.ErrCodeNetwork,
		"request failed", err, map[string]any{"url": url})
}
