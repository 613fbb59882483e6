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

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
	"github.com/NVIDIA/swapi-demo/pkg/serializer"
)

// EnvPort is the environment variable that overrides the listening port.
const EnvPort = "PORT"

// Config is the resolved, immutable process configuration.
type Config struct {
	debug              bool
	timeout            time.Duration
	port               int
	baseURL            string
	insecureSkipVerify bool
	continueOnError    bool
	workers            int
	queueSize          int
	format             serializer.Format
	logLevel           string
	rateLimit          float64
	rateLimitBurst     int
}

// Option is a functional option for configuring Config instances.
type Option func(*Config)

// WithDebug enables or disables debug mode.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.debug = debug
	}
}

// WithTimeoutMillis sets the per-request fetch timeout in milliseconds.
func WithTimeoutMillis(ms int) Option {
	return func(c *Config) {
		c.timeout = time.Duration(ms) * time.Millisecond
	}
}

// WithPort sets the listening port. The PORT environment variable still wins.
func WithPort(port int) Option {
	return func(c *Config) {
		c.port = port
	}
}

// WithBaseURL sets the API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.baseURL = baseURL
	}
}

// WithInsecureSkipVerify disables certificate validation for outbound calls.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Config) {
		c.insecureSkipVerify = skip
	}
}

// WithContinueOnError makes a cycle run every presenter even after a failure.
func WithContinueOnError(continueOnError bool) Option {
	return func(c *Config) {
		c.continueOnError = continueOnError
	}
}

// WithWorkers sets the number of background cycle workers.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.workers = n
	}
}

// WithQueueSize sets how many cycles may wait for a worker.
func WithQueueSize(n int) Option {
	return func(c *Config) {
		c.queueSize = n
	}
}

// WithFormat sets the presenter output format.
func WithFormat(f serializer.Format) Option {
	return func(c *Config) {
		c.format = f
	}
}

// WithLogLevel sets the requested log level. Debug mode overrides it.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.logLevel = level
	}
}

// WithRateLimit sets the inbound request rate limit and burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Config) {
		c.rateLimit = perSecond
		c.rateLimitBurst = burst
	}
}

// New resolves a Config from defaults, options and the environment, and
// validates the result.
//
// Port precedence is the PORT environment variable, then WithPort, then
// defaults.ServerPort. An unparsable PORT is ignored with a warning.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		debug:          true,
		timeout:        defaults.FetchTimeout,
		port:           defaults.ServerPort,
		baseURL:        defaults.APIBaseURL,
		workers:        defaults.JobWorkers,
		queueSize:      defaults.JobQueueSize,
		format:         serializer.FormatTable,
		rateLimit:      defaults.RateLimit,
		rateLimitBurst: defaults.RateLimitBurst,
	}
	for _, opt := range opts {
		opt(c)
	}

	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || !validPort(port) {
			slog.Warn("ignoring invalid port from environment", "env", EnvPort, "value", v)
		} else {
			c.port = port
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports the first invalid setting as an INVALID_REQUEST error.
func (c *Config) Validate() error {
	invalid := func(field string, value any, reason string) error {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid %s: %s", field, reason),
			map[string]any{"field": field, "value": value})
	}

	if c.timeout <= 0 {
		return invalid("timeout", c.timeout.Milliseconds(), "must be a positive number of milliseconds")
	}
	if !validPort(c.port) {
		return invalid("port", c.port, "must be between 1 and 65535")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("base-url", c.baseURL, "must be an absolute http or https URL")
	}
	if c.workers <= 0 {
		return invalid("workers", c.workers, "must be positive")
	}
	if c.queueSize <= 0 {
		return invalid("queue-size", c.queueSize, "must be positive")
	}
	if c.format.IsUnknown() {
		return invalid("format", c.format, "must be one of "+strings.Join(serializer.SupportedFormats(), ", "))
	}
	if c.rateLimit <= 0 || c.rateLimitBurst <= 0 {
		return invalid("rate-limit", c.rateLimit, "limit and burst must be positive")
	}
	return nil
}

func validPort(port int) bool {
	return port > 0 && port <= 65535
}

func (c *Config) Debug() bool { return c.debug }
func (c *Config) Timeout() time.Duration { return c.timeout }
func (c *Config) Port() int { return c.port }
func (c *Config) BaseURL() string { return c.baseURL }
func (c *Config) InsecureSkipVerify() bool { return c.insecureSkipVerify }
func (c *Config) ContinueOnError() bool { return c.continueOnError }
func (c *Config) Workers() int { return c.workers }
func (c *Config) QueueSize() int { return c.queueSize }
func (c *Config) Format() serializer.Format { return c.format }
func (c *Config) LogLevel() string { return c.logLevel }
func (c *Config) RateLimit() float64 { return c.rateLimit }
func (c *Config) RateLimitBurst() int { return c.rateLimitBurst }

// LogValue renders the configuration for structured logs.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("debug", c.debug),
		slog.Int64("timeoutMs", c.timeout.Milliseconds()),
		slog.Int("port", c.port),
		slog.String("baseURL", c.baseURL),
		slog.Bool("insecureSkipVerify", c.insecureSkipVerify),
		slog.Bool("continueOnError", c.continueOnError),
		slog.Int("workers", c.workers),
		slog.Int("queueSize", c.queueSize),
		slog.String("format", string(c.format)),
		slog.Float64("rateLimit", c.rateLimit),
		slog.Int("rateLimitBurst", c.rateLimitBurst),
	)
}
