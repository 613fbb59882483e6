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

package defaults

import "time"

// Outbound API defaults.
const (
	// APIBaseURL is the root of the public Star Wars API.
	APIBaseURL = "https://swapi.dev/api"

	// FetchTimeout bounds a single outbound request to the API, including
	// reading the full response body.
	FetchTimeout = 5000 * time.Millisecond

	// FetchUserAgent is sent with every outbound request.
	FetchUserAgent = "swapi-demo/1.0"
)

// Server timeouts for HTTP server configuration.
const (
	// ServerPort is the fallback listening port when neither the PORT
	// environment variable nor the --port flag is set.
	ServerPort = 3000

	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Inbound rate limiting applied to application routes.
const (
	// RateLimit is the sustained number of requests per second.
	RateLimit = 100

	// RateLimitBurst is the number of requests allowed above the sustained rate.
	RateLimitBurst = 200
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second
)

// Job queue defaults for orchestration cycles triggered over HTTP.
const (
	// JobWorkers is the number of cycles that may run at the same time.
	JobWorkers = 1

	// JobQueueSize is the number of cycles that may wait for a worker.
	JobQueueSize = 16

	// JobHistorySize is the number of finished jobs kept for polling.
	JobHistorySize = 100

	// CycleTimeout bounds one orchestration cycle run by a worker.
	CycleTimeout = 2 * time.Minute
)

// Presentation limits applied by the orchestration cycle.
const (
	// MinPopulation is the exclusive lower bound on a "large and populous"
	// planet's population.
	MinPopulation = 1_000_000_000

	// MinDiameter is the exclusive lower bound on a "large and populous"
	// planet's diameter in kilometers.
	MinDiameter = 10_000

	// MaxStarshipsToDisplay caps the starships rendered from the first page.
	MaxStarshipsToDisplay = 3

	// FirstResourceID is the id the character and vehicle cursors start at.
	FirstResourceID = 1

	// MaxVehicleID is the last vehicle id the cycle will feature.
	MaxVehicleID = 4

	// MaxMissingCharacters is how many consecutive missing character ids a
	// cycle skips before it wraps the cursor back to FirstResourceID.
	MaxMissingCharacters = 3
)
