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

// Package server implements the HTTP surface of the SWAPI demo.
//
// # Architecture
//
// The server is a small HTTP front end over shared, in-memory state:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking via the X-Request-Id header
//   - Panic recovery for resilience
//   - Prometheus RED metrics per route
//   - Graceful shutdown on SIGINT and SIGTERM
//   - Health and readiness probes
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /, /index.html - Demo page with the current statistics in its footer
//   - GET /api           - Queue one orchestration cycle and return at once (not rate limited)
//   - GET /stats         - JSON statistics snapshot
//   - GET /jobs/{id}     - State of a queued cycle
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// Any other path returns 404 with a plain-text body. Registered paths reject
// methods other than GET with 405.
//
// # Fire and forget
//
// GET /api answers before the cycle runs. The X-Job-Id response header
// identifies the job; poll /jobs/{id} for its outcome. The answer is always
// 200: when the queue is full the cycle is dropped, logged and counted, and
// the X-Job-Id header is omitted. /api is exempt from rate limiting.
//
// # Error Responses
//
// Errors other than 404 use a JSON envelope:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": true
//	}
//
// # Usage
//
//	s := server.New(
//	    server.WithName("swapid"),
//	    server.WithStats(client.Stats()),
//	    server.WithCache(client.Cache()),
//	    server.WithQueue(queue),
//	)
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
