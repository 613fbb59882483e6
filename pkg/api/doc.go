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

// Package api wires the SWAPI demo components into a running service.
//
// NewApp builds one fetcher, one cache-backed client and the presenters,
// orchestrator and job queue on top of it. Serve runs the HTTP server over
// that App; RunOnce performs a single cycle for command-line use.
//
// Usage:
//
//	cfg, err := config.New(config.WithTimeoutMillis(3000))
//	if err != nil {
//		return err
//	}
//	return api.Serve(ctx, cfg, os.Stdout, version)
//
// # Endpoints
//
// See the server package for the route table. In short:
//   - GET /, /index.html - demo page
//   - GET /api           - queue one cycle
//   - GET /stats         - statistics snapshot
//   - GET /jobs/{id}     - cycle status
//   - GET /health, /ready, /metrics
//
// # Configuration
//
// The listening port comes from the PORT environment variable, then the
// --port flag, then 3000. LOG_LEVEL sets the log level when debug mode is off.
package api
