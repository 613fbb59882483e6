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

// Package cli implements the swapid command line.
//
// # Commands
//
// serve - Serve the demo page and run cycles on request (default):
//
//	swapid
//	swapid --no-debug --timeout 3000 serve
//
// Starts the HTTP server. Each GET /api queues one cycle; its output is
// printed to the console.
//
// run - Run one cycle and exit:
//
//	swapid --format yaml run
//
// # Global Flags
//
//	--no-debug              Disable debug output
//	--timeout               Per-request timeout in milliseconds (default: 5000)
//	--port                  Listening port (default: 3000, PORT env wins)
//	--base-url              API root (default: https://swapi.dev/api)
//	--insecure-skip-verify  Skip TLS certificate validation
//	--continue-on-error     Run every presenter even after a failure
//	--workers               Concurrent cycles (default: 1)
//	--queue-size            Cycles waiting for a worker (default: 16)
//	--format, -t            Output format: table, json, yaml (default: table)
//	--log-level             Log level when debug is off
//	--rate-limit            Requests per second (default: 100)
//	--rate-limit-burst      Burst size (default: 200)
//
// # Output Formats
//
// Table (default):
//   - Labeled lines per resource
//   - Suitable for terminal viewing
//
// JSON and YAML:
//   - One document per resource
//   - Suitable for programmatic consumption
package cli
