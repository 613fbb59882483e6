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

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routes builds the request multiplexer.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Application endpoints with middleware. The root pattern matches every
	// path not registered below and answers 404 for anything but the page.
	mux.HandleFunc(pathRoot, s.withMiddleware(s.handleIndex))
	mux.HandleFunc(pathAPI, s.withoutRateLimit(s.handleAPI))
	mux.HandleFunc(pathStats, s.withMiddleware(s.handleStats))
	mux.HandleFunc(pathJobs, s.withMiddleware(s.handleJob))

	// System endpoints (no rate limiting)
	mux.HandleFunc(pathHealth, s.handleHealth)
	mux.HandleFunc(pathReady, s.handleReady)
	mux.Handle(pathMetrics, promhttp.Handler())

	return mux
}
