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
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
	"github.com/NVIDIA/swapi-demo/pkg/jobs"
	"github.com/NVIDIA/swapi-demo/pkg/serializer"
)

const (
	pathRoot    = "/"
	pathIndex   = "/index.html"
	pathAPI     = "/api"
	pathStats   = "/stats"
	pathJobs    = "/jobs/"
	pathHealth  = "/health"
	pathReady   = "/ready"
	pathMetrics = "/metrics"
)

const (
	apiAcknowledgement = "Check the server console for the results"
	notFoundMessage    = "page not found"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	APICalls  int64 `json:"api_calls" yaml:"api_calls"`
	CacheSize int   `json:"cache_size" yaml:"cache_size"`
	DataSize  int64 `json:"data_size" yaml:"data_size"`
	Errors    int64 `json:"errors" yaml:"errors"`
	Debug     bool  `json:"debug" yaml:"debug"`
	Timeout   int64 `json:"timeout" yaml:"timeout"`
}

// pageData feeds the index template.
type pageData struct {
	APICalls      int64
	CacheSize     int
	Errors        int64
	Debug         bool
	TimeoutMillis int64
}

func (s *Server) statsResponse() StatsResponse {
	snap := s.stats.Snapshot()
	return StatsResponse{
		APICalls:  snap.Runs,
		CacheSize: s.cache.Len(),
		DataSize:  snap.DataSize,
		Errors:    snap.Errors,
		Debug:     s.debug,
		Timeout:   s.fetchTimeout.Milliseconds(),
	}
}

// handleIndex serves the demo page on "/" and "/index.html". Every other
// path that reaches the catch-all pattern is answered with 404.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != pathRoot && r.URL.Path != pathIndex {
		s.handleNotFound(w, r)
		return
	}
	if !requireGet(w, r) {
		return
	}

	st := s.statsResponse()
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, pageData{
		APICalls:      st.APICalls,
		CacheSize:     st.CacheSize,
		Errors:        st.Errors,
		Debug:         st.Debug,
		TimeoutMillis: st.Timeout,
	}); err != nil {
		slog.Error("failed to render page", "error", err)
		WriteError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternal,
			"Failed to render page", true, nil)
		return
	}

	serializer.RespondHTML(w, http.StatusOK, buf.Bytes())
}

// handleAPI queues one orchestration cycle and answers without waiting for it.
func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	if s.queue == nil {
		slog.Warn("cycle dropped, no job queue configured", "requestID", RequestID(r))
		serializer.RespondText(w, http.StatusOK, apiAcknowledgement)
		return
	}

	job, err := s.queue.Submit()
	if err != nil {
		slog.Warn("cycle dropped", "error", err, "requestID", RequestID(r))
		serializer.RespondText(w, http.StatusOK, apiAcknowledgement)
		return
	}

	slog.Debug("cycle queued", "job", job.ID, "requestID", RequestID(r))
	w.Header().Set("X-Job-Id", job.ID)
	serializer.RespondText(w, http.StatusOK, apiAcknowledgement)
}

// handleStats reports the counters at the time of the request.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.statsResponse())
}

// handleJob reports the state of one queued cycle.
func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, pathJobs)
	var (
		job jobs.Job
		ok  bool
	)
	if s.queue != nil && id != "" && !strings.Contains(id, "/") {
		job, ok = s.queue.Get(id)
	}
	if !ok {
		WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
			"Job not found", false, map[string]any{"id": id})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, job)
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondText(w, http.StatusNotFound, notFoundMessage)
}
