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

// Package stats tracks the counters reported by /stats and the HTML footer.
//
// A Stats value is owned by whoever builds the service and is handed to every
// component that updates it, so tests can start from a fresh instance.
package stats

import "sync/atomic"

// Stats holds process-lifetime counters. The zero value is ready to use.
type Stats struct {
	runs     atomic.Int64
	errors   atomic.Int64
	dataSize atomic.Int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Runs     int64 `json:"runs" yaml:"runs"`
	Errors   int64 `json:"errors" yaml:"errors"`
	DataSize int64 `json:"dataSize" yaml:"dataSize"`
}

// New returns zeroed counters.
func New() *Stats {
	return &Stats{}
}

// IncRuns records the start of an orchestration cycle.
func (s *Stats) IncRuns() int64 {
	return s.runs.Add(1)
}

// IncErrors records a failed API call.
func (s *Stats) IncErrors() int64 {
	return s.errors.Add(1)
}

// AddDataSize adds n bytes of successfully parsed payload.
func (s *Stats) AddDataSize(n int) int64 {
	return s.dataSize.Add(int64(n))
}

func (s *Stats) Runs() int64 { return s.runs.Load() }
func (s *Stats) Errors() int64 { return s.errors.Load() }
func (s *Stats) DataSize() int64 { return s.dataSize.Load() }

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Runs:     s.runs.Load(),
		Errors:   s.errors.Load(),
		DataSize: s.dataSize.Load(),
	}
}
