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

package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swapi_job_queue_depth",
			Help: "Number of cycles waiting for a worker",
		},
	)

	jobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swapi_jobs_total",
			Help: "Total number of submitted jobs by outcome",
		},
		[]string{"outcome"}, // succeeded, failed, rejected
	)

	jobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "swapi_job_duration_seconds",
			Help:    "Time taken to run a queued cycle",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 120},
		},
	)
)
