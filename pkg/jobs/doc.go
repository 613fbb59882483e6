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

// Package jobs runs orchestration cycles in the background.
//
// HTTP handlers submit a cycle and return at once with the job id; a fixed
// pool of workers drains the queue. Job records can be polled by id until
// they age out of the bounded history.
//
//	q := jobs.New(runner, jobs.Config{Workers: 1, QueueSize: 16})
//	go q.Run(ctx)
//	job, err := q.Submit()
//	if errors.Is(err, jobs.ErrQueueFull) {
//		// shed load
//	}
package jobs
