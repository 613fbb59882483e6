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
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
)

// ErrQueueFull is returned by Submit when no more cycles can wait.
var ErrQueueFull = apperrors.New(apperrors.ErrCodeUnavailable, "job queue is full")

// State is the lifecycle state of a job.
type State string

const (
	StateQueued    State = "queued"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Done reports whether s is a terminal state.
func (s State) Done() bool {
	return s == StateSucceeded || s == StateFailed
}

// Job is a point-in-time copy of one submitted cycle.
type Job struct {
	ID          string     `json:"id" yaml:"id"`
	State       State      `json:"state" yaml:"state"`
	Error       string     `json:"error,omitempty" yaml:"error,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at" yaml:"submitted_at"`
	StartedAt   *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
}

// Cycle is the unit of work a job runs.
type Cycle interface {
	Run(ctx context.Context) error
}

// Config configures a Queue. Zero values take the package defaults.
type Config struct {
	Workers      int
	QueueSize    int
	HistorySize  int
	CycleTimeout time.Duration
}

// Queue runs submitted cycles on a fixed pool of workers.
//
// Submit never blocks. Finished jobs are kept for polling until more than
// HistorySize jobs are known, then the oldest finished ones are dropped.
type Queue struct {
	cycle Cycle
	cfg   Config
	tasks chan string

	mu    sync.Mutex
	jobs  map[string]*Job
	order []string
}

// New creates a Queue that runs cycle for every submitted job.
func New(cycle Cycle, cfg Config) *Queue {
	if cfg.Workers <= 0 {
		cfg.Workers = defaults.JobWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaults.JobQueueSize
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = defaults.JobHistorySize
	}
	if cfg.CycleTimeout <= 0 {
		cfg.CycleTimeout = defaults.CycleTimeout
	}
	return &Queue{
		cycle: cycle,
		cfg:   cfg,
		tasks: make(chan string, cfg.QueueSize),
		jobs:  make(map[string]*Job),
	}
}

// Config returns the effective configuration.
func (q *Queue) Config() Config {
	return q.cfg
}

// Submit enqueues one cycle and returns its job without waiting for it to
// run. It returns ErrQueueFull when the queue is at capacity.
func (q *Queue) Submit() (Job, error) {
	job := &Job{
		ID:          uuid.New().String(),
		State:       StateQueued,
		SubmittedAt: time.Now().UTC(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	select {
	case q.tasks <- job.ID:
	default:
		jobsTotal.WithLabelValues("rejected").Inc()
		slog.Warn("job queue full", "capacity", q.cfg.QueueSize)
		return Job{}, ErrQueueFull
	}

	q.jobs[job.ID] = job
	q.order = append(q.order, job.ID)
	q.prune()
	queueDepth.Set(float64(q.Pending()))

	slog.Debug("job queued", "id", job.ID)
	return *job, nil
}

// Get returns the job with the given id.
func (q *Queue) Get(id string) (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	job, ok := q.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// Pending returns the number of jobs waiting for a worker.
func (q *Queue) Pending() int {
	return len(q.tasks)
}

// Run starts the workers and blocks until ctx is canceled and every worker
// has returned. Canceling ctx also cancels cycles in flight.
func (q *Queue) Run(ctx context.Context) error {
	slog.Info("job workers started", "workers", q.cfg.Workers, "queue_size", q.cfg.QueueSize)

	var wg sync.WaitGroup
	for i := 0; i < q.cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			q.work(ctx, worker)
		}(i)
	}
	wg.Wait()

	slog.Info("job workers stopped")
	return nil
}

func (q *Queue) work(ctx context.Context, worker int) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-q.tasks:
			queueDepth.Set(float64(q.Pending()))
			q.process(ctx, worker, id)
		}
	}
}

func (q *Queue) process(ctx context.Context, worker int, id string) {
	q.update(id, func(j *Job) {
		now := time.Now().UTC()
		j.State = StateRunning
		j.StartedAt = &now
	})
	slog.Debug("job started", "id", id, "worker", worker)

	cctx, cancel := context.WithTimeout(ctx, q.cfg.CycleTimeout)
	defer cancel()

	start := time.Now()
	err := q.cycle.Run(cctx)
	jobDuration.Observe(time.Since(start).Seconds())

	q.update(id, func(j *Job) {
		now := time.Now().UTC()
		j.FinishedAt = &now
		if err != nil {
			j.State = StateFailed
			j.Error = err.Error()
			return
		}
		j.State = StateSucceeded
	})

	if err != nil {
		jobsTotal.WithLabelValues(string(StateFailed)).Inc()
		slog.Debug("job failed", "id", id, "error", err)
		return
	}
	jobsTotal.WithLabelValues(string(StateSucceeded)).Inc()
	slog.Debug("job finished", "id", id, "duration", time.Since(start))
}

func (q *Queue) update(id string, fn func(*Job)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if job, ok := q.jobs[id]; ok {
		fn(job)
	}
	q.prune()
}

// prune drops the oldest finished jobs beyond the history size.
// Callers must hold q.mu.
func (q *Queue) prune() {
	excess := len(q.order) - q.cfg.HistorySize
	if excess <= 0 {
		return
	}
	kept := q.order[:0]
	for _, id := range q.order {
		if excess > 0 && q.jobs[id].State.Done() {
			delete(q.jobs, id)
			excess--
			continue
		}
		kept = append(kept, id)
	}
	q.order = kept
}
