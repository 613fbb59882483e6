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
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
)

type cycleFunc func(ctx context.Context) error

func (f cycleFunc) Run(ctx context.Context) error { return f(ctx) }

func startQueue(t *testing.T, q *Queue) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = q.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func waitForState(t *testing.T, q *Queue, id string, want State) Job {
	t.Helper()
	var job Job
	require.Eventually(t, func() bool {
		var ok bool
		job, ok = q.Get(id)
		return ok && job.State == want
	}, 2*time.Second, 5*time.Millisecond)
	return job
}

func TestNewDefaults(t *testing.T) {
	q := New(cycleFunc(func(context.Context) error { return nil }), Config{})
	cfg := q.Config()
	assert.Equal(t, defaults.JobWorkers, cfg.Workers)
	assert.Equal(t, defaults.JobQueueSize, cfg.QueueSize)
	assert.Equal(t, defaults.JobHistorySize, cfg.HistorySize)
	assert.Equal(t, defaults.CycleTimeout, cfg.CycleTimeout)
}

func TestSubmitRunsCycle(t *testing.T) {
	var runs atomic.Int32
	q := New(cycleFunc(func(context.Context) error {
		runs.Add(1)
		return nil
	}), Config{})
	startQueue(t, q)

	job, err := q.Submit()
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, StateQueued, job.State)

	done := waitForState(t, q, job.ID, StateSucceeded)
	assert.NotNil(t, done.StartedAt)
	assert.NotNil(t, done.FinishedAt)
	assert.Empty(t, done.Error)
	assert.Equal(t, int32(1), runs.Load())
}

func TestSubmitRecordsFailure(t *testing.T) {
	q := New(cycleFunc(func(context.Context) error {
		return apperrors.New(apperrors.ErrCodeTimeout, "request timed out")
	}), Config{})
	startQueue(t, q)

	job, err := q.Submit()
	require.NoError(t, err)

	failed := waitForState(t, q, job.ID, StateFailed)
	assert.Contains(t, failed.Error, "TIMEOUT")
}

func TestSubmitQueueFull(t *testing.T) {
	// No workers running, so nothing drains the buffer.
	q := New(cycleFunc(func(context.Context) error { return nil }), Config{QueueSize: 2})

	_, err := q.Submit()
	require.NoError(t, err)
	_, err = q.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, q.Pending())
	assert.InDelta(t, 2, testutil.ToFloat64(queueDepth), 0)

	rejected := testutil.ToFloat64(jobsTotal.WithLabelValues("rejected"))
	_, err = q.Submit()
	require.Error(t, err)
	assert.InDelta(t, rejected+1, testutil.ToFloat64(jobsTotal.WithLabelValues("rejected")), 0)
	assert.True(t, errors.Is(err, ErrQueueFull))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnavailable))
}

func TestSubmitDoesNotWait(t *testing.T) {
	release := make(chan struct{})
	q := New(cycleFunc(func(ctx context.Context) error {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}), Config{})
	startQueue(t, q)
	defer close(release)

	job, err := q.Submit()
	require.NoError(t, err)
	waitForState(t, q, job.ID, StateRunning)
}

func TestGetUnknown(t *testing.T) {
	q := New(cycleFunc(func(context.Context) error { return nil }), Config{})
	_, ok := q.Get("missing")
	assert.False(t, ok)
}

func TestCycleTimeout(t *testing.T) {
	q := New(cycleFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}), Config{CycleTimeout: 20 * time.Millisecond})
	startQueue(t, q)

	job, err := q.Submit()
	require.NoError(t, err)
	failed := waitForState(t, q, job.ID, StateFailed)
	assert.Contains(t, failed.Error, "deadline exceeded")
}

func TestHistoryIsBounded(t *testing.T) {
	q := New(cycleFunc(func(context.Context) error { return nil }), Config{HistorySize: 3, QueueSize: 10})
	startQueue(t, q)

	var ids []string
	for range 6 {
		job, err := q.Submit()
		require.NoError(t, err)
		ids = append(ids, job.ID)
		waitForState(t, q, job.ID, StateSucceeded)
	}

	for _, id := range ids[:3] {
		_, ok := q.Get(id)
		assert.False(t, ok, "job %s should have been dropped", id)
	}
	for _, id := range ids[3:] {
		_, ok := q.Get(id)
		assert.True(t, ok)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	q := New(cycleFunc(func(context.Context) error { return nil }), Config{Workers: 3})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- q.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
