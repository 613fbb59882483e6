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

package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
	"github.com/NVIDIA/swapi-demo/pkg/presenter"
	"github.com/NVIDIA/swapi-demo/pkg/swapi"
)

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithDebug enables the end-of-cycle statistics summary.
func WithDebug(debug bool) Option {
	return func(r *Runner) {
		r.debug = debug
	}
}

// WithContinueOnError makes a cycle run every presenter even after one fails.
// The cycle then returns all failures joined.
func WithContinueOnError(continueOnError bool) Option {
	return func(r *Runner) {
		r.continueOnError = continueOnError
	}
}

// WithMaxVehicleID sets the last vehicle id the cycle features.
func WithMaxVehicleID(id int) Option {
	return func(r *Runner) {
		r.maxVehicleID = int64(id)
	}
}

// WithStartIDs sets the initial character and vehicle cursors.
func WithStartIDs(characterID, vehicleID int) Option {
	return func(r *Runner) {
		r.characterID.Store(int64(characterID))
		r.vehicleID.Store(int64(vehicleID))
	}
}

// Runner executes orchestration cycles.
//
// The character and vehicle cursors are independent. Each advances only after
// its own presenter succeeds, so a failed render is retried with the same id
// on the next cycle. A character id the API reports as missing (404) is
// skipped; after a run of missing ids the cursor wraps to the first id. Once
// the vehicle cursor passes the maximum the vehicle step is skipped for the
// life of the Runner.
type Runner struct {
	client    *swapi.Client
	presenter *presenter.Presenter

	debug           bool
	continueOnError bool
	maxVehicleID    int64

	characterID atomic.Int64
	vehicleID   atomic.Int64
}

// New creates a Runner that renders through p. client must be the client p
// fetches with; its counters and cache back the statistics summary.
func New(client *swapi.Client, p *presenter.Presenter, opts ...Option) *Runner {
	r := &Runner{
		client:       client,
		presenter:    p,
		debug:        true,
		maxVehicleID: defaults.MaxVehicleID,
	}
	r.characterID.Store(defaults.FirstResourceID)
	r.vehicleID.Store(defaults.FirstResourceID)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Debug reports whether debug output is enabled.
func (r *Runner) Debug() bool {
	return r.debug
}

// CharacterID returns the id the next cycle will render.
func (r *Runner) CharacterID() int {
	return int(r.characterID.Load())
}

// VehicleID returns the vehicle id the next cycle will render.
func (r *Runner) VehicleID() int {
	return int(r.vehicleID.Load())
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

func (r *Runner) steps() []step {
	return []step{
		{name: "character", run: r.character},
		{name: "starships", run: func(ctx context.Context) error {
			_, err := r.presenter.Starships(ctx)
			return err
		}},
		{name: "planets", run: func(ctx context.Context) error {
			_, err := r.presenter.LargePopulatedPlanets(ctx)
			return err
		}},
		{name: "films", run: func(ctx context.Context) error {
			_, err := r.presenter.FilmsChronologically(ctx)
			return err
		}},
		{name: "vehicle", run: r.vehicle},
	}
}

func (r *Runner) character(ctx context.Context) error {
	id := r.characterID.Load()

	var err error
	for _, candidate := range characterCandidates(id) {
		if _, err = r.presenter.Character(ctx, int(candidate)); err == nil {
			// Concurrent cycles rendering the same id advance the cursor once.
			r.characterID.CompareAndSwap(id, candidate+1)
			return nil
		}
		if !isMissing(err) {
			return err
		}
		slog.Debug("character not found, skipping", "id", candidate)
	}
	return err
}

// characterCandidates lists the ids tried for one character render: the
// cursor, the ids following it up to the skip limit, then the first id.
func characterCandidates(id int64) []int64 {
	ids := make([]int64, 0, defaults.MaxMissingCharacters+2)
	for i := int64(0); i <= defaults.MaxMissingCharacters; i++ {
		ids = append(ids, id+i)
	}
	if id != defaults.FirstResourceID {
		ids = append(ids, defaults.FirstResourceID)
	}
	return ids
}

func isMissing(err error) bool {
	status, ok := apperrors.HTTPStatus(err)
	return ok && status == http.StatusNotFound
}

func (r *Runner) vehicle(ctx context.Context) error {
	id := r.vehicleID.Load()
	if id > r.maxVehicleID {
		slog.Debug("featured vehicles exhausted", "id", id, "max", r.maxVehicleID)
		return nil
	}
	if _, err := r.presenter.Vehicle(ctx, int(id)); err != nil {
		return err
	}
	r.vehicleID.CompareAndSwap(id, id+1)
	return nil
}

// Run performs one orchestration cycle: character, starships, large planets,
// films in release order and the featured vehicle, strictly in that order.
//
// The run counter is incremented before any fetch. Failures are already
// counted by the client, so Run only logs them. By default the cycle stops at
// the first failure and returns it.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	run := r.client.Stats().IncRuns()
	slog.Debug("starting data fetch", "run", run)

	var errs []error
	for _, s := range r.steps() {
		stepStart := time.Now()
		err := s.run(ctx)
		stepDuration.WithLabelValues(s.name).Observe(time.Since(stepStart).Seconds())
		if err == nil {
			continue
		}

		slog.Error("presenter failed", "step", s.name, "run", run, "error", err)
		if !r.continueOnError {
			observeCycle(start, err)
			return err
		}
		errs = append(errs, err)
	}

	err := errors.Join(errs...)
	observeCycle(start, err)

	if r.debug {
		r.logSummary()
	}
	return err
}

func (r *Runner) logSummary() {
	snap := r.client.Stats().Snapshot()
	slog.Info("statistics",
		"api_calls", snap.Runs,
		"cache_size", r.client.Cache().Len(),
		"data_size", snap.DataSize,
		"errors", snap.Errors)
	slog.Debug("cached endpoints", "keys", r.client.Cache().Keys())
}
