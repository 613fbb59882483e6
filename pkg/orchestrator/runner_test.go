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
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
	"github.com/NVIDIA/swapi-demo/pkg/presenter"
	"github.com/NVIDIA/swapi-demo/pkg/swapi"
)

const testBaseURL = "https://example.test/api"

type fakeFetcher struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, strings.TrimPrefix(url, testBaseURL+"/"))
	body, ok := f.bodies[url]
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeHTTPStatus, "request failed",
			map[string]any{apperrors.ContextKeyStatus: 404, "url": url})
	}
	return []byte(body), nil
}

func (f *fakeFetcher) set(endpoint, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies[testBaseURL+"/"+endpoint] = body
}

func (f *fakeFetcher) endpoints() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newFakeFetcher() *fakeFetcher {
	f := &fakeFetcher{bodies: map[string]string{}}
	for id := 1; id <= 10; id++ {
		f.set(swapi.CharacterEndpoint(id), `{"name":"person","films":["f1"]}`)
		f.set(swapi.VehicleEndpoint(id), `{"name":"vehicle","cost_in_credits":"10"}`)
	}
	f.set(swapi.StarshipsEndpoint, `{"count":1,"results":[{"name":"X-wing"}]}`)
	f.set(swapi.PlanetsEndpoint, `{"count":0,"results":[]}`)
	f.set(swapi.FilmsEndpoint, `{"count":1,"results":[{"title":"A New Hope","release_date":"1977-05-25"}]}`)
	return f
}

func newTestRunner(f *fakeFetcher, opts ...Option) (*Runner, *swapi.Client, *bytes.Buffer) {
	client := swapi.NewClient(swapi.WithBaseURL(testBaseURL), swapi.WithFetcher(f))
	var buf bytes.Buffer
	p := presenter.New(client, presenter.WithOutput(&buf))
	return New(client, p, opts...), client, &buf
}

func TestRunOrder(t *testing.T) {
	f := newFakeFetcher()
	r, client, _ := newTestRunner(f)

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{
		"people/1",
		"starships/?page=1",
		"planets/?page=1",
		"films/",
		"vehicles/1",
	}, f.endpoints())

	snap := client.Stats().Snapshot()
	assert.Equal(t, int64(1), snap.Runs)
	assert.Zero(t, snap.Errors)
	assert.Positive(t, snap.DataSize)
	assert.Equal(t, 5, client.Cache().Len())
}

func TestRunAdvancesCursors(t *testing.T) {
	f := newFakeFetcher()
	r, _, _ := newTestRunner(f)

	require.NoError(t, r.Run(context.Background()))
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 3, r.CharacterID())
	assert.Equal(t, 3, r.VehicleID())
}

func TestRunStopsFeaturingVehiclesAfterMax(t *testing.T) {
	f := newFakeFetcher()
	r, client, _ := newTestRunner(f)

	for range 6 {
		require.NoError(t, r.Run(context.Background()))
	}

	var vehicles int
	for _, e := range f.endpoints() {
		if strings.HasPrefix(e, "vehicles/") {
			vehicles++
		}
	}
	assert.Equal(t, 4, vehicles)
	assert.Equal(t, 5, r.VehicleID())
	assert.Equal(t, 7, r.CharacterID())
	assert.Equal(t, int64(6), client.Stats().Runs())
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	f := newFakeFetcher()
	f.mu.Lock()
	delete(f.bodies, testBaseURL+"/"+swapi.StarshipsEndpoint)
	f.mu.Unlock()
	r, client, _ := newTestRunner(f)

	err := r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeHTTPStatus))
	assert.Equal(t, []string{"people/1", "starships/?page=1"}, f.endpoints())

	// counted once, by the client
	assert.Equal(t, int64(1), client.Stats().Errors())
	assert.Equal(t, int64(1), client.Stats().Runs())
	assert.Equal(t, 2, r.CharacterID())
	assert.Equal(t, 1, r.VehicleID())
}

func TestRunFailedCharacterIsRetried(t *testing.T) {
	f := newFakeFetcher()
	f.set(swapi.CharacterEndpoint(1), `{"name":`)
	r, _, _ := newTestRunner(f)

	err := r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeJSONParse))
	assert.Equal(t, 1, r.CharacterID())

	f.set(swapi.CharacterEndpoint(1), `{"name":"Luke Skywalker"}`)
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 2, r.CharacterID())
}

func TestRunSkipsMissingCharacter(t *testing.T) {
	f := newFakeFetcher()
	f.mu.Lock()
	delete(f.bodies, testBaseURL+"/"+swapi.CharacterEndpoint(2))
	f.mu.Unlock()
	r, client, _ := newTestRunner(f)

	require.NoError(t, r.Run(context.Background()))
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 4, r.CharacterID())
	assert.Contains(t, f.endpoints(), "people/3")
	assert.Equal(t, int64(1), client.Stats().Errors())
}

func TestRunWrapsAfterLastCharacter(t *testing.T) {
	f := newFakeFetcher()
	r, client, _ := newTestRunner(f)

	for cycle := 1; cycle <= 15; cycle++ {
		require.NoError(t, r.Run(context.Background()), "cycle %d", cycle)
	}

	// ids 11 to 14 are missing, then the cursor wraps to 1 and continues
	assert.Equal(t, 6, r.CharacterID())
	assert.Equal(t, int64(4), client.Stats().Errors())
	assert.Equal(t, int64(15), client.Stats().Runs())
	assert.Contains(t, f.endpoints(), "people/14")
	assert.NotContains(t, f.endpoints(), "people/15")
}

func TestRunNoCharactersAvailable(t *testing.T) {
	f := newFakeFetcher()
	f.mu.Lock()
	for id := 1; id <= 10; id++ {
		delete(f.bodies, testBaseURL+"/"+swapi.CharacterEndpoint(id))
	}
	f.mu.Unlock()
	r, _, _ := newTestRunner(f)

	err := r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeHTTPStatus))
	assert.Equal(t, 1, r.CharacterID())
	assert.Equal(t, []string{"people/1", "people/2", "people/3", "people/4"}, f.endpoints())
}

func TestRunContinueOnError(t *testing.T) {
	f := newFakeFetcher()
	f.mu.Lock()
	delete(f.bodies, testBaseURL+"/"+swapi.StarshipsEndpoint)
	delete(f.bodies, testBaseURL+"/"+swapi.FilmsEndpoint)
	f.mu.Unlock()
	r, client, _ := newTestRunner(f, WithContinueOnError(true))

	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Len(t, f.endpoints(), 5)
	assert.Equal(t, int64(2), client.Stats().Errors())
	assert.Equal(t, 2, r.VehicleID())
}

func TestRunWithOptions(t *testing.T) {
	f := newFakeFetcher()
	r, _, _ := newTestRunner(f, WithDebug(false), WithMaxVehicleID(2), WithStartIDs(5, 3))

	assert.False(t, r.Debug())
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 6, r.CharacterID())
	assert.Equal(t, 3, r.VehicleID())
	assert.NotContains(t, f.endpoints(), "vehicles/3")
}

func TestRunUsesCacheOnRepeat(t *testing.T) {
	f := newFakeFetcher()
	r, _, _ := newTestRunner(f)

	require.NoError(t, r.Run(context.Background()))
	require.NoError(t, r.Run(context.Background()))

	var starships int
	for _, e := range f.endpoints() {
		if e == swapi.StarshipsEndpoint {
			starships++
		}
	}
	assert.Equal(t, 1, starships)
}

func TestRunConcurrentCycles(t *testing.T) {
	f := newFakeFetcher()
	r, client, _ := newTestRunner(f)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Run(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(4), client.Stats().Runs())
	assert.LessOrEqual(t, r.CharacterID(), 5)
	assert.GreaterOrEqual(t, r.CharacterID(), 2)
}
