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

package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/swapi-demo/pkg/config"
	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	"github.com/NVIDIA/swapi-demo/pkg/serializer"
)

func newSWAPI(t *testing.T) *httptest.Server {
	t.Helper()
	bodies := map[string]string{
		"/api/people/1":   `{"name":"Luke Skywalker","height":"172","mass":"77","birth_year":"19BBY"}`,
		"/api/starships/": `{"count":1,"results":[{"name":"X-wing","cost_in_credits":"149999"}]}`,
		"/api/planets/":   `{"count":0,"results":[]}`,
		"/api/films/":     `{"count":1,"results":[{"title":"A New Hope","release_date":"1977-05-25"}]}`,
		"/api/vehicles/1": `{"name":"Sand Crawler","cost_in_credits":"150000"}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd(io.Discard)

	assert.Equal(t, name, root.Name)
	assert.NotNil(t, root.Action)
	assert.NotNil(t, root.Before)

	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "run"}, names)

	flags := make(map[string]bool)
	for _, f := range root.Flags {
		for _, n := range f.Names() {
			flags[n] = true
		}
	}
	for _, want := range []string{
		flagNoDebug, flagTimeout, flagPort, flagBaseURL, flagInsecureSkipVerify,
		flagContinueOnError, flagWorkers, flagQueueSize, flagFormat, flagLogLevel,
		flagRateLimit, flagRateLimitBurst,
	} {
		assert.True(t, flags[want], "missing flag %s", want)
	}
}

func TestRunCommand(t *testing.T) {
	t.Setenv(config.EnvPort, "")
	srv := newSWAPI(t)

	var out bytes.Buffer
	err := newRootCmd(&out).Run(context.Background(), []string{
		name, "--no-debug", "--base-url", srv.URL + "/api", "run",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Luke Skywalker")
	assert.Contains(t, out.String(), "Sand Crawler")
}

func TestRunCommandJSON(t *testing.T) {
	t.Setenv(config.EnvPort, "")
	srv := newSWAPI(t)

	var out bytes.Buffer
	err := newRootCmd(&out).Run(context.Background(), []string{
		name, "--no-debug", "--format", "json", "--base-url", srv.URL + "/api", "run",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"name": "Luke Skywalker"`)
}

func TestRunCommandInvalidTimeout(t *testing.T) {
	t.Setenv(config.EnvPort, "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero", []string{name, "--timeout", "0", "run"}, "timeout"},
		{"negative", []string{name, "--timeout=-10", "run"}, "timeout"},
		{"not a number", []string{name, "--timeout", "soon", "run"}, "timeout"},
		{"bad format", []string{name, "--format", "xml", "run"}, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd(io.Discard)
			root.Writer = io.Discard
			root.ErrWriter = io.Discard
			err := root.Run(context.Background(), tt.args)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), tt.want)
		})
	}
}

func TestConfigFromCommand(t *testing.T) {
	t.Setenv(config.EnvPort, "9999")

	var got *config.Config
	cmd := &cli.Command{
		Flags: globalFlags(),
		Action: func(_ context.Context, c *cli.Command) error {
			var err error
			got, err = configFromCommand(c)
			return err
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{
		"test", "--timeout", "1200", "--port", "8080", "--no-debug", "--format", "yaml",
		"--continue-on-error", "--workers", "3",
	}))
	require.NotNil(t, got)
	assert.Equal(t, 1200*time.Millisecond, got.Timeout())
	assert.Equal(t, 9999, got.Port(), "PORT environment variable wins over --port")
	assert.False(t, got.Debug())
	assert.Equal(t, serializer.FormatYAML, got.Format())
	assert.True(t, got.ContinueOnError())
	assert.Equal(t, 3, got.Workers())
	assert.Equal(t, defaults.APIBaseURL, got.BaseURL())
}
