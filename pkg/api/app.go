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

package api

import (
	"io"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/swapi-demo/pkg/config"
	"github.com/NVIDIA/swapi-demo/pkg/fetcher"
	"github.com/NVIDIA/swapi-demo/pkg/jobs"
	"github.com/NVIDIA/swapi-demo/pkg/orchestrator"
	"github.com/NVIDIA/swapi-demo/pkg/presenter"
	"github.com/NVIDIA/swapi-demo/pkg/server"
	"github.com/NVIDIA/swapi-demo/pkg/swapi"
)

// Name is the service name reported in logs and by the server.
const Name = "swapid"

// App holds the components of one process, wired from a Config.
//
// All components share one client, so every cycle reads and writes the
// same cache and counters.
type App struct {
	Config    *config.Config
	Client    *swapi.Client
	Presenter *presenter.Presenter
	Runner    *orchestrator.Runner
	Queue     *jobs.Queue
}

// NewApp wires the components described by cfg. Presenter output goes to out.
func NewApp(cfg *config.Config, out io.Writer) *App {
	reader := fetcher.NewReader(
		fetcher.WithTimeout(cfg.Timeout()),
		fetcher.WithInsecureSkipVerify(cfg.InsecureSkipVerify()),
	)

	client := swapi.NewClient(
		swapi.WithBaseURL(cfg.BaseURL()),
		swapi.WithFetcher(reader),
	)

	p := presenter.New(client,
		presenter.WithOutput(out),
		presenter.WithFormat(cfg.Format()),
	)

	runner := orchestrator.New(client, p,
		orchestrator.WithDebug(cfg.Debug()),
		orchestrator.WithContinueOnError(cfg.ContinueOnError()),
	)

	queue := jobs.New(runner, jobs.Config{
		Workers:   cfg.Workers(),
		QueueSize: cfg.QueueSize(),
	})

	return &App{
		Config:    cfg,
		Client:    client,
		Presenter: p,
		Runner:    runner,
		Queue:     queue,
	}
}

// Server builds the HTTP server for the app.
func (a *App) Server(version string) *server.Server {
	sc := server.NewConfig()
	sc.Name = Name
	sc.Version = version
	sc.Port = a.Config.Port()
	sc.RateLimit = rate.Limit(a.Config.RateLimit())
	sc.RateLimitBurst = a.Config.RateLimitBurst()

	return server.New(
		server.WithConfig(sc),
		server.WithStats(a.Client.Stats()),
		server.WithCache(a.Client.Cache()),
		server.WithQueue(a.Queue),
		server.WithDebug(a.Config.Debug()),
		server.WithFetchTimeout(a.Config.Timeout()),
	)
}
