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
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/NVIDIA/swapi-demo/pkg/config"
)

// Serve starts the HTTP server and the cycle workers and blocks until shutdown.
func Serve(ctx context.Context, cfg *config.Config, out io.Writer, version string) error {
	app := NewApp(cfg, out)
	s := app.Server(version)

	slog.Info("starting",
		"name", Name,
		"version", version,
		"config", cfg,
	)
	slog.Info(fmt.Sprintf("server running at http://localhost:%d/", cfg.Port()))
	slog.Info("open the URL in a browser and press the button to fetch Star Wars data")
	if cfg.Debug() {
		slog.Debug("debug mode on", "timeoutMs", cfg.Timeout().Milliseconds())
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// RunOnce performs a single orchestration cycle and writes its output to out.
func RunOnce(ctx context.Context, cfg *config.Config, out io.Writer) error {
	return NewApp(cfg, out).Runner.Run(ctx)
}
