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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/swapi-demo/pkg/logging"
)

const (
	name           = "swapid"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the command line and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd(os.Stdout).Run(ctx, args)
}

// newRootCmd builds the command tree. Presenter output goes to out.
// Without a subcommand the root command serves HTTP.
func newRootCmd(out io.Writer) *cli.Command {
	serve := serveCmd(out)
	return &cli.Command{
		Name:                  name,
		Usage:                 "Star Wars API demo server",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Fetches characters, starships, planets, films and vehicles from the
Star Wars API, caches every response in memory and prints a summary of each.

Cycles are started from the web page served on / or by requesting /api.
Counters are available as JSON on /stats.`,
		Flags:  globalFlags(),
		Before: initLogger,
		Action: serve.Action,
		Commands: []*cli.Command{
			serve,
			runCmd(out),
		},
	}
}

// initLogger configures slog after flags are parsed so --no-debug and
// --log-level take effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := logging.LevelForMode(!cmd.Bool(flagNoDebug), cmd.String(flagLogLevel))
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	return ctx, nil
}
