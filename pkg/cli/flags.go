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
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/swapi-demo/pkg/config"
	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	"github.com/NVIDIA/swapi-demo/pkg/serializer"
)

const (
	flagNoDebug            = "no-debug"
	flagTimeout            = "timeout"
	flagPort               = "port"
	flagBaseURL            = "base-url"
	flagInsecureSkipVerify = "insecure-skip-verify"
	flagContinueOnError    = "continue-on-error"
	flagWorkers            = "workers"
	flagQueueSize          = "queue-size"
	flagFormat             = "format"
	flagLogLevel           = "log-level"
	flagRateLimit          = "rate-limit"
	flagRateLimitBurst     = "rate-limit-burst"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    flagNoDebug,
			Usage:   "Disable debug output and the end-of-cycle statistics summary",
			Sources: cli.EnvVars("SWAPI_NO_DEBUG"),
		},
		&cli.IntFlag{
			Name:    flagTimeout,
			Usage:   "Timeout for each API request in milliseconds",
			Sources: cli.EnvVars("SWAPI_TIMEOUT"),
			Value:   int(defaults.FetchTimeout.Milliseconds()),
		},
		&cli.IntFlag{
			Name:  flagPort,
			Usage: "Port to listen on (the PORT environment variable takes precedence)",
			Value: defaults.ServerPort,
		},
		&cli.StringFlag{
			Name:    flagBaseURL,
			Usage:   "Root URL of the Star Wars API",
			Sources: cli.EnvVars("SWAPI_BASE_URL"),
			Value:   defaults.APIBaseURL,
		},
		&cli.BoolFlag{
			Name:  flagInsecureSkipVerify,
			Usage: "Skip TLS certificate validation for API requests (not recommended)",
		},
		&cli.BoolFlag{
			Name:  flagContinueOnError,
			Usage: "Keep running the remaining presenters of a cycle after one fails",
		},
		&cli.IntFlag{
			Name:  flagWorkers,
			Usage: "Number of cycles that may run at the same time",
			Value: defaults.JobWorkers,
		},
		&cli.IntFlag{
			Name:  flagQueueSize,
			Usage: "Number of cycles that may wait for a worker",
			Value: defaults.JobQueueSize,
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"t"},
			Usage:   "Presenter output format: table, json, yaml",
			Value:   string(serializer.FormatTable),
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level when debug is off (debug, info, warn, error)",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.FloatFlag{
			Name:  flagRateLimit,
			Usage: "Sustained requests per second accepted by the server",
			Value: defaults.RateLimit,
		},
		&cli.IntFlag{
			Name:  flagRateLimitBurst,
			Usage: "Requests accepted above the sustained rate",
			Value: defaults.RateLimitBurst,
		},
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String(flagFormat))
}

// configFromCommand resolves the process configuration from parsed flags.
func configFromCommand(cmd *cli.Command) (*config.Config, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}

	return config.New(
		config.WithDebug(!cmd.Bool(flagNoDebug)),
		config.WithTimeoutMillis(cmd.Int(flagTimeout)),
		config.WithPort(cmd.Int(flagPort)),
		config.WithBaseURL(cmd.String(flagBaseURL)),
		config.WithInsecureSkipVerify(cmd.Bool(flagInsecureSkipVerify)),
		config.WithContinueOnError(cmd.Bool(flagContinueOnError)),
		config.WithWorkers(cmd.Int(flagWorkers)),
		config.WithQueueSize(cmd.Int(flagQueueSize)),
		config.WithFormat(format),
		config.WithLogLevel(cmd.String(flagLogLevel)),
		config.WithRateLimit(cmd.Float(flagRateLimit), cmd.Int(flagRateLimitBurst)),
	)
}
