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
	"io"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/swapi-demo/pkg/api"
)

func serveCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the demo page and run cycles on request (default)",
		Description: `Start the HTTP server. GET /api queues one cycle whose output is
printed to the console; GET /stats reports the counters as JSON.

The port is taken from the PORT environment variable, then --port,
then 3000.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := configFromCommand(cmd)
			if err != nil {
				return err
			}
			return api.Serve(ctx, cfg, out, version)
		},
	}
}
