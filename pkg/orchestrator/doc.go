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

// Package orchestrator runs the SWAPI demonstration cycle.
//
// A cycle runs five presenters in a fixed sequence:
//
//  1. the character at the current character cursor
//  2. the first starships
//  3. the large, populated planets
//  4. the films in release order
//  5. the vehicle at the current vehicle cursor, while it is within range
//
// Usage:
//
//	client := swapi.NewClient()
//	runner := orchestrator.New(client, presenter.New(client))
//	if err := runner.Run(ctx); err != nil {
//		// already logged and counted
//	}
//
// Each cycle increments the run counter before any network activity. With
// debug enabled a statistics summary is logged at the end of the cycle.
package orchestrator
