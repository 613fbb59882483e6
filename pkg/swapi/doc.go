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

// Package swapi is a cache-backed client for the Star Wars API.
//
// Endpoint identifiers are relative paths, optionally with a query string
// (for example "people/1" or "planets/?page=1"). They double as cache keys.
//
// The first call for an identifier goes to the network; every later call is
// answered from the cache with no network traffic, indefinitely. Failures
// increment the shared error counter and are returned unchanged; they are
// never cached, so the next call retries.
//
// Usage:
//
//	c := swapi.NewClient(
//	    swapi.WithBaseURL("https://swapi.dev/api"),
//	    swapi.WithStats(counters),
//	)
//	person, size, err := swapi.Resource[swapi.Character](ctx, c, swapi.CharacterEndpoint(1))
//
// The package also holds the domain rules the demo applies to the data:
// IsLargePopulatedPlanet and SortFilmsByReleaseDate.
package swapi
