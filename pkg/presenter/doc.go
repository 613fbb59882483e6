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

// Package presenter renders SWAPI resources for humans or machines.
//
// Each presenter method fetches exactly one resource through a swapi.Client,
// adds its payload size to the shared data-size counter, and writes one block
// to the configured output:
//
//   - Character: one person by id
//   - Starships: the total count plus the first three starships
//   - LargePopulatedPlanets: planets with more than a billion inhabitants
//     and a diameter above 10,000 km
//   - FilmsChronologically: every film in release order
//   - Vehicle: one vehicle by id
//
// The table format prints labeled lines with grouped digits. The json and
// yaml formats serialize the view structs through the serializer package.
package presenter
