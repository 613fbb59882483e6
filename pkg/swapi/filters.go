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

package swapi

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/swapi-demo/pkg/defaults"
)

// ParseCount parses a numeric API field such as a population or diameter.
// It reports false for "unknown", "n/a" and anything else that is not a
// non-negative integer.
func ParseCount(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == Unknown || s == NotApplicable {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// IsLargePopulatedPlanet reports whether both the population and the diameter
// of p are known and exceed defaults.MinPopulation and defaults.MinDiameter.
func IsLargePopulatedPlanet(p Planet) bool {
	population, ok := ParseCount(p.Population)
	if !ok || population <= defaults.MinPopulation {
		return false
	}
	diameter, ok := ParseCount(p.Diameter)
	return ok && diameter > defaults.MinDiameter
}

// LargePopulatedPlanets filters planets with IsLargePopulatedPlanet,
// preserving order.
func LargePopulatedPlanets(planets []Planet) []Planet {
	out := make([]Planet, 0, len(planets))
	for _, p := range planets {
		if IsLargePopulatedPlanet(p) {
			out = append(out, p)
		}
	}
	return out
}

const releaseDateLayout = time.DateOnly

// SortFilmsByReleaseDate returns a copy of films ordered by ascending release
// date. Films with a missing or malformed date sort last, in input order.
func SortFilmsByReleaseDate(films []Film) []Film {
	sorted := slices.Clone(films)
	slices.SortStableFunc(sorted, func(a, b Film) int {
		ta, errA := time.Parse(releaseDateLayout, a.ReleaseDate)
		tb, errB := time.Parse(releaseDateLayout, b.ReleaseDate)
		switch {
		case errA != nil && errB != nil:
			return 0
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		default:
			return ta.Compare(tb)
		}
	})
	return sorted
}
