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

import "fmt"

// Endpoint identifiers used by the orchestration cycle. Each one is also the
// cache key for its response.
const (
	StarshipsEndpoint = "starships/?page=1"
	PlanetsEndpoint   = "planets/?page=1"
	FilmsEndpoint     = "films/"
)

// CharacterEndpoint returns the identifier for a single person.
func CharacterEndpoint(id int) string {
	return fmt.Sprintf("people/%d", id)
}

// VehicleEndpoint returns the identifier for a single vehicle.
func VehicleEndpoint(id int) string {
	return fmt.Sprintf("vehicles/%d", id)
}

// Unknown is the value the API uses for facts it does not have.
const Unknown = "unknown"

// NotApplicable is the value the API uses for facts that do not apply.
const NotApplicable = "n/a"

// Page is one page of a list endpoint.
type Page[T any] struct {
	Count    int     `json:"count" yaml:"count"`
	Next     *string `json:"next" yaml:"next"`
	Previous *string `json:"previous" yaml:"previous"`
	Results  []T     `json:"results" yaml:"results"`
}

// Character is a person resource.
type Character struct {
	Name      string   `json:"name" yaml:"name"`
	Height    string   `json:"height" yaml:"height"`
	Mass      string   `json:"mass" yaml:"mass"`
	HairColor string   `json:"hair_color" yaml:"hair_color"`
	SkinColor string   `json:"skin_color" yaml:"skin_color"`
	EyeColor  string   `json:"eye_color" yaml:"eye_color"`
	BirthYear string   `json:"birth_year" yaml:"birth_year"`
	Gender    string   `json:"gender" yaml:"gender"`
	Homeworld string   `json:"homeworld" yaml:"homeworld"`
	Films     []string `json:"films" yaml:"films"`
	Species   []string `json:"species" yaml:"species"`
	Vehicles  []string `json:"vehicles" yaml:"vehicles"`
	Starships []string `json:"starships" yaml:"starships"`
	URL       string   `json:"url" yaml:"url"`
}

// Starship is a starship resource.
type Starship struct {
	Name                 string   `json:"name" yaml:"name"`
	Model                string   `json:"model" yaml:"model"`
	Manufacturer         string   `json:"manufacturer" yaml:"manufacturer"`
	CostInCredits        string   `json:"cost_in_credits" yaml:"cost_in_credits"`
	Length               string   `json:"length" yaml:"length"`
	MaxAtmospheringSpeed string   `json:"max_atmosphering_speed" yaml:"max_atmosphering_speed"`
	Crew                 string   `json:"crew" yaml:"crew"`
	Passengers           string   `json:"passengers" yaml:"passengers"`
	CargoCapacity        string   `json:"cargo_capacity" yaml:"cargo_capacity"`
	HyperdriveRating     string   `json:"hyperdrive_rating" yaml:"hyperdrive_rating"`
	MGLT                 string   `json:"MGLT" yaml:"MGLT"`
	StarshipClass        string   `json:"starship_class" yaml:"starship_class"`
	Pilots               []string `json:"pilots" yaml:"pilots"`
	Films                []string `json:"films" yaml:"films"`
	URL                  string   `json:"url" yaml:"url"`
}

// Planet is a planet resource.
type Planet struct {
	Name           string   `json:"name" yaml:"name"`
	RotationPeriod string   `json:"rotation_period" yaml:"rotation_period"`
	OrbitalPeriod  string   `json:"orbital_period" yaml:"orbital_period"`
	Diameter       string   `json:"diameter" yaml:"diameter"`
	Climate        string   `json:"climate" yaml:"climate"`
	Gravity        string   `json:"gravity" yaml:"gravity"`
	Terrain        string   `json:"terrain" yaml:"terrain"`
	SurfaceWater   string   `json:"surface_water" yaml:"surface_water"`
	Population     string   `json:"population" yaml:"population"`
	Residents      []string `json:"residents" yaml:"residents"`
	Films          []string `json:"films" yaml:"films"`
	URL            string   `json:"url" yaml:"url"`
}

// Film is a film resource.
type Film struct {
	Title        string   `json:"title" yaml:"title"`
	EpisodeID    int      `json:"episode_id" yaml:"episode_id"`
	OpeningCrawl string   `json:"opening_crawl" yaml:"-"`
	Director     string   `json:"director" yaml:"director"`
	Producer     string   `json:"producer" yaml:"producer"`
	ReleaseDate  string   `json:"release_date" yaml:"release_date"`
	Characters   []string `json:"characters" yaml:"characters"`
	Planets      []string `json:"planets" yaml:"planets"`
	Starships    []string `json:"starships" yaml:"starships"`
	Vehicles     []string `json:"vehicles" yaml:"vehicles"`
	Species      []string `json:"species" yaml:"species"`
	URL          string   `json:"url" yaml:"url"`
}

// Vehicle is a vehicle resource.
type Vehicle struct {
	Name                 string   `json:"name" yaml:"name"`
	Model                string   `json:"model" yaml:"model"`
	Manufacturer         string   `json:"manufacturer" yaml:"manufacturer"`
	CostInCredits        string   `json:"cost_in_credits" yaml:"cost_in_credits"`
	Length               string   `json:"length" yaml:"length"`
	MaxAtmospheringSpeed string   `json:"max_atmosphering_speed" yaml:"max_atmosphering_speed"`
	Crew                 string   `json:"crew" yaml:"crew"`
	Passengers           string   `json:"passengers" yaml:"passengers"`
	CargoCapacity        string   `json:"cargo_capacity" yaml:"cargo_capacity"`
	VehicleClass         string   `json:"vehicle_class" yaml:"vehicle_class"`
	Pilots               []string `json:"pilots" yaml:"pilots"`
	Films                []string `json:"films" yaml:"films"`
	URL                  string   `json:"url" yaml:"url"`
}
