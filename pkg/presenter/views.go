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

package presenter

import (
	"context"
	"fmt"
	"io"

	"github.com/NVIDIA/swapi-demo/pkg/defaults"
	"github.com/NVIDIA/swapi-demo/pkg/swapi"
)

// CharacterView is the rendered summary of a person.
type CharacterView struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Height    string `json:"height" yaml:"height"`
	Mass      string `json:"mass" yaml:"mass"`
	BirthYear string `json:"birth_year" yaml:"birth_year"`
	Films     int    `json:"films,omitempty" yaml:"films,omitempty"`
}

// Character renders person id.
func (p *Presenter) Character(ctx context.Context, id int) (CharacterView, error) {
	c, err := fetch[swapi.Character](ctx, p, swapi.CharacterEndpoint(id))
	if err != nil {
		return CharacterView{}, err
	}

	view := CharacterView{
		ID:        id,
		Name:      c.Name,
		Height:    c.Height,
		Mass:      c.Mass,
		BirthYear: c.BirthYear,
		Films:     len(c.Films),
	}

	return view, p.emit(ctx, view, func(w io.Writer) {
		line(w, "Character", view.Name)
		line(w, "Height", view.Height)
		line(w, "Mass", view.Mass)
		line(w, "Birth Year", view.BirthYear)
		if view.Films > 0 {
			fmt.Fprintf(w, "Appears in %d films\n", view.Films)
		}
	})
}

// StarshipView is the rendered summary of one starship.
type StarshipView struct {
	Position         int    `json:"position" yaml:"position"`
	Name             string `json:"name" yaml:"name"`
	Model            string `json:"model" yaml:"model"`
	Manufacturer     string `json:"manufacturer" yaml:"manufacturer"`
	CostInCredits    string `json:"cost_in_credits" yaml:"cost_in_credits"`
	Speed            string `json:"max_atmosphering_speed" yaml:"max_atmosphering_speed"`
	HyperdriveRating string `json:"hyperdrive_rating" yaml:"hyperdrive_rating"`
	Pilots           int    `json:"pilots,omitempty" yaml:"pilots,omitempty"`
}

// StarshipsView is the rendered first page of starships.
type StarshipsView struct {
	Total     int            `json:"total" yaml:"total"`
	Starships []StarshipView `json:"starships" yaml:"starships"`
}

// Starships renders the total starship count and the first
// defaults.MaxStarshipsToDisplay entries of the first page.
func (p *Presenter) Starships(ctx context.Context) (StarshipsView, error) {
	page, err := fetch[swapi.Page[swapi.Starship]](ctx, p, swapi.StarshipsEndpoint)
	if err != nil {
		return StarshipsView{}, err
	}

	results := page.Results
	if len(results) > defaults.MaxStarshipsToDisplay {
		results = results[:defaults.MaxStarshipsToDisplay]
	}

	view := StarshipsView{
		Total:     page.Count,
		Starships: make([]StarshipView, 0, len(results)),
	}
	for i, s := range results {
		view.Starships = append(view.Starships, StarshipView{
			Position:         i + 1,
			Name:             s.Name,
			Model:            s.Model,
			Manufacturer:     s.Manufacturer,
			CostInCredits:    s.CostInCredits,
			Speed:            s.MaxAtmospheringSpeed,
			HyperdriveRating: s.HyperdriveRating,
			Pilots:           len(s.Pilots),
		})
	}

	return view, p.emit(ctx, view, func(w io.Writer) {
		fmt.Fprintf(w, "\nTotal Starships: %d\n", view.Total)
		for _, s := range view.Starships {
			fmt.Fprintf(w, "\nStarship %d:\n", s.Position)
			line(w, "Name", s.Name)
			line(w, "Model", s.Model)
			line(w, "Manufacturer", s.Manufacturer)
			line(w, "Cost", p.cost(s.CostInCredits))
			line(w, "Speed", s.Speed)
			line(w, "Hyperdrive Rating", s.HyperdriveRating)
			if s.Pilots > 0 {
				line(w, "Pilots", fmt.Sprint(s.Pilots))
			}
		}
	})
}

// PlanetView is the rendered summary of one planet.
type PlanetView struct {
	Name       string `json:"name" yaml:"name"`
	Population string `json:"population" yaml:"population"`
	Diameter   string `json:"diameter" yaml:"diameter"`
	Climate    string `json:"climate" yaml:"climate"`
	Films      int    `json:"films,omitempty" yaml:"films,omitempty"`
}

// PlanetsView lists the large, populated planets of the first page.
type PlanetsView struct {
	Planets []PlanetView `json:"planets" yaml:"planets"`
}

// LargePopulatedPlanets renders the planets of the first page that pass
// swapi.IsLargePopulatedPlanet, in API order.
func (p *Presenter) LargePopulatedPlanets(ctx context.Context) (PlanetsView, error) {
	page, err := fetch[swapi.Page[swapi.Planet]](ctx, p, swapi.PlanetsEndpoint)
	if err != nil {
		return PlanetsView{}, err
	}

	view := PlanetsView{Planets: []PlanetView{}}
	for _, pl := range swapi.LargePopulatedPlanets(page.Results) {
		view.Planets = append(view.Planets, PlanetView{
			Name:       pl.Name,
			Population: pl.Population,
			Diameter:   pl.Diameter,
			Climate:    pl.Climate,
			Films:      len(pl.Films),
		})
	}

	return view, p.emit(ctx, view, func(w io.Writer) {
		fmt.Fprintln(w, "\nLarge populated planets:")
		for _, pl := range view.Planets {
			fmt.Fprintf(w, "%s - Population: %s - Diameter: %s - Climate: %s\n",
				pl.Name, p.count(pl.Population), p.count(pl.Diameter), pl.Climate)
			if pl.Films > 0 {
				fmt.Fprintf(w, "  Appears in %d films\n", pl.Films)
			}
		}
	})
}

// FilmView is the rendered summary of one film.
type FilmView struct {
	Position    int    `json:"position" yaml:"position"`
	Title       string `json:"title" yaml:"title"`
	ReleaseDate string `json:"release_date" yaml:"release_date"`
	Director    string `json:"director" yaml:"director"`
	Producer    string `json:"producer" yaml:"producer"`
	Characters  int    `json:"characters" yaml:"characters"`
	Planets     int    `json:"planets" yaml:"planets"`
}

// FilmsView lists films in release order.
type FilmsView struct {
	Films []FilmView `json:"films" yaml:"films"`
}

// FilmsChronologically renders all films ordered by release date.
func (p *Presenter) FilmsChronologically(ctx context.Context) (FilmsView, error) {
	page, err := fetch[swapi.Page[swapi.Film]](ctx, p, swapi.FilmsEndpoint)
	if err != nil {
		return FilmsView{}, err
	}

	sorted := swapi.SortFilmsByReleaseDate(page.Results)
	view := FilmsView{Films: make([]FilmView, 0, len(sorted))}
	for i, f := range sorted {
		view.Films = append(view.Films, FilmView{
			Position:    i + 1,
			Title:       f.Title,
			ReleaseDate: f.ReleaseDate,
			Director:    f.Director,
			Producer:    f.Producer,
			Characters:  len(f.Characters),
			Planets:     len(f.Planets),
		})
	}

	return view, p.emit(ctx, view, func(w io.Writer) {
		fmt.Fprintln(w, "\nStar Wars films in release order:")
		for _, f := range view.Films {
			fmt.Fprintf(w, "%d. %s (%s)\n", f.Position, f.Title, f.ReleaseDate)
			fmt.Fprintf(w, "   Director: %s\n", f.Director)
			fmt.Fprintf(w, "   Producer: %s\n", f.Producer)
			fmt.Fprintf(w, "   Characters: %d\n", f.Characters)
			fmt.Fprintf(w, "   Planets: %d\n", f.Planets)
		}
	})
}

// VehicleView is the rendered summary of a vehicle.
type VehicleView struct {
	ID            int    `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Model         string `json:"model" yaml:"model"`
	Manufacturer  string `json:"manufacturer" yaml:"manufacturer"`
	CostInCredits string `json:"cost_in_credits" yaml:"cost_in_credits"`
	Length        string `json:"length" yaml:"length"`
	Crew          string `json:"crew" yaml:"crew"`
	Passengers    string `json:"passengers" yaml:"passengers"`
}

// Vehicle renders vehicle id as the featured vehicle.
func (p *Presenter) Vehicle(ctx context.Context, id int) (VehicleView, error) {
	v, err := fetch[swapi.Vehicle](ctx, p, swapi.VehicleEndpoint(id))
	if err != nil {
		return VehicleView{}, err
	}

	view := VehicleView{
		ID:            id,
		Name:          v.Name,
		Model:         v.Model,
		Manufacturer:  v.Manufacturer,
		CostInCredits: v.CostInCredits,
		Length:        v.Length,
		Crew:          v.Crew,
		Passengers:    v.Passengers,
	}

	return view, p.emit(ctx, view, func(w io.Writer) {
		fmt.Fprintln(w, "\nFeatured Vehicle:")
		line(w, "Name", view.Name)
		line(w, "Model", view.Model)
		line(w, "Manufacturer", view.Manufacturer)
		line(w, "Cost", p.cost(view.CostInCredits))
		line(w, "Length", view.Length)
		line(w, "Crew Required", view.Crew)
		line(w, "Passengers", view.Passengers)
	})
}
