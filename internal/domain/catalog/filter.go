// Package catalog implements listing filters over the "City, UF" location format.
package catalog

import (
	"slices"
	"strings"

	"pontomais/internal/domain/point"
)

// StateOf returns the part after the comma ("" when there is none).
func StateOf(city string) string {
	_, state, ok := strings.Cut(city, ",")
	if !ok {
		return ""
	}
	return strings.TrimSpace(state)
}

// CityOf returns the part before the comma.
func CityOf(city string) string {
	name, _, _ := strings.Cut(city, ",")
	return strings.TrimSpace(name)
}

// Filter fields are optional; empty Categories matches every category.
type Filter struct {
	State        string
	City         string
	Neighborhood string
	Categories   []string
}

func (f Filter) IsEmpty() bool {
	return f.State == "" && f.City == "" && f.Neighborhood == "" && len(f.Categories) == 0
}

func (f Filter) Match(p *point.Point) bool {
	if f.State != "" && !strings.EqualFold(StateOf(p.City()), f.State) {
		return false
	}
	if f.City != "" && !strings.EqualFold(CityOf(p.City()), CityOf(f.City)) {
		return false
	}
	if f.Neighborhood != "" && !strings.EqualFold(p.Neighborhood(), f.Neighborhood) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category()) {
		return false
	}
	return true
}

func Apply(points []*point.Point, f Filter) []*point.Point {
	out := make([]*point.Point, 0, len(points))
	for _, p := range points {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

type Options struct {
	States        []string
	Cities        []string
	Neighborhoods []string
	Categories    []string
}

// BuildOptions lists the cascading choices: cities only once a state is chosen,
// neighborhoods only once a city is chosen.
func BuildOptions(points []*point.Point, state, city string) Options {
	var states, cities, hoods, cats []string
	for _, p := range points {
		st := StateOf(p.City())
		states = append(states, st)
		cats = append(cats, p.Category())
		if state == "" || !strings.EqualFold(st, state) {
			continue
		}
		cities = append(cities, CityOf(p.City()))
		if city != "" && strings.EqualFold(CityOf(p.City()), CityOf(city)) {
			hoods = append(hoods, p.Neighborhood())
		}
	}
	return Options{
		States:        uniqueSorted(states),
		Cities:        uniqueSorted(cities),
		Neighborhoods: uniqueSorted(hoods),
		Categories:    uniqueSorted(cats),
	}
}

func uniqueSorted(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
