// Package query filters and ranks event listings by location name, category
// and distance from a center point.
package query

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"event-finder/data/geo"
	"event-finder/data/models"
)

const (
	// SimilarRadiusKm is how close another event must be to count as similar
	// when it does not share the category.
	SimilarRadiusKm = 20.0

	DefaultSimilarLimit = 3
)

// Params are the optional list filters. Nil numeric fields are absent.
type Params struct {
	Location string
	Category string
	Lat      *float64
	Lng      *float64
	Radius   *float64
}

// HasCenter reports whether both coordinates of a center point are set.
func (p Params) HasCenter() bool {
	return p.Lat != nil && p.Lng != nil
}

// ParseParams reads list filters from URL query values. Text filters are used
// verbatim. Numeric values that are malformed or not finite are treated as
// absent.
func ParseParams(v url.Values) Params {
	return Params{
		Location: v.Get("location"),
		Category: v.Get("category"),
		Lat:      parseFinite(v.Get("lat")),
		Lng:      parseFinite(v.Get("lng")),
		Radius:   parseFinite(v.Get("radius")),
	}
}

func parseFinite(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Apply returns the events matching p. The input slice and its events are left
// untouched. With a center point every result carries DistanceInKm and results
// are ordered nearest first.
func Apply(events []models.Event, p Params) []models.Event {
	out := make([]models.Event, 0, len(events))
	loc := strings.ToLower(p.Location)

	for _, e := range events {
		if loc != "" && !strings.Contains(strings.ToLower(e.Location.Name), loc) {
			continue
		}
		if p.Category != "" && !strings.EqualFold(string(e.Category), p.Category) {
			continue
		}
		out = append(out, e.Clone())
	}

	if !p.HasCenter() {
		return out
	}

	center := geo.Point{Lat: *p.Lat, Lng: *p.Lng}
	kept := out[:0]
	for _, e := range out {
		d := center.DistanceTo(geo.Point{Lat: e.Location.Lat, Lng: e.Location.Lng})
		e.DistanceInKm = &d
		if p.Radius != nil && !(d <= *p.Radius) {
			continue
		}
		kept = append(kept, e)
	}

	SortByDistance(kept)
	return kept
}

// SortByDistance orders events nearest first. Events without a distance go
// last; ties keep their relative order.
func SortByDistance(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].DistanceInKm, events[j].DistanceInKm
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

// Similar returns up to limit events, other than target, that share its
// category or are within SimilarRadiusKm of it. Store order is kept.
func Similar(target models.Event, events []models.Event, limit int) []models.Event {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	origin := geo.Point{Lat: target.Location.Lat, Lng: target.Location.Lng}
	out := make([]models.Event, 0, limit)
	for _, e := range events {
		if len(out) == limit {
			break
		}
		if e.ID == target.ID {
			continue
		}
		sameCategory := target.Category != "" && e.Category == target.Category
		if sameCategory || origin.DistanceTo(geo.Point{Lat: e.Location.Lat, Lng: e.Location.Lng}) < SimilarRadiusKm {
			out = append(out, e.Clone())
		}
	}
	return out
}
