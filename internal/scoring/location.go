package scoring

import (
	"strings"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

const (
	MaxLocationPoints         = 25
	MaxDistanceLocationPoints = 28

	partialLocationPoints = 15
	lowLocationPoints     = 5
)

// ScoreLocation rates a city/area pair on a 0..25 scale: a base for major
// cities plus a premium-zone bonus.
func ScoreLocation(city, area string) int {
	c := normalize(city)
	a := normalize(area)

	score := 5
	if _, ok := majorCities[c]; ok {
		score = 10
	}

	premium, known := premiumAreas[c]
	switch {
	case known && a != "" && matchesAny(a, premium):
		score += 15
	case known:
		score += 5
	default:
		score += 8
	}

	return clampInt(score, 0, MaxLocationPoints)
}

func matchesAny(s string, candidates []string) bool {
	for _, c := range candidates {
		if overlaps(s, c) {
			return true
		}
	}
	return false
}

type distanceBand struct {
	withinKm float64
	points   int
}

var distanceBands = []distanceBand{
	{5, MaxDistanceLocationPoints},
	{10, 24},
	{20, 18},
	{50, 12},
}

// DistancePoints bands a distance in km onto the location scale
func DistancePoints(km float64) int {
	for _, b := range distanceBands {
		if km <= b.withinKm {
			return b.points
		}
	}
	return lowLocationPoints
}

// ScoreLocationByDistance scores a listing's coordinates against the centroid
// of the preferred locality. Without a known centroid or coordinates it
// degrades to a coarse prefix match on the preferred name.
func ScoreLocationByDistance(preferred string, p domain.PropertyFacts) int {
	if p.HasCoordinates() {
		if center, ok := Centroid(preferred); ok {
			return DistancePoints(Haversine(center, GeoPoint{Lat: *p.Latitude, Lon: *p.Longitude}))
		}
	}
	if prefixMatch(preferred, p.City, p.Area) {
		return partialLocationPoints
	}
	return lowLocationPoints
}

// prefixMatch checks whether the first three letters of the preferred
// location occur in the listing's city or area
func prefixMatch(preferred, city, area string) bool {
	p := normalize(preferred)
	if len([]rune(p)) < 3 {
		return false
	}
	prefix := string([]rune(p)[:3])
	return strings.Contains(normalize(city), prefix) || strings.Contains(normalize(area), prefix)
}
