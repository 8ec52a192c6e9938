package scoring

import "strings"

const (
	MaxAmenityPoints       = 20
	MaxAmenityPointsSimple = 100
)

// ScoreAmenities totals amenity points for the composite score, capped at 20
func ScoreAmenities(amenities []string) int {
	return sumAmenityPoints(amenities, amenityPoints, MaxAmenityPoints)
}

// ScoreAmenitiesSimple is the 0..100 amenity score used in insight prompts.
// It keeps its own keyword table and scale; the two scorers are separate
// product surfaces and are not meant to agree.
func ScoreAmenitiesSimple(amenities []string) int {
	return sumAmenityPoints(amenities, amenityPointsSimple, MaxAmenityPointsSimple)
}

func sumAmenityPoints(amenities []string, table []keywordPoints, limit int) int {
	total := 0
	for _, a := range amenities {
		if kp, ok := firstKeywordMatch(a, table); ok {
			total += kp.points
		}
	}
	return clampInt(total, 0, limit)
}

// firstKeywordMatch finds the first row whose keyword overlaps the tag in
// either substring direction. Blank tags never match.
func firstKeywordMatch(tag string, table []keywordPoints) (keywordPoints, bool) {
	t := normalize(tag)
	if t == "" {
		return keywordPoints{}, false
	}
	for _, kp := range table {
		if overlaps(t, kp.keyword) {
			return kp, true
		}
	}
	return keywordPoints{}, false
}

// overlaps reports a substring match in either direction; inputs are already
// normalized and non-empty
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
