package scoring

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

func bandraFlat() domain.PropertyFacts {
	return domain.PropertyFacts{
		City:      "Mumbai",
		Area:      "Bandra",
		Type:      domain.PropertyTypeFlat,
		Purpose:   domain.PurposeRent,
		Price:     35000,
		Amenities: []string{"WiFi", "Parking", "Gym"},
	}
}

func TestMatchScorePerfectFit(t *testing.T) {
	t.Parallel()

	prefs := domain.PreferenceRequest{
		PreferredLocation: "Bandra",
		BudgetMin:         floatPtr(30000),
		BudgetMax:         floatPtr(40000),
		PropertyType:      domain.PropertyTypeFlat,
		Purpose:           domain.PurposeRent,
		RequiredAmenities: []string{"wifi", "parking"},
		UserProfile:       domain.PersonaWorker,
	}

	got := MatchScore(bandraFlat(), prefs)
	expected := MatchBreakdown{Location: 30, Budget: 25, PropertyType: 15, Amenities: 15, ProfileMatch: 15}
	if got.Breakdown != expected {
		t.Fatalf("unexpected breakdown: %+v", got.Breakdown)
	}
	if got.TotalScore != 100 {
		t.Fatalf("expected 100, got %d", got.TotalScore)
	}
	if got.MatchReason != "Excellent location match • Fits your budget" {
		t.Fatalf("unexpected reason: %q", got.MatchReason)
	}

	prefs.Purpose = domain.PurposeSale
	got = MatchScore(bandraFlat(), prefs)
	if got.TotalScore != 70 || got.PurposeMultiplier != purposeMismatchMultiplier {
		t.Fatalf("expected purpose mismatch to scale to 70, got %d (x%v)", got.TotalScore, got.PurposeMultiplier)
	}
}

func TestMatchScoreEmptyPreferences(t *testing.T) {
	t.Parallel()

	got := MatchScore(bandraFlat(), domain.PreferenceRequest{})
	expected := MatchBreakdown{
		Location:     neutralLocationPoints,
		Budget:       neutralBudgetPoints,
		PropertyType: neutralTypePoints,
		Amenities:    MatchAmenitiesWeight,
		ProfileMatch: neutralProfilePoints,
	}
	if got.Breakdown != expected {
		t.Fatalf("unexpected breakdown: %+v", got.Breakdown)
	}
	if got.TotalScore != 65 {
		t.Fatalf("expected 65, got %d", got.TotalScore)
	}
	if got.MatchReason != "Has the amenities you need" {
		t.Fatalf("unexpected reason: %q", got.MatchReason)
	}
}

func TestMatchScoreDistanceFallback(t *testing.T) {
	t.Parallel()

	lat, lon := 19.1136, 72.8697
	facts := domain.PropertyFacts{City: "Mumbai", Area: "Andheri", Type: domain.PropertyTypeFlat, Latitude: &lat, Longitude: &lon}

	got := MatchScore(facts, domain.PreferenceRequest{PreferredLocation: "Powai"})
	if got.Breakdown.Location != MaxDistanceLocationPoints {
		t.Fatalf("expected distance band %d, got %v", MaxDistanceLocationPoints, got.Breakdown.Location)
	}
}

func TestBudgetPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		price  float64
		min    *float64
		max    *float64
		expect float64
	}{
		{"midpoint", 15000, floatPtr(10000), floatPtr(20000), 25},
		{"upper edge", 20000, floatPtr(10000), floatPtr(20000), 20},
		{"halfway to edge", 17500, floatPtr(10000), floatPtr(20000), 22.5},
		{"just below min", 9000, floatPtr(10000), floatPtr(20000), 22},
		{"well below min", 7000, floatPtr(10000), floatPtr(20000), 18},
		{"ten percent over", 22000, floatPtr(10000), floatPtr(20000), 15},
		{"quarter over", 25000, floatPtr(10000), floatPtr(20000), 10},
		{"half over", 30000, floatPtr(10000), floatPtr(20000), 5},
		{"far over", 40000, floatPtr(10000), floatPtr(20000), 0},
		{"no bounds", 99999, nil, nil, neutralBudgetPoints},
		{"zero bounds are absent", 5000, floatPtr(0), floatPtr(0), neutralBudgetPoints},
		{"only max", 15000, nil, floatPtr(20000), 25},
		{"only min", 15000, floatPtr(10000), nil, 25},
		{"swapped bounds", 15000, floatPtr(20000), floatPtr(10000), 25},
		{"nan price", math.NaN(), floatPtr(10000), floatPtr(20000), 0},
		{"infinite price", math.Inf(1), floatPtr(10000), floatPtr(20000), 0},
		{"nan bounds are absent", 15000, floatPtr(math.NaN()), floatPtr(math.NaN()), neutralBudgetPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := budgetPoints(tt.price, tt.min, tt.max); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestBudgetPointsDropAwayFromMidpoint(t *testing.T) {
	t.Parallel()

	lo, hi := floatPtr(10000), floatPtr(20000)
	prev := budgetPoints(15000, lo, hi)
	for price := 15500.0; price <= 40000; price += 500 {
		got := budgetPoints(price, lo, hi)
		if got > prev {
			t.Fatalf("budget score rose from %v to %v at %v", prev, got, price)
		}
		prev = got
	}
}

func TestTypePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		have, want domain.PropertyType
		expect     float64
	}{
		{domain.PropertyTypeFlat, domain.PropertyTypeFlat, 15},
		{domain.PropertyTypeHome, domain.PropertyTypeFlat, 8},
		{domain.PropertyTypeHostel, domain.PropertyTypePG, 8},
		{domain.PropertyTypeRoom, domain.PropertyTypeFlat, 3},
		{domain.PropertyTypeUnknown, domain.PropertyTypeFlat, 3},
		{domain.PropertyTypeRoom, domain.PropertyTypeUnknown, neutralTypePoints},
		{domain.PropertyTypeRoom, domain.PropertyType("room"), 15},
	}

	for _, tt := range tests {
		if got := typePoints(tt.have, tt.want); got != tt.expect {
			t.Fatalf("%q for %q: expected %v, got %v", tt.have, tt.want, tt.expect, got)
		}
	}
}

func TestRequiredAmenityPoints(t *testing.T) {
	t.Parallel()

	have := []string{"WiFi", "Covered Parking"}

	if got := requiredAmenityPoints(have, nil); got != MatchAmenitiesWeight {
		t.Fatalf("expected full points with no requirements, got %v", got)
	}
	if got := requiredAmenityPoints(have, []string{" ", ""}); got != MatchAmenitiesWeight {
		t.Fatalf("expected blank requirements to be ignored, got %v", got)
	}
	if got := requiredAmenityPoints(have, []string{"wifi", "parking", "gym"}); got != 10 {
		t.Fatalf("expected 10 for two of three, got %v", got)
	}
	if got := requiredAmenityPoints(nil, []string{"wifi"}); got != 0 {
		t.Fatalf("expected 0 without amenities, got %v", got)
	}
}

func TestProfilePoints(t *testing.T) {
	t.Parallel()

	pg := domain.PropertyFacts{Type: domain.PropertyTypePG, Amenities: []string{"wifi", "meals", "laundry"}}
	if got := profilePoints(pg, domain.PersonaStudent); got != 15 {
		t.Fatalf("expected capped 15 for student in PG, got %v", got)
	}

	hostel := domain.PropertyFacts{Type: domain.PropertyTypeHostel}
	if got := profilePoints(hostel, domain.PersonaFamily); got != 2 {
		t.Fatalf("expected 2 for family in hostel, got %v", got)
	}

	unknown := domain.PropertyFacts{Amenities: []string{"parking"}}
	if got := profilePoints(unknown, domain.PersonaFamily); got != 8.5 {
		t.Fatalf("expected 8.5 for unknown type with one keyword, got %v", got)
	}

	if got := profilePoints(pg, domain.PersonaUnknown); got != neutralProfilePoints {
		t.Fatalf("expected neutral points without persona, got %v", got)
	}
}

func TestMatchReasonFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		b      MatchBreakdown
		expect string
	}{
		{"near area", MatchBreakdown{Location: 18}, "Close to your preferred area"},
		{"near budget", MatchBreakdown{Location: 5, Budget: 15}, "Near your budget"},
		{"similar type", MatchBreakdown{PropertyType: 8}, "Similar to the property type you want"},
		{"nothing", MatchBreakdown{}, "Partial match for your preferences"},
		{"profile only", MatchBreakdown{ProfileMatch: 13}, "Great fit for students"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := matchReason(tt.b, domain.PersonaStudent); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}

	all := MatchBreakdown{Location: 30, Budget: 25, PropertyType: 15, Amenities: 15, ProfileMatch: 15}
	if parts := strings.Split(matchReason(all, domain.PersonaUnknown), reasonSeparator); len(parts) != maxReasons {
		t.Fatalf("expected %d reasons, got %v", maxReasons, parts)
	}
}

func TestMatchScoreBoundedAndDeterministic(t *testing.T) {
	t.Parallel()

	lat, lon := 12.9352, 77.6245
	listings := []domain.PropertyFacts{
		{},
		bandraFlat(),
		{City: "Bangalore", Area: "Koramangala", Type: domain.PropertyTypePG, Purpose: domain.PurposeRent,
			Price: 9000, Amenities: []string{"wifi", "meals"}, Latitude: &lat, Longitude: &lon},
		{City: "Atlantis", Type: domain.PropertyType("castle"), Purpose: domain.PurposeSale, Price: -1},
	}
	preferences := []domain.PreferenceRequest{
		{},
		{PreferredLocation: "Indiranagar", BudgetMax: floatPtr(10000), UserProfile: domain.PersonaStudent},
		{PreferredLocation: "x", BudgetMin: floatPtr(1e9), PropertyType: domain.PropertyTypeHome,
			Purpose: domain.PurposeRent, RequiredAmenities: []string{"helipad"}, UserProfile: domain.PersonaFamily},
		{BudgetMin: floatPtr(-5), BudgetMax: floatPtr(1), Purpose: domain.Purpose("lease"), UserProfile: domain.Persona("robot")},
	}

	for _, l := range listings {
		for _, p := range preferences {
			got := MatchScore(l, p)
			if got.TotalScore < 0 || got.TotalScore > MaxTotalScore {
				t.Fatalf("total out of range: %d", got.TotalScore)
			}
			b := got.Breakdown
			if b.Location < 0 || b.Location > MatchLocationWeight || b.Budget < 0 || b.Budget > MatchBudgetWeight ||
				b.PropertyType < 0 || b.PropertyType > MatchPropertyTypeWeight ||
				b.Amenities < 0 || b.Amenities > MatchAmenitiesWeight ||
				b.ProfileMatch < 0 || b.ProfileMatch > MatchProfileWeight {
				t.Fatalf("component out of range: %+v", b)
			}
			if got.MatchReason == "" {
				t.Fatalf("expected a reason for %+v / %+v", l, p)
			}
			if again := MatchScore(l, p); !reflect.DeepEqual(got, again) {
				t.Fatalf("expected deterministic result, got %+v and %+v", got, again)
			}
		}
	}
}
