package scoring

import (
	"math"
	"strings"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

// Weights of the preference match; they sum to 100
const (
	MatchLocationWeight     = 30
	MatchBudgetWeight       = 25
	MatchPropertyTypeWeight = 15
	MatchAmenitiesWeight    = 15
	MatchProfileWeight      = 15

	purposeMismatchMultiplier = 0.7
	reasonSeparator           = " • "
	maxReasons                = 2
)

// Neutral values used when the renter left a criterion empty
const (
	neutralLocationPoints = 15
	neutralBudgetPoints   = 15
	neutralTypePoints     = 10
	neutralProfilePoints  = 10
	unknownCompatibility  = 50
)

type MatchBreakdown struct {
	Location     float64 `json:"location"`
	Budget       float64 `json:"budget"`
	PropertyType float64 `json:"property_type"`
	Amenities    float64 `json:"amenities"`
	ProfileMatch float64 `json:"profile_match"`
}

func (b MatchBreakdown) sum() float64 {
	return b.Location + b.Budget + b.PropertyType + b.Amenities + b.ProfileMatch
}

type Match struct {
	TotalScore        int            `json:"total_score"`
	Breakdown         MatchBreakdown `json:"breakdown"`
	PurposeMultiplier float64        `json:"purpose_multiplier"`
	MatchReason       string         `json:"match_reason"`
}

// MatchScore rates how well a listing fits one renter's preferences
func MatchScore(p domain.PropertyFacts, prefs domain.PreferenceRequest) Match {
	persona := domain.ParsePersona(string(prefs.UserProfile))

	b := MatchBreakdown{
		Location:     locationMatchPoints(p, prefs.PreferredLocation),
		Budget:       budgetPoints(p.Price, prefs.BudgetMin, prefs.BudgetMax),
		PropertyType: typePoints(p.Type, prefs.PropertyType),
		Amenities:    requiredAmenityPoints(p.Amenities, prefs.RequiredAmenities),
		ProfileMatch: profilePoints(p, persona),
	}

	multiplier := purposeMultiplier(p.Purpose, prefs.Purpose)
	total := clampInt(int(math.Round(b.sum()*multiplier)), 0, MaxTotalScore)

	return Match{
		TotalScore:        total,
		Breakdown:         roundBreakdown(b),
		PurposeMultiplier: multiplier,
		MatchReason:       matchReason(b, persona),
	}
}

func locationMatchPoints(p domain.PropertyFacts, preferred string) float64 {
	pref := normalize(preferred)
	if pref == "" {
		return neutralLocationPoints
	}

	city := normalize(p.City)
	area := normalize(p.Area)
	if (city != "" && overlaps(city, pref)) || (area != "" && overlaps(area, pref)) {
		return MatchLocationWeight
	}

	return float64(ScoreLocationByDistance(pref, p))
}

func positive(v *float64) (float64, bool) {
	if v == nil || !usablePrice(*v) {
		return 0, false
	}
	return *v, true
}

// budgetPoints rewards prices inside the range, most of all near its middle
func budgetPoints(price float64, budgetMin, budgetMax *float64) float64 {
	lo, hasLo := positive(budgetMin)
	hi, hasHi := positive(budgetMax)
	if !hasLo && !hasHi {
		return neutralBudgetPoints
	}
	if math.IsNaN(price) {
		return 0
	}
	if hasLo && hasHi && lo > hi {
		lo, hi = hi, lo
	}

	switch {
	case hasLo && price < lo:
		if price >= lo*0.8 {
			return 22
		}
		return 18
	case hasHi && price > hi:
		over := (price - hi) / hi
		switch {
		case over <= 0.10:
			return 15
		case over <= 0.25:
			return 10
		case over <= 0.50:
			return 5
		default:
			return 0
		}
	case hasLo && hasHi && hi > lo:
		mid := (lo + hi) / 2
		deviation := math.Abs(price-mid) / ((hi - lo) / 2)
		return clamp(MatchBudgetWeight-deviation*5, 20, MatchBudgetWeight)
	default:
		return MatchBudgetWeight
	}
}

func typePoints(actual, wanted domain.PropertyType) float64 {
	want := domain.ParsePropertyType(string(wanted))
	if want == domain.PropertyTypeUnknown {
		return neutralTypePoints
	}

	have := domain.ParsePropertyType(string(actual))
	if have == want {
		return MatchPropertyTypeWeight
	}
	for _, t := range similarTypes[want] {
		if t == have {
			return 8
		}
	}
	return 3
}

func requiredAmenityPoints(have, required []string) float64 {
	wanted := make([]string, 0, len(required))
	for _, r := range required {
		if n := normalize(r); n != "" {
			wanted = append(wanted, n)
		}
	}
	if len(wanted) == 0 {
		return MatchAmenitiesWeight
	}

	matched := 0
	for _, w := range wanted {
		if hasAmenity(have, w) {
			matched++
		}
	}

	return math.Round(MatchAmenitiesWeight * float64(matched) / float64(len(wanted)))
}

// hasAmenity reports whether any listed amenity overlaps the normalized keyword
func hasAmenity(amenities []string, keyword string) bool {
	for _, a := range amenities {
		if n := normalize(a); n != "" && overlaps(n, keyword) {
			return true
		}
	}
	return false
}

func profilePoints(p domain.PropertyFacts, persona domain.Persona) float64 {
	if persona == domain.PersonaUnknown {
		return neutralProfilePoints
	}

	compat, ok := profileTypeCompatibility[persona][domain.ParsePropertyType(string(p.Type))]
	if !ok {
		compat = unknownCompatibility
	}
	base := math.Round(compat / 100 * MatchProfileWeight)

	matches := 0
	for _, k := range profileAmenities[persona] {
		if hasAmenity(p.Amenities, k) {
			matches++
		}
	}
	bonus := math.Min(3, 0.5*float64(matches))

	return math.Min(MatchProfileWeight, base+bonus)
}

func purposeMultiplier(actual, wanted domain.Purpose) float64 {
	want := domain.ParsePurpose(string(wanted))
	if want == domain.PurposeUnknown || want == domain.ParsePurpose(string(actual)) {
		return 1.0
	}
	return purposeMismatchMultiplier
}

var personaLabels = map[domain.Persona]string{
	domain.PersonaStudent: "students",
	domain.PersonaWorker:  "working professionals",
	domain.PersonaFamily:  "families",
	domain.PersonaCouple:  "couples",
}

// matchReason picks up to two canned phrases in fixed priority order
func matchReason(b MatchBreakdown, persona domain.Persona) string {
	reasons := make([]string, 0, maxReasons)
	add := func(ok bool, phrase string) {
		if ok && len(reasons) < maxReasons {
			reasons = append(reasons, phrase)
		}
	}

	add(b.Location >= 25, "Excellent location match")
	add(b.Budget >= 20, "Fits your budget")
	add(b.PropertyType >= 12, "Your preferred property type")
	add(b.Amenities >= 12, "Has the amenities you need")
	if label, ok := personaLabels[persona]; ok {
		add(b.ProfileMatch >= 12, "Great fit for "+label)
	} else {
		add(b.ProfileMatch >= 12, "Suits your lifestyle")
	}

	if len(reasons) > 0 {
		return strings.Join(reasons, reasonSeparator)
	}

	switch {
	case b.Location >= 15:
		return "Close to your preferred area"
	case b.Budget >= 15:
		return "Near your budget"
	case b.PropertyType >= 8:
		return "Similar to the property type you want"
	default:
		return "Partial match for your preferences"
	}
}

func roundBreakdown(b MatchBreakdown) MatchBreakdown {
	r := func(v float64) float64 { return math.Round(v*100) / 100 }
	return MatchBreakdown{
		Location:     r(b.Location),
		Budget:       r(b.Budget),
		PropertyType: r(b.PropertyType),
		Amenities:    r(b.Amenities),
		ProfileMatch: r(b.ProfileMatch),
	}
}
