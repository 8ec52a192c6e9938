package scoring

import "github.com/gdugdh24/rentscore-backend/internal/domain"

const (
	MaxPricePoints       = 25
	MaxDemandPoints      = 15
	MaxCredibilityPoints = 15
	MaxTotalScore        = 100

	missingOwnerCredibility = 5
)

type PropertyBreakdown struct {
	Location         int `json:"location"`
	PriceFairness    int `json:"price_fairness"`
	Amenities        int `json:"amenities"`
	Demand           int `json:"demand"`
	OwnerCredibility int `json:"owner_credibility"`
}

func (b PropertyBreakdown) sum() int {
	return b.Location + b.PriceFairness + b.Amenities + b.Demand + b.OwnerCredibility
}

type PropertyScore struct {
	TotalScore int               `json:"total_score"`
	Breakdown  PropertyBreakdown `json:"breakdown"`
}

// ComputePropertyScore combines location, price, amenities, demand and owner
// credibility into a 0..100 quality score. owner may be nil.
func ComputePropertyScore(p domain.PropertyFacts, owner *domain.OwnerFacts) PropertyScore {
	b := PropertyBreakdown{
		Location:         ScoreLocation(p.City, p.Area),
		PriceFairness:    clampInt(pricePoints(p), 0, MaxPricePoints),
		Amenities:        ScoreAmenities(p.Amenities),
		Demand:           DemandPoints(p.ViewCount, p.ContactRequests),
		OwnerCredibility: OwnerCredibility(owner),
	}

	return PropertyScore{
		TotalScore: clampInt(b.sum(), 0, MaxTotalScore),
		Breakdown:  b,
	}
}

// DemandPoints converts views and contact requests into at most 15 points
func DemandPoints(views, contacts int) int {
	var v int
	switch {
	case views >= 100:
		v = 7
	case views >= 50:
		v = 5
	case views >= 20:
		v = 3
	case views >= 5:
		v = 1
	}

	var c int
	switch {
	case contacts >= 10:
		c = 8
	case contacts >= 5:
		c = 6
	case contacts >= 3:
		c = 4
	case contacts >= 1:
		c = 2
	}

	return clampInt(v+c, 0, MaxDemandPoints)
}

// OwnerCredibility scores verification, rating and deal history out of 15
func OwnerCredibility(o *domain.OwnerFacts) int {
	if o == nil {
		return missingOwnerCredibility
	}

	score := 0
	if o.Verified {
		score += 3
	}
	if o.IsGoogleLogin {
		score += 2
	}
	if o.EmailVerified {
		score++
	}
	if o.PhoneVerified {
		score += 2
	}

	switch {
	case o.Rating >= 4.5:
		score += 4
	case o.Rating >= 4.0:
		score += 3
	case o.Rating >= 3.5:
		score += 2
	case o.Rating >= 3.0:
		score++
	}

	switch {
	case o.SuccessfulDeals >= 10:
		score += 3
	case o.SuccessfulDeals >= 5:
		score += 2
	case o.SuccessfulDeals >= 1:
		score++
	}

	return clampInt(score, 0, MaxCredibilityPoints)
}
