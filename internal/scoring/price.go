package scoring

import (
	"math"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

// PriceRating classifies an asking price against the expected range
type PriceRating string

const (
	RatingSuspicious     PriceRating = "SUSPICIOUS"
	RatingExcellent      PriceRating = "EXCELLENT"
	RatingGood           PriceRating = "GOOD"
	RatingFair           PriceRating = "FAIR"
	RatingAboveAverage   PriceRating = "ABOVE_AVERAGE"
	RatingOverpriced     PriceRating = "OVERPRICED"
	RatingVeryOverpriced PriceRating = "VERY_OVERPRICED"
)

type PriceFairness struct {
	ExpectedRange RentBenchmark `json:"expected_range"`
	Ratio         float64       `json:"ratio"`
	Rating        PriceRating   `json:"rating"`
	Score         int           `json:"score"`
	Note          string        `json:"note"`
}

type priceBand struct {
	below  float64
	rating PriceRating
	score  int
	note   string
}

// priceBands are checked in order against price / expected average
var priceBands = []priceBand{
	{0.5, RatingSuspicious, 20, "Price is far below market, verify the listing before paying anything"},
	{0.7, RatingExcellent, 95, "Excellent deal, well below the local market rate"},
	{0.9, RatingGood, 80, "Good value, priced below the local average"},
	{1.1, RatingFair, 65, "Fairly priced for the area"},
	{1.3, RatingAboveAverage, 50, "Slightly above the local average"},
	{1.5, RatingOverpriced, 35, "Overpriced compared to similar listings"},
}

var veryOverpriced = priceBand{math.Inf(1), RatingVeryOverpriced, 15, "Significantly overpriced for this location"}

func typeMultiplier(t domain.PropertyType) float64 {
	if m, ok := typeMultipliers[domain.ParsePropertyType(string(t))]; ok {
		return m
	}
	return 1.0
}

func bhkMultiplier(bhk *int) float64 {
	if bhk == nil || *bhk <= 0 {
		return 1.0
	}
	return float64(*bhk)*0.7 + 0.3
}

// ExpectedRange scales the city benchmark by listing type and bedroom count
func ExpectedRange(p domain.PropertyFacts) RentBenchmark {
	b := Benchmark(p.City)
	m := typeMultiplier(p.Type) * bhkMultiplier(p.BHK)
	return RentBenchmark{
		Min:  math.Round(b.Min * m),
		Avg:  math.Round(b.Avg * m),
		Max:  math.Round(b.Max * m),
		Tier: b.Tier,
	}
}

// usablePrice rejects zero, negative, NaN and infinite prices
func usablePrice(price float64) bool {
	return price > 0 && !math.IsInf(price, 1)
}

// priceRatio is price over the expected average; unusable prices give 0
func priceRatio(price float64, expected RentBenchmark) float64 {
	if !usablePrice(price) || expected.Avg <= 0 {
		return 0
	}
	return price / expected.Avg
}

// EvaluatePriceFairness classifies the asking price into one of seven bands
// for the narrative insight path.
func EvaluatePriceFairness(p domain.PropertyFacts) PriceFairness {
	expected := ExpectedRange(p)
	ratio := priceRatio(p.Price, expected)

	band := veryOverpriced
	for _, b := range priceBands {
		if ratio < b.below {
			band = b
			break
		}
	}

	return PriceFairness{
		ExpectedRange: expected,
		Ratio:         math.Round(ratio*100) / 100,
		Rating:        band.rating,
		Score:         band.score,
		Note:          band.note,
	}
}

// pricePoints is the composite-score variant of price fairness, on a 0..25
// scale with its own band boundaries.
func pricePoints(p domain.PropertyFacts) int {
	if !usablePrice(p.Price) {
		return 10
	}
	ratio := priceRatio(p.Price, ExpectedRange(p))
	switch {
	case ratio <= 0.6:
		return 25
	case ratio <= 0.8:
		return 22
	case ratio <= 1.0:
		return 20
	case ratio <= 1.2:
		return 15
	case ratio <= 1.5:
		return 10
	case ratio <= 2.0:
		return 5
	default:
		return 2
	}
}
