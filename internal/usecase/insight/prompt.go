package insight

import (
	"fmt"
	"strings"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
	"github.com/gdugdh24/rentscore-backend/internal/scoring"
)

func rupees(v float64) string {
	return fmt.Sprintf("₹%.0f", v)
}

func location(p *domain.Property) string {
	if strings.TrimSpace(p.Area) == "" {
		return p.City
	}
	return p.Area + ", " + p.City
}

func buildPrompt(p *domain.Property, f Facts) string {
	amenities := "none listed"
	if len(p.Amenities) > 0 {
		amenities = strings.Join(p.Amenities, ", ")
	}

	var sb strings.Builder
	sb.WriteString("You are a rental market analyst for Indian cities.\n")
	sb.WriteString("Write 2-3 plain sentences for a renter about this listing. ")
	sb.WriteString("Use only the facts below, mention the price verdict first, no markdown.\n\n")
	fmt.Fprintf(&sb, "- Listing: %s (%s, %s)\n", strings.TrimSpace(p.Title), p.Type, p.Purpose)
	fmt.Fprintf(&sb, "- Location: %s\n", location(p))
	fmt.Fprintf(&sb, "- Asking price: %s per month\n", rupees(p.Price))
	fmt.Fprintf(&sb, "- Expected range: %s to %s, average %s (%s city)\n",
		rupees(f.PriceFairness.ExpectedRange.Min), rupees(f.PriceFairness.ExpectedRange.Max),
		rupees(f.PriceFairness.ExpectedRange.Avg), f.PriceFairness.ExpectedRange.Tier)
	fmt.Fprintf(&sb, "- Typical %s price here: %s\n", p.Type, rupees(f.MarketAverage))
	fmt.Fprintf(&sb, "- Price verdict: %s (%s)\n", f.PriceFairness.Rating, f.PriceFairness.Note)
	fmt.Fprintf(&sb, "- Amenities: %s (score %d/%d)\n", amenities, f.AmenityScore, scoring.MaxAmenityPointsSimple)
	fmt.Fprintf(&sb, "- Location score: %d/%d\n", f.LocationScore, scoring.MaxLocationPoints)
	fmt.Fprintf(&sb, "- Overall listing score: %d/%d\n", f.PropertyScore, scoring.MaxTotalScore)
	fmt.Fprintf(&sb, "- Owner badge: %s\n", f.TrustBadge)
	return sb.String()
}

// fallbackInsight is the canned narrative used when no model answer is available
func fallbackInsight(p *domain.Property, f Facts) string {
	pf := f.PriceFairness

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s in %s at %s: %s.", strings.ToUpper(string(p.Type)), location(p), rupees(p.Price), pf.Note)
	fmt.Fprintf(&sb, " Similar listings go for %s to %s.", rupees(pf.ExpectedRange.Min), rupees(pf.ExpectedRange.Max))

	switch {
	case f.AmenityScore >= 60:
		sb.WriteString(" Well equipped with amenities.")
	case f.AmenityScore >= 30:
		sb.WriteString(" Offers the essential amenities.")
	default:
		sb.WriteString(" Few amenities are listed, ask the owner before visiting.")
	}

	fmt.Fprintf(&sb, " Overall score %d/%d, owner is %s.", f.PropertyScore, scoring.MaxTotalScore, f.TrustBadge)
	return sb.String()
}
