package scoring

import "github.com/gdugdh24/rentscore-backend/internal/domain"

// DeriveTrustBadge evaluates the badge rules in order, first match wins
func DeriveTrustBadge(o *domain.OwnerFacts) domain.TrustBadge {
	if o == nil {
		return domain.BadgeNewSeller
	}

	switch {
	case o.SuccessfulDeals >= 10 && o.Rating >= 4.5:
		return domain.BadgeTopSeller
	case o.SuccessfulDeals >= 3 && o.Rating >= 4.0:
		return domain.BadgeTrustedSeller
	case o.Verified || o.IsGoogleLogin || (o.EmailVerified && o.PhoneVerified):
		return domain.BadgeVerifiedOwner
	default:
		return domain.BadgeNewSeller
	}
}
