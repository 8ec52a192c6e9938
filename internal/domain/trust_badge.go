package domain

import "fmt"

// TrustBadge is an ordered reputation label derived from owner facts.
// It is never persisted; callers recompute it on every read.
type TrustBadge int

const (
	BadgeNewSeller TrustBadge = iota
	BadgeVerifiedOwner
	BadgeTrustedSeller
	BadgeTopSeller
)

var trustBadgeNames = [...]string{
	BadgeNewSeller:     "NEW_SELLER",
	BadgeVerifiedOwner: "VERIFIED_OWNER",
	BadgeTrustedSeller: "TRUSTED_SELLER",
	BadgeTopSeller:     "TOP_SELLER",
}

func (b TrustBadge) String() string {
	if b < BadgeNewSeller || b > BadgeTopSeller {
		return trustBadgeNames[BadgeNewSeller]
	}
	return trustBadgeNames[b]
}

// Rank is the badge position in the ordering, NEW_SELLER being 0
func (b TrustBadge) Rank() int {
	return int(b)
}

func (b TrustBadge) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *TrustBadge) UnmarshalText(text []byte) error {
	for i, name := range trustBadgeNames {
		if name == string(text) {
			*b = TrustBadge(i)
			return nil
		}
	}
	return fmt.Errorf("unknown trust badge %q", string(text))
}
