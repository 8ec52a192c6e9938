package domain

import (
	"time"

	"github.com/google/uuid"
)

type Owner struct {
	ID              uuid.UUID `json:"id" db:"id"`
	DisplayName     string    `json:"display_name" db:"display_name"`
	Verified        bool      `json:"verified" db:"verified"`
	IsGoogleLogin   bool      `json:"is_google_login" db:"is_google_login"`
	EmailVerified   bool      `json:"email_verified" db:"email_verified"`
	PhoneVerified   bool      `json:"phone_verified" db:"phone_verified"`
	Rating          float64   `json:"rating" db:"rating"`
	SuccessfulDeals int       `json:"successful_deals" db:"successful_deals"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// OwnerFacts is the part of a user the credibility and badge rules read
type OwnerFacts struct {
	Verified        bool    `json:"verified"`
	IsGoogleLogin   bool    `json:"is_google_login"`
	EmailVerified   bool    `json:"email_verified"`
	PhoneVerified   bool    `json:"phone_verified"`
	Rating          float64 `json:"rating"`
	SuccessfulDeals int     `json:"successful_deals"`
}

// Facts is nil-safe so callers can pass an optional join result straight through
func (o *Owner) Facts() *OwnerFacts {
	if o == nil {
		return nil
	}
	return &OwnerFacts{
		Verified:        o.Verified,
		IsGoogleLogin:   o.IsGoogleLogin,
		EmailVerified:   o.EmailVerified,
		PhoneVerified:   o.PhoneVerified,
		Rating:          o.Rating,
		SuccessfulDeals: o.SuccessfulDeals,
	}
}
