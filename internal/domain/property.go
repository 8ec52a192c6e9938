package domain

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	OwnerID         uuid.UUID    `json:"owner_id" db:"owner_id"`
	Title           string       `json:"title" db:"title"`
	City            string       `json:"city" db:"city"`
	Area            string       `json:"area" db:"area"`
	Type            PropertyType `json:"type" db:"type"`
	Purpose         Purpose      `json:"purpose" db:"purpose"`
	Price           float64      `json:"price" db:"price"`
	Amenities       []string     `json:"amenities" db:"amenities"`
	Latitude        *float64     `json:"latitude" db:"latitude"`
	Longitude       *float64     `json:"longitude" db:"longitude"`
	BHK             *int         `json:"bhk" db:"bhk"`
	ViewCount       int          `json:"view_count" db:"view_count"`
	ContactRequests int          `json:"contact_requests" db:"contact_requests"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"`
}

// PropertyFacts is the part of a listing the scorers read
type PropertyFacts struct {
	City            string       `json:"city"`
	Area            string       `json:"area"`
	Type            PropertyType `json:"type"`
	Purpose         Purpose      `json:"purpose"`
	Price           float64      `json:"price"`
	Amenities       []string     `json:"amenities"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	BHK             *int         `json:"bhk,omitempty"`
	ViewCount       int          `json:"view_count"`
	ContactRequests int          `json:"contact_requests"`
}

func (p *Property) Facts() PropertyFacts {
	return PropertyFacts{
		City:            p.City,
		Area:            p.Area,
		Type:            p.Type,
		Purpose:         p.Purpose,
		Price:           p.Price,
		Amenities:       p.Amenities,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		BHK:             p.BHK,
		ViewCount:       p.ViewCount,
		ContactRequests: p.ContactRequests,
	}
}

// HasCoordinates reports whether both latitude and longitude are known
func (f PropertyFacts) HasCoordinates() bool {
	return f.Latitude != nil && f.Longitude != nil
}

// PropertyFilter narrows a repository search
type PropertyFilter struct {
	City     string
	Type     PropertyType
	Purpose  Purpose
	MinPrice *float64
	MaxPrice *float64
}
