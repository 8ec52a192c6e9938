package postgres

import (
	"database/sql"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

func TestBuildSearchQuery(t *testing.T) {
	t.Parallel()

	maxPrice := 30000.0
	query, args := buildSearchQuery(domain.PropertyFilter{
		City:     " Pune ",
		Type:     domain.PropertyTypeFlat,
		Purpose:  domain.PurposeRent,
		MaxPrice: &maxPrice,
	}, 20, 40)

	for _, fragment := range []string{
		"LOWER(city) = LOWER($1)",
		"type = $2",
		"purpose = $3",
		"price <= $4",
		"LIMIT $5 OFFSET $6",
	} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("expected query to contain %q, got %s", fragment, query)
		}
	}

	expected := []interface{}{"Pune", "FLAT", "RENT", 30000.0, 20, 40}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestBuildSearchQueryWithoutFilters(t *testing.T) {
	t.Parallel()

	query, args := buildSearchQuery(domain.PropertyFilter{Type: domain.PropertyType("castle")}, 10, 0)
	if strings.Contains(query, "type =") {
		t.Fatalf("expected unknown type to be ignored, got %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("expected only paging args, got %#v", args)
	}
}

func TestPropertyRowToDomain(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	row := propertyRow{
		ID:        id,
		City:      "Mumbai",
		Type:      "flat",
		Purpose:   "rent",
		Amenities: pq.StringArray{"wifi", "lift"},
		Latitude:  sql.NullFloat64{Float64: 19.1, Valid: true},
		BHK:       sql.NullInt32{Int32: 2, Valid: true},
	}

	p := row.toDomain()
	if p.ID != id || p.Type != domain.PropertyTypeFlat || p.Purpose != domain.PurposeRent {
		t.Fatalf("unexpected property: %+v", p)
	}
	if p.Latitude == nil || *p.Latitude != 19.1 {
		t.Fatalf("expected latitude to be set")
	}
	if p.Longitude != nil {
		t.Fatalf("expected longitude to stay nil")
	}
	if p.BHK == nil || *p.BHK != 2 {
		t.Fatalf("expected bhk 2")
	}
	if len(p.Amenities) != 2 {
		t.Fatalf("expected amenities to be copied, got %v", p.Amenities)
	}
}
