package domain

import "testing"

func TestPreferenceFilter(t *testing.T) {
	t.Parallel()

	budget := 20000.0
	f := PreferenceRequest{Purpose: PurposeSale, BudgetMax: &budget}.Filter()
	if f.Purpose != PurposeUnknown {
		t.Fatalf("expected purpose left to the scorer, got %q", f.Purpose)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 30000 {
		t.Fatalf("expected price ceiling 30000, got %v", f.MaxPrice)
	}

	zero := 0.0
	if f := (PreferenceRequest{BudgetMax: &zero}).Filter(); f.MaxPrice != nil {
		t.Fatalf("expected no ceiling for zero budget, got %v", *f.MaxPrice)
	}
}

func TestHasCoordinates(t *testing.T) {
	t.Parallel()

	lat, lon := 18.5, 73.8
	tests := []struct {
		facts  PropertyFacts
		expect bool
	}{
		{PropertyFacts{Latitude: &lat, Longitude: &lon}, true},
		{PropertyFacts{Latitude: &lat}, false},
		{PropertyFacts{Longitude: &lon}, false},
		{PropertyFacts{}, false},
	}

	for i, tt := range tests {
		if got := tt.facts.HasCoordinates(); got != tt.expect {
			t.Fatalf("case %d: expected %v, got %v", i, tt.expect, got)
		}
	}
}
