package domain

// PreferenceRequest is a renter's search criteria
type PreferenceRequest struct {
	PreferredLocation string       `json:"preferred_location"`
	BudgetMin         *float64     `json:"budget_min"`
	BudgetMax         *float64     `json:"budget_max"`
	PropertyType      PropertyType `json:"property_type"`
	Purpose           Purpose      `json:"purpose"`
	RequiredAmenities []string     `json:"required_amenities"`
	UserProfile       Persona      `json:"user_profile"`
}

// Filter derives the coarse repository filter used to pick candidates
// before they are scored. Location is left out because the scorer handles
// fuzzy and distance matches the database cannot. Purpose is left out too:
// a mismatch is penalised by the scorer, not hidden.
func (p PreferenceRequest) Filter() PropertyFilter {
	var f PropertyFilter
	if p.BudgetMax != nil && *p.BudgetMax > 0 {
		// leave room for the over-budget bands
		ceiling := *p.BudgetMax * 1.5
		f.MaxPrice = &ceiling
	}
	return f
}
