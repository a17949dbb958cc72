package models

import "time"

// PartySearchRequest is the input of the party wizard search endpoint.
type PartySearchRequest struct {
	Age              int        `json:"age" validate:"required,min=1,max=150"`
	PartyTypes       []string   `json:"partyTypes"`
	GuestCount       int        `json:"guestCount" validate:"required,min=1"`
	BudgetMin        *int       `json:"budgetMin,omitempty" validate:"omitempty,min=0"`
	BudgetMax        *int       `json:"budgetMax,omitempty" validate:"omitempty,min=0"`
	ZipCode          string     `json:"zipCode" validate:"required,len=5,numeric"`
	Setting          string     `json:"setting" validate:"omitempty,oneof=indoor outdoor any"`
	MaxDistanceMiles int        `json:"maxDistanceMiles" validate:"omitempty,min=1"`
	Date             *time.Time `json:"date,omitempty"`
}

// ApplyDefaults fills the optional fields the same way the request model
// defaults them: setting "any", search radius 10 miles.
func (r *PartySearchRequest) ApplyDefaults() {
	if r.Setting == "" {
		r.Setting = "any"
	}
	if r.MaxDistanceMiles == 0 {
		r.MaxDistanceMiles = 10
	}
}

type PartySearchResponse struct {
	Venues               []EnhancedVenue       `json:"venues"`
	SearchCriteria       PartySearchCriteria   `json:"searchCriteria"`
	PartyTypeSuggestions []PartyTypeSuggestion `json:"partyTypeSuggestions"`
}

// PartySearchCriteria echoes the request back in the response.
type PartySearchCriteria struct {
	Age              int        `json:"age"`
	PartyTypes       []string   `json:"partyTypes"`
	GuestCount       int        `json:"guestCount"`
	BudgetMin        *int       `json:"budgetMin,omitempty"`
	BudgetMax        *int       `json:"budgetMax,omitempty"`
	ZipCode          string     `json:"zipCode"`
	Setting          string     `json:"setting"`
	MaxDistanceMiles int        `json:"maxDistanceMiles"`
	Date             *time.Time `json:"date,omitempty"`
}

// EnhancedVenue is a venue annotated with match scoring, cost estimates and
// party content. Built once per request, never mutated afterwards.
type EnhancedVenue struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"userRatingsTotal"`
	PhoneNumber      string   `json:"phoneNumber,omitempty"`
	Website          string   `json:"website,omitempty"`
	DistanceInMiles  float64  `json:"distanceInMiles"`
	PriceLevel       int      `json:"priceLevel"` // 0-4
	PlaceTypes       []string `json:"placeTypes"`
	Photos           []string `json:"photos"`

	MatchScore   int      `json:"matchScore"` // 0-100
	MatchReasons []string `json:"matchReasons"`

	EstimatedTotal          int      `json:"estimatedTotal"`
	EstimatedPricePerPerson int      `json:"estimatedPricePerPerson"`
	IncludedItems           []string `json:"includedItems"`
	NotIncluded             []string `json:"notIncluded"`
	SuggestedAddOns         []AddOn  `json:"suggestedAddOns"`

	PopularForAges       string `json:"popularForAges"`       // e.g. "Best for ages 5-10"
	TypicalPartyDuration string `json:"typicalPartyDuration"` // e.g. "2 hours"

	MinCapacity int `json:"minCapacity"`
	MaxCapacity int `json:"maxCapacity"`

	Setting string `json:"setting"` // indoor | outdoor | both

	// Would need the opening-hours field mask plus a details call; always nil.
	IsOpenOnDate *bool    `json:"isOpenOnDate"`
	OpeningHours []string `json:"openingHours,omitempty"`
}

// AddOn is a suggested extra for a party.
type AddOn struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	EstimatedCost int    `json:"estimatedCost"`
	IsRecommended bool   `json:"isRecommended"`
}
