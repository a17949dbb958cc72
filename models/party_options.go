package models

import "time"

// PartyOptionsRequest is the input of the legacy simple party-options search.
type PartyOptionsRequest struct {
	Age      int       `json:"age" validate:"required,min=1,max=150"`
	AreaCode string    `json:"areaCode" validate:"required,len=5,numeric"`
	Time     time.Time `json:"time" validate:"required"`
}

type PartyOptionsResponse struct {
	VenueOptions   []VenueOption  `json:"venueOptions"`
	SearchCriteria SearchCriteria `json:"searchCriteria"`
}

// VenueOption is the simple legacy venue shape.
type VenueOption struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Address           string   `json:"address"`
	Distance          float64  `json:"distance"`
	Rating            float64  `json:"rating"`
	PriceLevel        int      `json:"priceLevel"`
	Amenities         []string `json:"amenities"`
	AvailableCapacity int      `json:"availableCapacity"`
	EstimatedCost     float64  `json:"estimatedCost"`
	Description       string   `json:"description"`
}

type SearchCriteria struct {
	Age      int    `json:"age"`
	AreaCode string `json:"areaCode"`
	Time     string `json:"time"`
}
