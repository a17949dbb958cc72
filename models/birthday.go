package models

import "time"

// BirthdayRequest is the input of the legacy birthday venue search.
type BirthdayRequest struct {
	Age      int       `json:"age" validate:"required,min=1,max=150"`
	AreaCode string    `json:"areaCode" validate:"required,len=5,numeric"`
	Time     time.Time `json:"time" validate:"required"`
}

// BirthdayVenueOption is the detailed legacy venue shape, including the
// inferred kid-friendly features.
type BirthdayVenueOption struct {
	Name                string              `json:"name"`
	Address             string              `json:"address"`
	Rating              float64             `json:"rating"`
	KidFriendlyFeatures KidFriendlyFeatures `json:"kidFriendlyFeatures"`
	EstimatedCapacity   int                 `json:"estimatedCapacity"`
	Description         string              `json:"description,omitempty"`
	PriceRange          string              `json:"priceRange,omitempty"`
	PhoneNumber         string              `json:"phoneNumber,omitempty"`
	Website             string              `json:"website,omitempty"`
	DistanceInMiles     float64             `json:"distanceInMiles"`
}

type KidFriendlyFeatures struct {
	IsKidFriendly         bool     `json:"isKidFriendly"`
	AgeRange              string   `json:"ageRange,omitempty"`
	HasPlayArea           bool     `json:"hasPlayArea"`
	HasKidsMenu           bool     `json:"hasKidsMenu"`
	HasHighChairs         bool     `json:"hasHighChairs"`
	HasChangingStation    bool     `json:"hasChangingStation"`
	EntertainmentOptions  []string `json:"entertainmentOptions"`
	SafetyFeatures        []string `json:"safetyFeatures"`
	SpecialAccommodations []string `json:"specialAccommodations"`
}

type BirthdayResponse struct {
	VenueOptions     []BirthdayVenueOption     `json:"venueOptions"`
	TotalResults     int                       `json:"totalResults"`
	SearchParameters *BirthdaySearchParameters `json:"searchParameters,omitempty"`
}

type BirthdaySearchParameters struct {
	Age      int    `json:"age"`
	AreaCode string `json:"areaCode"`
	Time     string `json:"time"`
}
