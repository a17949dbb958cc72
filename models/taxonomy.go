package models

// CostRange is a low/high per-person dollar range for a party type.
type CostRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// PartyTypeTaxonomy is one entry of the static party-type catalog.
type PartyTypeTaxonomy struct {
	Type                 string    `json:"type"`
	DisplayName          string    `json:"displayName"`
	Description          string    `json:"description"`
	Icon                 string    `json:"icon"`
	MinAge               int       `json:"minAge"`
	MaxAge               int       `json:"maxAge"`
	GooglePlacesTypes    []string  `json:"googlePlacesTypes"`
	SearchKeywords       []string  `json:"searchKeywords"`
	TypicalDuration      string    `json:"typicalDuration"`
	AverageCostPerPerson CostRange `json:"averageCostPerPerson"`
	Setting              string    `json:"setting"` // indoor | outdoor | both
}

// PartyTypeSuggestion is a taxonomy entry ranked for a specific age.
type PartyTypeSuggestion struct {
	Type            string `json:"type"`
	DisplayName     string `json:"displayName"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	AgeRange        string `json:"ageRange"`    // e.g. "Ages 5-8"
	AverageCost     string `json:"averageCost"` // e.g. "$200-400"
	PopularityScore int    `json:"popularityScore"`
}
