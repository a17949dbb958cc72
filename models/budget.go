package models

// BudgetEstimateRequest asks for a cost estimate for a party configuration.
type BudgetEstimateRequest struct {
	PartyTypes []string `json:"partyTypes" validate:"required,min=1"`
	GuestCount int      `json:"guestCount" validate:"required,min=1"`
	PriceLevel *int     `json:"priceLevel,omitempty" validate:"omitempty,min=0,max=4"`
}

type BudgetEstimateResponse struct {
	EstimatedTotal     int    `json:"estimatedTotal"`
	EstimatedPerPerson int    `json:"estimatedPerPerson"`
	BudgetCategory     string `json:"budgetCategory"`
}

// PartyDetailsResponse is the enrichment content for a party configuration.
type PartyDetailsResponse struct {
	IncludedItems                 []string `json:"includedItems"`
	NotIncluded                   []string `json:"notIncluded"`
	SuggestedAddOns               []AddOn  `json:"suggestedAddOns"`
	WhatToBring                   []string `json:"whatToBring"`
	TypicalDuration               string   `json:"typicalDuration"`
	AgeAppropriatenessDescription string   `json:"ageAppropriatenessDescription"`
}

// ErrorResponse is the JSON error envelope returned by every handler.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
