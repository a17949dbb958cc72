package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"partyscout/api/googleplaces"
	"partyscout/models"
	"partyscout/service"
)

// pointTestsAtProjectRoot makes fixture paths resolve from the package dir.
func pointTestsAtProjectRoot(t *testing.T) {
	t.Helper()
	root, err := filepath.Abs("../..")
	if err != nil {
		t.Fatalf("Failed to resolve project root: %v", err)
	}
	t.Setenv("PROJECT_ROOT", root)
}

func newPartyWizardHandler(t *testing.T) *PartyWizardHandler {
	t.Helper()
	pointTestsAtProjectRoot(t)

	partyTypeService := services.NewPartyTypeService()
	budgetEstimationService := services.NewBudgetEstimationService()
	matchScoreService := services.NewMatchScoreService(partyTypeService, budgetEstimationService)
	partyDetailsService := services.NewPartyDetailsService(partyTypeService)
	venueSearchService := services.NewVenueSearchService(
		googleplaces.NewPlacesApiClientMock(), partyTypeService, matchScoreService,
		budgetEstimationService, partyDetailsService, "test-key",
	)
	return NewPartyWizardHandler(venueSearchService, partyTypeService, budgetEstimationService, partyDetailsService)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	handlerFunc(rr, req)
	return rr
}

func TestSearchPartyVenues_Success(t *testing.T) {
	handler := newPartyWizardHandler(t)

	rr := postJSON(t, handler.SearchPartyVenues, "/api/v2/party-wizard/search", models.PartySearchRequest{
		Age:        7,
		PartyTypes: []string{"active_play"},
		GuestCount: 15,
		ZipCode:    "98004",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var response models.PartySearchResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	assert.NotEmpty(t, response.Venues)
	assert.NotEmpty(t, response.PartyTypeSuggestions)
	assert.Equal(t, "98004", response.SearchCriteria.ZipCode)
	// Defaults applied before searching
	assert.Equal(t, "any", response.SearchCriteria.Setting)

	for i := 1; i < len(response.Venues); i++ {
		if response.Venues[i-1].MatchScore < response.Venues[i].MatchScore {
			t.Errorf("Venues not sorted by match score")
		}
	}
}

func TestSearchPartyVenues_InvalidBody(t *testing.T) {
	handler := newPartyWizardHandler(t)

	req := httptest.NewRequest("POST", "/api/v2/party-wizard/search", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.SearchPartyVenues(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}

	var errorResponse models.ErrorResponse
	json.Unmarshal(rr.Body.Bytes(), &errorResponse)
	assert.Equal(t, "BAD_REQUEST", errorResponse.Error)
}

func TestSearchPartyVenues_ValidationFailures(t *testing.T) {
	handler := newPartyWizardHandler(t)

	tests := []struct {
		name    string
		request models.PartySearchRequest
	}{
		{
			name: "Missing required fields",
			request: models.PartySearchRequest{
				PartyTypes: []string{"active_play"},
			},
		},
		{
			name: "Malformed zip code",
			request: models.PartySearchRequest{
				Age:        7,
				GuestCount: 15,
				ZipCode:    "9800A",
			},
		},
		{
			name: "Unknown setting",
			request: models.PartySearchRequest{
				Age:        7,
				GuestCount: 15,
				ZipCode:    "98004",
				Setting:    "underwater",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := postJSON(t, handler.SearchPartyVenues, "/api/v2/party-wizard/search", test.request)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rr.Code)
			}

			var errorResponse models.ErrorResponse
			json.Unmarshal(rr.Body.Bytes(), &errorResponse)
			assert.Equal(t, "VALIDATION_ERROR", errorResponse.Error)
		})
	}
}

func TestSearchPartyVenues_BudgetBoundsChecked(t *testing.T) {
	handler := newPartyWizardHandler(t)

	budgetMin := 500
	budgetMax := 200
	rr := postJSON(t, handler.SearchPartyVenues, "/api/v2/party-wizard/search", models.PartySearchRequest{
		Age:        7,
		PartyTypes: []string{"active_play"},
		GuestCount: 15,
		ZipCode:    "98004",
		BudgetMin:  &budgetMin,
		BudgetMax:  &budgetMax,
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}

	var errorResponse models.ErrorResponse
	json.Unmarshal(rr.Body.Bytes(), &errorResponse)
	assert.Equal(t, "VALIDATION_ERROR", errorResponse.Error)
	assert.Contains(t, errorResponse.Details, "budgetMin")
}

func TestGetPartyTypesForAge(t *testing.T) {
	handler := newPartyWizardHandler(t)

	req := httptest.NewRequest("GET", "/api/v2/party-wizard/party-types/7", nil)
	req = mux.SetURLVars(req, map[string]string{"age": "7"})
	rr := httptest.NewRecorder()
	handler.GetPartyTypesForAge(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var suggestions []models.PartyTypeSuggestion
	if err := json.Unmarshal(rr.Body.Bytes(), &suggestions); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	assert.Equal(t, 6, len(suggestions))
}

func TestGetPartyTypesForAge_InvalidAge(t *testing.T) {
	handler := newPartyWizardHandler(t)

	for _, age := range []string{"abc", "0", "200"} {
		req := httptest.NewRequest("GET", "/api/v2/party-wizard/party-types/"+age, nil)
		req = mux.SetURLVars(req, map[string]string{"age": age})
		rr := httptest.NewRecorder()
		handler.GetPartyTypesForAge(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Age %s: expected status 400, got %d", age, rr.Code)
		}
	}
}

func TestEstimateBudget(t *testing.T) {
	handler := newPartyWizardHandler(t)

	priceLevel := 2
	rr := postJSON(t, handler.EstimateBudget, "/api/v2/party-wizard/estimate-budget", models.BudgetEstimateRequest{
		PartyTypes: []string{"active_play"},
		GuestCount: 15,
		PriceLevel: &priceLevel,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response models.BudgetEstimateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	assert.Equal(t, 450, response.EstimatedTotal)
	assert.Equal(t, 25, response.EstimatedPerPerson)
	assert.Equal(t, "Premium", response.BudgetCategory)
}

func TestEstimateBudget_RequiresPartyTypes(t *testing.T) {
	handler := newPartyWizardHandler(t)

	rr := postJSON(t, handler.EstimateBudget, "/api/v2/party-wizard/estimate-budget", models.BudgetEstimateRequest{
		GuestCount: 15,
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}
}

func TestGetPartyDetails(t *testing.T) {
	handler := newPartyWizardHandler(t)

	req := httptest.NewRequest("GET", "/api/v2/party-wizard/party-details?partyTypes=bounce_house&guestCount=10&priceLevel=2", nil)
	rr := httptest.NewRecorder()
	handler.GetPartyDetails(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response models.PartyDetailsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	assert.Contains(t, response.IncludedItems, "Unlimited jump time")
	assert.NotEmpty(t, response.SuggestedAddOns)
	assert.NotEmpty(t, response.WhatToBring)
}

func TestGetPartyDetails_RequiresPartyTypes(t *testing.T) {
	handler := newPartyWizardHandler(t)

	req := httptest.NewRequest("GET", "/api/v2/party-wizard/party-details", nil)
	rr := httptest.NewRecorder()
	handler.GetPartyDetails(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}
}
