package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"partyscout/api/googleplaces"
	"partyscout/models"
	"partyscout/service"
	"partyscout/util"
)

const (
	AGE_PATH_ARG          = "age"
	PARTY_TYPES_QUERY_ARG = "partyTypes"
	GUEST_COUNT_QUERY_ARG = "guestCount"
	PRICE_LEVEL_QUERY_ARG = "priceLevel"
)

// PartyWizardHandler serves the v2 party wizard endpoints: the full venue
// search plus the taxonomy, budget and content lookups that power the
// wizard steps.
type PartyWizardHandler struct {
	venueSearchService      *services.VenueSearchService
	partyTypeService        *services.PartyTypeService
	budgetEstimationService *services.BudgetEstimationService
	partyDetailsService     *services.PartyDetailsService
	validate                *validator.Validate
}

func NewPartyWizardHandler(
	venueSearchService *services.VenueSearchService,
	partyTypeService *services.PartyTypeService,
	budgetEstimationService *services.BudgetEstimationService,
	partyDetailsService *services.PartyDetailsService,
) *PartyWizardHandler {
	return &PartyWizardHandler{
		venueSearchService:      venueSearchService,
		partyTypeService:        partyTypeService,
		budgetEstimationService: budgetEstimationService,
		partyDetailsService:     partyDetailsService,
		validate:                validator.New(),
	}
}

// SearchPartyVenues handles POST /api/v2/party-wizard/search
func (h *PartyWizardHandler) SearchPartyVenues(w http.ResponseWriter, r *http.Request) {
	request, ok := h.parseSearchRequest(w, r)
	if !ok {
		return // error already written
	}

	response, err := h.venueSearchService.SearchPartyVenues(r.Context(), *request)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// SearchPartyVenuesChart handles POST /api/v2/party-wizard/search-chart and
// renders the match scores of a search as an HTML bar chart.
func (h *PartyWizardHandler) SearchPartyVenuesChart(w http.ResponseWriter, r *http.Request) {
	request, ok := h.parseSearchRequest(w, r)
	if !ok {
		return
	}

	response, err := h.venueSearchService.SearchPartyVenues(r.Context(), *request)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderMatchScoreChart(response, w); err != nil {
		log.Println("Error rendering match score chart:", err)
	}
}

func (h *PartyWizardHandler) parseSearchRequest(w http.ResponseWriter, r *http.Request) (*models.PartySearchRequest, bool) {
	var request models.PartySearchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return nil, false
	}

	if err := h.validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", validationDetails(err))
		return nil, false
	}
	if request.BudgetMin != nil && request.BudgetMax != nil && *request.BudgetMin > *request.BudgetMax {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", "budgetMin must not exceed budgetMax")
		return nil, false
	}

	request.ApplyDefaults()
	return &request, true
}

func (h *PartyWizardHandler) writeSearchError(w http.ResponseWriter, err error) {
	var geocodeErr *googleplaces.GeocodeError
	var searchErr *googleplaces.SearchError

	switch {
	case errors.As(err, &geocodeErr):
		log.Println("Geocoding failed:", err)
		writeError(w, http.StatusServiceUnavailable, "GEOCODING_ERROR", "Unable to resolve the zip code", geocodeErr.Reason)
	case errors.As(err, &searchErr):
		log.Println("Places search failed:", err)
		writeError(w, http.StatusServiceUnavailable, "GOOGLE_PLACES_ERROR", "Venue search is temporarily unavailable", searchErr.Reason)
	default:
		log.Println("Party venue search failed:", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
	}
}

// GetPartyTypesForAge handles GET /api/v2/party-wizard/party-types/{age}
func (h *PartyWizardHandler) GetPartyTypesForAge(w http.ResponseWriter, r *http.Request) {
	age, err := strconv.Atoi(mux.Vars(r)[AGE_PATH_ARG])
	if err != nil || age < 1 || age > 150 {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid argument "+AGE_PATH_ARG, "")
		return
	}

	writeJSON(w, http.StatusOK, h.partyTypeService.GetPartyTypesForAge(age))
}

// GetAllPartyTypes handles GET /api/v2/party-wizard/party-types
func (h *PartyWizardHandler) GetAllPartyTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.partyTypeService.GetAllPartyTypes())
}

// EstimateBudget handles POST /api/v2/party-wizard/estimate-budget
func (h *PartyWizardHandler) EstimateBudget(w http.ResponseWriter, r *http.Request) {
	var request models.BudgetEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", validationDetails(err))
		return
	}

	estimatedTotal := h.budgetEstimationService.EstimatePartyCost(request.PartyTypes, request.GuestCount, request.PriceLevel)
	writeJSON(w, http.StatusOK, models.BudgetEstimateResponse{
		EstimatedTotal:     estimatedTotal,
		EstimatedPerPerson: h.budgetEstimationService.EstimateCostPerPerson(request.PartyTypes, request.PriceLevel),
		BudgetCategory:     h.budgetEstimationService.GetBudgetRangeDescription(estimatedTotal),
	})
}

// GetPartyDetails handles GET /api/v2/party-wizard/party-details
// expects ?partyTypes={a,b}&guestCount={n}&priceLevel={0-4}
func (h *PartyWizardHandler) GetPartyDetails(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	partyTypesArg := query.Get(PARTY_TYPES_QUERY_ARG)
	if partyTypesArg == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Missing argument "+PARTY_TYPES_QUERY_ARG, "")
		return
	}
	partyTypes := strings.Split(partyTypesArg, ",")

	guestCount := 10
	if arg := query.Get(GUEST_COUNT_QUERY_ARG); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid argument "+GUEST_COUNT_QUERY_ARG, "")
			return
		}
		guestCount = parsed
	}

	var priceLevel *int
	if arg := query.Get(PRICE_LEVEL_QUERY_ARG); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed < 0 || parsed > 4 {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid argument "+PRICE_LEVEL_QUERY_ARG, "")
			return
		}
		priceLevel = &parsed
	}

	writeJSON(w, http.StatusOK, models.PartyDetailsResponse{
		IncludedItems:                 h.partyDetailsService.GetIncludedItems(partyTypes, priceLevel),
		NotIncluded:                   h.partyDetailsService.GetNotIncludedItems(partyTypes, priceLevel),
		SuggestedAddOns:               h.partyDetailsService.GetSuggestedAddOns(partyTypes, guestCount),
		WhatToBring:                   h.partyDetailsService.GetWhatToBring(partyTypes, priceLevel),
		TypicalDuration:               h.partyDetailsService.GetTypicalDuration(partyTypes),
		AgeAppropriatenessDescription: h.partyDetailsService.GetAgeAppropriatenessDescription(partyTypes),
	})
}

// Ping handles GET /ping
func (h *PartyWizardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
