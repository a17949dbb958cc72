package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"partyscout/models"
	"partyscout/service"
)

// PartyOptionsHandler serves the legacy simple party-options endpoint.
type PartyOptionsHandler struct {
	venueSearchService *services.VenueSearchService
	validate           *validator.Validate
}

func NewPartyOptionsHandler(venueSearchService *services.VenueSearchService) *PartyOptionsHandler {
	return &PartyOptionsHandler{
		venueSearchService: venueSearchService,
		validate:           validator.New(),
	}
}

// GetPartyOptions handles POST /api/v1/party-options
func (h *PartyOptionsHandler) GetPartyOptions(w http.ResponseWriter, r *http.Request) {
	var request models.PartyOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", validationDetails(err))
		return
	}

	venueOptions := h.venueSearchService.SearchPartyOptions(r.Context(), request.Age, request.AreaCode)

	writeJSON(w, http.StatusOK, models.PartyOptionsResponse{
		VenueOptions: venueOptions,
		SearchCriteria: models.SearchCriteria{
			Age:      request.Age,
			AreaCode: request.AreaCode,
			Time:     request.Time.Format(birthdayTimeLayout),
		},
	})
}
