package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"partyscout/models"
	"partyscout/service"
)

const birthdayTimeLayout = "2006-01-02T15:04:05"

// BirthdayHandler serves the legacy birthday venue search endpoint.
type BirthdayHandler struct {
	venueSearchService *services.VenueSearchService
	validate           *validator.Validate
}

func NewBirthdayHandler(venueSearchService *services.VenueSearchService) *BirthdayHandler {
	return &BirthdayHandler{
		venueSearchService: venueSearchService,
		validate:           validator.New(),
	}
}

// SearchBirthdayVenues handles POST /api/birthdays/search
func (h *BirthdayHandler) SearchBirthdayVenues(w http.ResponseWriter, r *http.Request) {
	var request models.BirthdayRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", validationDetails(err))
		return
	}

	venueOptions := h.venueSearchService.SearchVenues(r.Context(), request.Age, request.AreaCode)

	writeJSON(w, http.StatusOK, models.BirthdayResponse{
		VenueOptions: venueOptions,
		TotalResults: len(venueOptions),
		SearchParameters: &models.BirthdaySearchParameters{
			Age:      request.Age,
			AreaCode: request.AreaCode,
			Time:     request.Time.Format(birthdayTimeLayout),
		},
	})
}
