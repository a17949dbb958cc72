package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"partyscout/models"
)

func TestGetPartyOptions_Success(t *testing.T) {
	handler := NewPartyOptionsHandler(newVenueSearchServiceForHandlers(t))

	rr := postJSON(t, handler.GetPartyOptions, "/api/v1/party-options", models.PartyOptionsRequest{
		Age:      9,
		AreaCode: "98004",
		Time:     time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC),
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var response models.PartyOptionsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	assert.NotEmpty(t, response.VenueOptions)
	assert.Equal(t, 9, response.SearchCriteria.Age)
	assert.Equal(t, "2026-10-17T14:00:00", response.SearchCriteria.Time)

	for _, option := range response.VenueOptions {
		assert.NotEmpty(t, option.ID)
		assert.NotEmpty(t, option.Type)
	}
}

func TestGetPartyOptions_MissingFields(t *testing.T) {
	handler := NewPartyOptionsHandler(newVenueSearchServiceForHandlers(t))

	rr := postJSON(t, handler.GetPartyOptions, "/api/v1/party-options", models.PartyOptionsRequest{
		AreaCode: "98004",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}
}
