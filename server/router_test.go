package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockPartyWizardHandler is a mock implementation of PartyWizardRoutes.
type MockPartyWizardHandler struct{}

func (h *MockPartyWizardHandler) SearchPartyVenues(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "search"}`))
}

func (h *MockPartyWizardHandler) SearchPartyVenuesChart(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<html></html>`))
}

func (h *MockPartyWizardHandler) GetPartyTypesForAge(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "party types for age"}`))
}

func (h *MockPartyWizardHandler) GetAllPartyTypes(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "all party types"}`))
}

func (h *MockPartyWizardHandler) EstimateBudget(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "budget"}`))
}

func (h *MockPartyWizardHandler) GetPartyDetails(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "details"}`))
}

func (h *MockPartyWizardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

// MockBirthdayHandler is a mock implementation of BirthdayRoutes.
type MockBirthdayHandler struct{}

func (h *MockBirthdayHandler) SearchBirthdayVenues(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "birthdays"}`))
}

// MockPartyOptionsHandler is a mock implementation of PartyOptionsRoutes.
type MockPartyOptionsHandler struct{}

func (h *MockPartyOptionsHandler) GetPartyOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "party options"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockPartyWizardHandler{}, &MockBirthdayHandler{}, &MockPartyOptionsHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Party Wizard Search",
			method:     "POST",
			path:       "/api/v2/party-wizard/search",
			statusCode: http.StatusOK,
			response:   `{"message": "search"}`,
		},
		{
			name:       "Party Wizard Search Chart",
			method:     "POST",
			path:       "/api/v2/party-wizard/search-chart",
			statusCode: http.StatusOK,
			response:   `<html></html>`,
		},
		{
			name:       "Party Types For Age",
			method:     "GET",
			path:       "/api/v2/party-wizard/party-types/7",
			statusCode: http.StatusOK,
			response:   `{"message": "party types for age"}`,
		},
		{
			name:       "All Party Types",
			method:     "GET",
			path:       "/api/v2/party-wizard/party-types",
			statusCode: http.StatusOK,
			response:   `{"message": "all party types"}`,
		},
		{
			name:       "Estimate Budget",
			method:     "POST",
			path:       "/api/v2/party-wizard/estimate-budget",
			statusCode: http.StatusOK,
			response:   `{"message": "budget"}`,
		},
		{
			name:       "Party Details",
			method:     "GET",
			path:       "/api/v2/party-wizard/party-details",
			statusCode: http.StatusOK,
			response:   `{"message": "details"}`,
		},
		{
			name:       "Birthday Search",
			method:     "POST",
			path:       "/api/birthdays/search",
			statusCode: http.StatusOK,
			response:   `{"message": "birthdays"}`,
		},
		{
			name:       "Party Options",
			method:     "POST",
			path:       "/api/v1/party-options",
			statusCode: http.StatusOK,
			response:   `{"message": "party options"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Search Rejects GET",
			method:     "GET",
			path:       "/api/v2/party-wizard/search",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
