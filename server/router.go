package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PartyWizardRoutes is the set of handler funcs the v2 party wizard exposes.
type PartyWizardRoutes interface {
	SearchPartyVenues(w http.ResponseWriter, r *http.Request)
	SearchPartyVenuesChart(w http.ResponseWriter, r *http.Request)
	GetPartyTypesForAge(w http.ResponseWriter, r *http.Request)
	GetAllPartyTypes(w http.ResponseWriter, r *http.Request)
	EstimateBudget(w http.ResponseWriter, r *http.Request)
	GetPartyDetails(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type BirthdayRoutes interface {
	SearchBirthdayVenues(w http.ResponseWriter, r *http.Request)
}

type PartyOptionsRoutes interface {
	GetPartyOptions(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	partyWizardHandler  PartyWizardRoutes
	birthdayHandler     BirthdayRoutes
	partyOptionsHandler PartyOptionsRoutes
	router              *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	partyWizardHandler PartyWizardRoutes,
	birthdayHandler BirthdayRoutes,
	partyOptionsHandler PartyOptionsRoutes,
	router *mux.Router) *Router {
	return &Router{
		partyWizardHandler:  partyWizardHandler,
		birthdayHandler:     birthdayHandler,
		partyOptionsHandler: partyOptionsHandler,
		router:              router,
	}
}

func (r *Router) RegisterRoutes() {
	wizard := r.router.PathPrefix("/api/v2/party-wizard").Subrouter()
	wizard.HandleFunc("/search", r.partyWizardHandler.SearchPartyVenues).Methods("POST")
	wizard.HandleFunc("/search-chart", r.partyWizardHandler.SearchPartyVenuesChart).Methods("POST")
	// expects {age} to be an integer between 1 and 150
	wizard.HandleFunc("/party-types/{age}", r.partyWizardHandler.GetPartyTypesForAge).Methods("GET")
	wizard.HandleFunc("/party-types", r.partyWizardHandler.GetAllPartyTypes).Methods("GET")
	wizard.HandleFunc("/estimate-budget", r.partyWizardHandler.EstimateBudget).Methods("POST")
	// expects ?partyTypes={a,b}&guestCount={int}&priceLevel={0-4}
	wizard.HandleFunc("/party-details", r.partyWizardHandler.GetPartyDetails).Methods("GET")

	r.router.HandleFunc("/api/birthdays/search", r.birthdayHandler.SearchBirthdayVenues).Methods("POST")
	r.router.HandleFunc("/api/v1/party-options", r.partyOptionsHandler.GetPartyOptions).Methods("POST")

	r.router.HandleFunc("/ping", r.partyWizardHandler.Ping).Methods("GET")
}
