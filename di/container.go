package di

import (
	"log"

	"github.com/gorilla/mux"

	"partyscout/api"
	"partyscout/api/googleplaces"
	"partyscout/config"
	"partyscout/server"
	"partyscout/server/handlers"
	services "partyscout/service"
)

// Container holds all application dependencies.
type Container struct {
	PlacesAPI               googleplaces.PlacesAPI
	PartyTypeService        *services.PartyTypeService
	BudgetEstimationService *services.BudgetEstimationService
	MatchScoreService       *services.MatchScoreService
	PartyDetailsService     *services.PartyDetailsService
	VenueSearchService      *services.VenueSearchService
	PartyWizardHandler      *handlers.PartyWizardHandler
	BirthdayHandler         *handlers.BirthdayHandler
	PartyOptionsHandler     *handlers.PartyOptionsHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	PartyScoutHttpServer    *server.PartyScoutHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)

	apiKey := config.GooglePlacesAPIKey()

	// Initialize PlacesAPI - mock outside prod
	var placesApiClient googleplaces.PlacesAPI
	if env != "prod" {
		placesApiClient = googleplaces.NewPlacesApiClientMock()
		log.Printf("Using mock places api")
	} else {
		log.Printf("Using prod places api")
		geocodingClient := api.NewHTTPClient(config.GOOGLE_GEOCODING_ENDPOINT_BASE, config.HTTP_CLIENT_TIMEOUT)
		placesClient := api.NewHTTPClient(config.GOOGLE_PLACES_ENDPOINT_BASE, config.HTTP_CLIENT_TIMEOUT)

		placesApiClient = googleplaces.NewPlacesApiClient(geocodingClient, placesClient)
		placesApiClient.SetAPIKey(apiKey)
	}

	// Initialize service layer
	partyTypeService := services.NewPartyTypeService()
	budgetEstimationService := services.NewBudgetEstimationService()
	matchScoreService := services.NewMatchScoreService(partyTypeService, budgetEstimationService)
	partyDetailsService := services.NewPartyDetailsService(partyTypeService)
	venueSearchService := services.NewVenueSearchService(
		placesApiClient, partyTypeService, matchScoreService,
		budgetEstimationService, partyDetailsService, apiKey,
	)

	// Initialize handlers
	partyWizardHandler := handlers.NewPartyWizardHandler(
		venueSearchService, partyTypeService, budgetEstimationService, partyDetailsService,
	)
	birthdayHandler := handlers.NewBirthdayHandler(venueSearchService)
	partyOptionsHandler := handlers.NewPartyOptionsHandler(venueSearchService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(partyWizardHandler, birthdayHandler, partyOptionsHandler, muxRouter)

	// Initialize party scout server
	partyScoutHttpServer := server.NewPartyScoutHttpServer(router, muxRouter)

	return &Container{
		PlacesAPI:               placesApiClient,
		PartyTypeService:        partyTypeService,
		BudgetEstimationService: budgetEstimationService,
		MatchScoreService:       matchScoreService,
		PartyDetailsService:     partyDetailsService,
		VenueSearchService:      venueSearchService,
		PartyWizardHandler:      partyWizardHandler,
		BirthdayHandler:         birthdayHandler,
		PartyOptionsHandler:     partyOptionsHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		PartyScoutHttpServer:    partyScoutHttpServer,
	}
}
