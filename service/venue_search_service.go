package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"partyscout/api/googleplaces"
	"partyscout/config"
	"partyscout/models"
	"partyscout/models/places"
	"partyscout/util"
)

const metersPerMile = 1609.34

// defaultCategoryFilters is used when the request names no party types.
var defaultCategoryFilters = []string{"amusement_center", "bowling_alley", "park"}

// VenueSearchService orchestrates venue discovery: geocoding the zip code,
// querying the Places API, and enriching the raw results with scoring, cost
// estimates and party content.
type VenueSearchService struct {
	placesAPI               googleplaces.PlacesAPI
	partyTypeService        *PartyTypeService
	matchScoreService       *MatchScoreService
	budgetEstimationService *BudgetEstimationService
	partyDetailsService     *PartyDetailsService
	apiKey                  string
}

func NewVenueSearchService(
	placesAPI googleplaces.PlacesAPI,
	partyTypeService *PartyTypeService,
	matchScoreService *MatchScoreService,
	budgetEstimationService *BudgetEstimationService,
	partyDetailsService *PartyDetailsService,
	apiKey string,
) *VenueSearchService {
	return &VenueSearchService{
		placesAPI:               placesAPI,
		partyTypeService:        partyTypeService,
		matchScoreService:       matchScoreService,
		budgetEstimationService: budgetEstimationService,
		partyDetailsService:     partyDetailsService,
		apiKey:                  apiKey,
	}
}

// SearchPartyVenues runs the full party wizard search. Provider failures are
// returned to the caller so the handler can surface them.
func (s *VenueSearchService) SearchPartyVenues(ctx context.Context, request models.PartySearchRequest) (*models.PartySearchResponse, error) {
	categoryFilters := s.partyTypeService.GetPlaceTypesForPartyTypes(request.PartyTypes)
	if len(categoryFilters) == 0 {
		categoryFilters = defaultCategoryFilters
	}

	location, err := s.placesAPI.GeocodeZipCode(ctx, request.ZipCode)
	if err != nil {
		return nil, err
	}

	radiusMeters := int(float64(request.MaxDistanceMiles) * metersPerMile)
	searchResponse, err := s.placesAPI.SearchNearby(ctx, *location, categoryFilters, radiusMeters)
	if err != nil {
		return nil, err
	}

	venues := make([]models.EnhancedVenue, 0, len(searchResponse.Places))
	for _, place := range searchResponse.Places {
		if place.Location == nil {
			log.Printf("WARN: skipping place without location: %s", place.ID)
			continue
		}
		venues = append(venues, s.buildEnhancedVenue(place, *location, request))
	}

	if request.Setting != "" && request.Setting != "any" {
		filtered := venues[:0]
		for _, venue := range venues {
			if venue.Setting == request.Setting || venue.Setting == "both" {
				filtered = append(filtered, venue)
			}
		}
		venues = filtered
	}

	withinDistance := venues[:0]
	for _, venue := range venues {
		if venue.DistanceInMiles <= float64(request.MaxDistanceMiles) {
			withinDistance = append(withinDistance, venue)
		}
	}
	venues = withinDistance

	sort.SliceStable(venues, func(i, j int) bool {
		return venues[i].MatchScore > venues[j].MatchScore
	})

	return &models.PartySearchResponse{
		Venues: venues,
		SearchCriteria: models.PartySearchCriteria{
			Age:              request.Age,
			PartyTypes:       request.PartyTypes,
			GuestCount:       request.GuestCount,
			BudgetMin:        request.BudgetMin,
			BudgetMax:        request.BudgetMax,
			ZipCode:          request.ZipCode,
			Setting:          request.Setting,
			MaxDistanceMiles: request.MaxDistanceMiles,
			Date:             request.Date,
		},
		PartyTypeSuggestions: s.partyTypeService.GetPartyTypesForAge(request.Age),
	}, nil
}

func (s *VenueSearchService) buildEnhancedVenue(place places.Place, origin places.Location, request models.PartySearchRequest) models.EnhancedVenue {
	priceLevel := ParsePriceLevel(place.PriceLevel)
	distance := util.DistanceMiles(origin.Lat, origin.Lng, place.Location.Latitude, place.Location.Longitude)

	minCapacity, maxCapacity := estimateCapacityRange(place.Types)
	match := s.matchScoreService.CalculateMatchScore(
		request, place.Types, place.Rating, place.UserRatingCount,
		&priceLevel, distance, minCapacity, maxCapacity,
	)

	id := place.ID
	if id == "" {
		id = "unknown-" + uuid.NewString()
	}
	name := "Unknown Venue"
	if place.DisplayName != nil {
		name = place.DisplayName.Text
	}
	rating := 0.0
	if place.Rating != nil {
		rating = *place.Rating
	}
	userRatingsTotal := 0
	if place.UserRatingCount != nil {
		userRatingsTotal = *place.UserRatingCount
	}

	return models.EnhancedVenue{
		ID:               id,
		Name:             name,
		Address:          formatAddress(place.FormattedAddress),
		Rating:           rating,
		UserRatingsTotal: userRatingsTotal,
		PhoneNumber:      place.InternationalPhoneNumber,
		Website:          place.WebsiteURI,
		DistanceInMiles:  math.Round(distance*10) / 10,
		PriceLevel:       priceLevel,
		PlaceTypes:       place.Types,
		Photos:           s.photoURLs(place.Photos),

		MatchScore:   match.TotalScore,
		MatchReasons: match.Reasons,

		EstimatedTotal:          s.budgetEstimationService.EstimatePartyCost(request.PartyTypes, request.GuestCount, &priceLevel),
		EstimatedPricePerPerson: s.budgetEstimationService.EstimateCostPerPerson(request.PartyTypes, &priceLevel),
		IncludedItems:           s.partyDetailsService.GetIncludedItems(request.PartyTypes, &priceLevel),
		NotIncluded:             s.partyDetailsService.GetNotIncludedItems(request.PartyTypes, &priceLevel),
		SuggestedAddOns:         s.partyDetailsService.GetSuggestedAddOns(request.PartyTypes, request.GuestCount),

		PopularForAges:       s.partyDetailsService.GetAgeAppropriatenessDescription(request.PartyTypes),
		TypicalPartyDuration: s.partyDetailsService.GetTypicalDuration(request.PartyTypes),

		MinCapacity: minCapacity,
		MaxCapacity: maxCapacity,

		Setting: inferSetting(place.Types),

		IsOpenOnDate: nil,
	}
}

// photoURLs builds media URLs for up to five photos of a place.
func (s *VenueSearchService) photoURLs(photos []places.PlacePhoto) []string {
	urls := make([]string, 0, 5)
	for _, photo := range photos {
		if len(urls) == 5 {
			break
		}
		urls = append(urls, fmt.Sprintf(
			"https://places.googleapis.com/v1/%s/media?key=%s&maxWidthPx=400",
			photo.Name, s.apiKey,
		))
	}
	return urls
}

// SearchVenues is the legacy birthday venue search. Provider failures are
// logged and absorbed; callers get an empty result set.
func (s *VenueSearchService) SearchVenues(ctx context.Context, age int, zipCode string) []models.BirthdayVenueOption {
	location, err := s.placesAPI.GeocodeZipCode(ctx, zipCode)
	if err != nil {
		log.Printf("ERROR: geocoding zip code %s: %v", zipCode, err)
		return []models.BirthdayVenueOption{}
	}

	searchResponse, err := s.placesAPI.SearchNearby(ctx, *location, keywordsForAge(age), config.DEFAULT_SEARCH_RADIUS_METERS)
	if err != nil {
		log.Printf("ERROR: searching venues near %s: %v", zipCode, err)
		return []models.BirthdayVenueOption{}
	}

	options := make([]models.BirthdayVenueOption, 0, len(searchResponse.Places))
	for _, place := range searchResponse.Places {
		if place.Location == nil {
			log.Printf("WARN: skipping place without location: %s", place.ID)
			continue
		}

		name := "Unknown Venue"
		if place.DisplayName != nil {
			name = place.DisplayName.Text
		}
		rating := 0.0
		if place.Rating != nil {
			rating = *place.Rating
		}
		distance := util.DistanceMiles(location.Lat, location.Lng, place.Location.Latitude, place.Location.Longitude)

		options = append(options, models.BirthdayVenueOption{
			Name:                name,
			Address:             formatAddress(place.FormattedAddress),
			Rating:              rating,
			KidFriendlyFeatures: inferKidFriendlyFeatures(place.Types, age),
			EstimatedCapacity:   estimateCapacity(place.Types),
			Description:         generateDescription(place.Types, place.Rating),
			PriceRange:          formatPriceRange(place.PriceLevel),
			PhoneNumber:         place.InternationalPhoneNumber,
			Website:             place.WebsiteURI,
			DistanceInMiles:     math.Round(distance*10) / 10,
		})
	}
	return options
}

// SearchPartyOptions is the legacy simple party-options search. Provider
// failures are logged and absorbed; callers get an empty result set.
func (s *VenueSearchService) SearchPartyOptions(ctx context.Context, age int, zipCode string) []models.VenueOption {
	location, err := s.placesAPI.GeocodeZipCode(ctx, zipCode)
	if err != nil {
		log.Printf("ERROR: geocoding zip code %s: %v", zipCode, err)
		return []models.VenueOption{}
	}

	searchResponse, err := s.placesAPI.SearchNearby(ctx, *location, keywordsForAge(age), config.DEFAULT_SEARCH_RADIUS_METERS)
	if err != nil {
		log.Printf("ERROR: searching party options near %s: %v", zipCode, err)
		return []models.VenueOption{}
	}

	options := make([]models.VenueOption, 0, len(searchResponse.Places))
	for _, place := range searchResponse.Places {
		if place.Location == nil {
			log.Printf("WARN: skipping place without location: %s", place.ID)
			continue
		}

		id := place.ID
		if id == "" {
			id = "unknown-" + uuid.NewString()
		}
		name := "Unknown Venue"
		if place.DisplayName != nil {
			name = place.DisplayName.Text
		}
		rating := 0.0
		if place.Rating != nil {
			rating = *place.Rating
		}
		priceLevel := ParsePriceLevel(place.PriceLevel)
		distance := util.DistanceMiles(location.Lat, location.Lng, place.Location.Latitude, place.Location.Longitude)

		options = append(options, models.VenueOption{
			ID:                id,
			Name:              name,
			Type:              inferVenueType(place.Types),
			Address:           formatAddress(place.FormattedAddress),
			Distance:          math.Round(distance*10) / 10,
			Rating:            rating,
			PriceLevel:        priceLevel,
			Amenities:         inferAmenities(place.Types),
			AvailableCapacity: estimateCapacity(place.Types),
			EstimatedCost:     estimateCost(priceLevel),
			Description:       generateDescription(place.Types, place.Rating),
		})
	}
	return options
}

// ParsePriceLevel maps a Places API (v1) price level token to the classic
// 0-4 scale, defaulting to moderate.
func ParsePriceLevel(token string) int {
	switch token {
	case "PRICE_LEVEL_FREE":
		return 0
	case "PRICE_LEVEL_INEXPENSIVE":
		return 1
	case "PRICE_LEVEL_MODERATE":
		return 2
	case "PRICE_LEVEL_EXPENSIVE":
		return 3
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return 4
	default:
		return 2
	}
}

// anyTypeContains reports whether any place type contains one of the given
// substrings, case-insensitively.
func anyTypeContains(placeTypes []string, substrings ...string) bool {
	for _, placeType := range placeTypes {
		lower := strings.ToLower(placeType)
		for _, substring := range substrings {
			if strings.Contains(lower, substring) {
				return true
			}
		}
	}
	return false
}

// formatAddress falls back to a placeholder when the provider omits the
// formatted address.
func formatAddress(address string) string {
	if address == "" {
		return "Address not available"
	}
	return address
}

// inferSetting guesses whether a venue is indoor, outdoor, or both from its
// place types. Any tag mentioning a park, zoo, or garden marks it outdoor.
func inferSetting(placeTypes []string) string {
	switch {
	case anyTypeContains(placeTypes, "park", "zoo", "garden"):
		return "outdoor"
	case anyTypeContains(placeTypes, "pool", "water"):
		return "both"
	default:
		return "indoor"
	}
}

// estimateCapacityRange infers a plausible guest capacity band from place
// types. First match wins.
func estimateCapacityRange(placeTypes []string) (int, int) {
	switch {
	case anyTypeContains(placeTypes, "banquet", "event_venue"):
		return 20, 200
	case anyTypeContains(placeTypes, "restaurant"):
		return 10, 80
	case anyTypeContains(placeTypes, "amusement_park"):
		return 10, 100
	case anyTypeContains(placeTypes, "bowling"):
		return 8, 50
	case anyTypeContains(placeTypes, "amusement_center"):
		return 8, 60
	case anyTypeContains(placeTypes, "movie_theater"):
		return 10, 40
	case anyTypeContains(placeTypes, "park"):
		return 5, 100
	case anyTypeContains(placeTypes, "gym"):
		return 10, 40
	default:
		return 10, 40
	}
}

func keywordsForAge(age int) []string {
	switch {
	case age <= 12:
		return []string{"playground", "amusement_park", "bowling_alley"}
	case age <= 18:
		return []string{"arcade", "movie_theater", "sports_complex"}
	default:
		return []string{"restaurant", "bar", "banquet_hall"}
	}
}

// inferKidFriendlyFeatures fills the feature profile for the honoree's age
// bucket. The type-derived flags only apply to the youngest bucket.
func inferKidFriendlyFeatures(placeTypes []string, age int) models.KidFriendlyFeatures {
	switch {
	case age <= 12:
		return models.KidFriendlyFeatures{
			IsKidFriendly:         true,
			AgeRange:              "3-12",
			HasPlayArea:           anyTypeContains(placeTypes, "playground", "park"),
			HasKidsMenu:           anyTypeContains(placeTypes, "restaurant", "cafe"),
			HasHighChairs:         anyTypeContains(placeTypes, "restaurant"),
			HasChangingStation:    anyTypeContains(placeTypes, "shopping", "mall"),
			EntertainmentOptions:  inferEntertainmentOptions(placeTypes, age),
			SafetyFeatures:        []string{"Supervised area", "Safe environment"},
			SpecialAccommodations: []string{"Wheelchair accessible"},
		}
	case age <= 18:
		return models.KidFriendlyFeatures{
			IsKidFriendly:         true,
			AgeRange:              "13-18",
			EntertainmentOptions:  inferEntertainmentOptions(placeTypes, age),
			SafetyFeatures:        []string{},
			SpecialAccommodations: []string{"Group-friendly", "Teen-appropriate"},
		}
	default:
		return models.KidFriendlyFeatures{
			IsKidFriendly:         false,
			AgeRange:              "18+",
			EntertainmentOptions:  inferEntertainmentOptions(placeTypes, age),
			SafetyFeatures:        []string{},
			SpecialAccommodations: []string{"Full bar", "Catering available"},
		}
	}
}

func inferEntertainmentOptions(placeTypes []string, age int) []string {
	options := []string{}
	for _, placeType := range placeTypes {
		lower := strings.ToLower(placeType)
		switch {
		case strings.Contains(lower, "amusement_park"):
			options = append(options, "Rides and attractions")
		case strings.Contains(lower, "bowling"):
			options = append(options, "Bowling lanes")
		case strings.Contains(lower, "arcade"):
			options = append(options, "Video games")
		case strings.Contains(lower, "movie"):
			options = append(options, "Movie screenings")
		case strings.Contains(lower, "sports"):
			options = append(options, "Sports activities")
		case strings.Contains(lower, "restaurant") && age > 18:
			options = append(options, "Live music")
		case strings.Contains(lower, "bar"):
			options = append(options, "Bar service")
		}
	}
	if len(options) == 0 {
		return []string{"Various entertainment options"}
	}
	return options
}

func inferVenueType(placeTypes []string) string {
	switch {
	case anyTypeContains(placeTypes, "amusement"):
		return "Amusement Park"
	case anyTypeContains(placeTypes, "bowling"):
		return "Bowling Alley"
	case anyTypeContains(placeTypes, "arcade"):
		return "Arcade"
	case anyTypeContains(placeTypes, "movie"):
		return "Movie Theater"
	case anyTypeContains(placeTypes, "restaurant"):
		return "Restaurant"
	case anyTypeContains(placeTypes, "bar"):
		return "Bar & Lounge"
	case anyTypeContains(placeTypes, "banquet"):
		return "Banquet Hall"
	case anyTypeContains(placeTypes, "park"):
		return "Park"
	default:
		return "Entertainment Venue"
	}
}

func inferAmenities(placeTypes []string) []string {
	amenities := []string{}
	for _, placeType := range placeTypes {
		lower := strings.ToLower(placeType)
		switch {
		case strings.Contains(lower, "parking"):
			amenities = append(amenities, "Parking")
		case strings.Contains(lower, "restaurant"):
			amenities = append(amenities, "Dining")
		case strings.Contains(lower, "bar"):
			amenities = append(amenities, "Bar")
		}
	}
	if len(amenities) == 0 {
		return []string{"Standard amenities"}
	}
	return amenities
}

// estimateCapacity is the coarse single-number legacy capacity estimate.
func estimateCapacity(placeTypes []string) int {
	switch {
	case anyTypeContains(placeTypes, "banquet", "hall"):
		return 200
	case anyTypeContains(placeTypes, "restaurant"):
		return 80
	case anyTypeContains(placeTypes, "amusement", "park"):
		return 100
	case anyTypeContains(placeTypes, "bowling"):
		return 50
	case anyTypeContains(placeTypes, "arcade", "movie"):
		return 40
	default:
		return 30
	}
}

func formatPriceRange(token string) string {
	switch ParsePriceLevel(token) {
	case 1:
		return "$100-$300"
	case 2:
		return "$300-$600"
	case 3:
		return "$600-$1200"
	case 4:
		return "$1200-$2500"
	default:
		return "$200-$500"
	}
}

func estimateCost(priceLevel int) float64 {
	switch priceLevel {
	case 1:
		return 200
	case 2:
		return 450
	case 3:
		return 900
	case 4:
		return 1800
	default:
		return 400
	}
}

func generateDescription(placeTypes []string, rating *float64) string {
	ratingText := "Popular venue"
	if rating != nil {
		ratingText = fmt.Sprintf("Rated %.1f stars", *rating)
	}
	return fmt.Sprintf("%s - %s with great amenities for celebrations", inferVenueType(placeTypes), ratingText)
}
