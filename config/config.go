package config

import (
	"os"
	"path/filepath"
	"time"
)

// Google APIs
const GOOGLE_GEOCODING_ENDPOINT_BASE = "https://maps.googleapis.com"
const GOOGLE_PLACES_ENDPOINT_BASE = "https://places.googleapis.com"
const GOOGLE_PLACES_FIELD_MASK = "places.id,places.displayName,places.formattedAddress,places.location," +
	"places.rating,places.userRatingCount,places.priceLevel,places.types," +
	"places.googleMapsUri,places.websiteUri,places.internationalPhoneNumber,places.photos"

// Search parameters
const DEFAULT_SEARCH_RADIUS_METERS = 5000
const MAX_RESULT_COUNT = 20

// Network
const HTTP_CLIENT_TIMEOUT = 10 * time.Second
const SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GEOCODE_RESPONSE_RESOURCE = "geocode_response.json"
const SEARCH_NEARBY_RESPONSE_RESOURCE = "search_nearby_response.json"

// GooglePlacesAPIKey reads the Places/Geocoding API key from the environment.
func GooglePlacesAPIKey() string {
	return os.Getenv("GOOGLE_PLACES_API_KEY")
}

// Env returns the deployment environment, defaulting to "dev" (which wires
// the fixture-backed places client instead of the real one).
func Env() string {
	if env := os.Getenv("PARTYSCOUT_ENV"); env != "" {
		return env
	}
	return "dev"
}

// Port returns the HTTP listen port.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
