package googleplaces

import (
	"context"

	"partyscout/models/places"
)

// PlacesAPI defines the interface for interacting with the Google Geocoding
// and Places (v1) APIs.
type PlacesAPI interface {
	GeocodeZipCode(ctx context.Context, zipCode string) (*places.Location, error)
	SearchNearby(ctx context.Context, location places.Location, keywords []string, radiusMeters int) (*places.SearchNearbyResponse, error)
	SetAPIKey(apiKey string)
}
