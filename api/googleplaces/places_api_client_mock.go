package googleplaces

import (
	"context"
	"fmt"

	"partyscout/config"
	"partyscout/models/places"
	"partyscout/util"
)

// PlacesApiClientMock serves canned geocoding and nearby-search responses
// from JSON fixtures, for running without a Google API key.
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

func (c *PlacesApiClientMock) SetAPIKey(apiKey string) {
	// fixtures need no credentials
}

func (c *PlacesApiClientMock) GeocodeZipCode(ctx context.Context, zipCode string) (*places.Location, error) {
	response, err := util.ReadGeocodingResponseFromJSON(config.GetResourcePath(config.GEOCODE_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read geocode response from json")
		return nil, newGeocodeError("fixture unavailable", err)
	}

	if response.Status != "OK" || len(response.Results) == 0 {
		return nil, newGeocodeError(response.Status, nil)
	}

	location := response.Results[0].Geometry.Location
	return &location, nil
}

func (c *PlacesApiClientMock) SearchNearby(ctx context.Context, location places.Location, keywords []string, radiusMeters int) (*places.SearchNearbyResponse, error) {
	response, err := util.ReadSearchNearbyResponseFromJSON(config.GetResourcePath(config.SEARCH_NEARBY_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read search nearby response from json")
		return nil, newSearchError("fixture unavailable", err)
	}

	return response, nil
}
