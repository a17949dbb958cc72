package googleplaces

import (
	"context"
	"log"
	"net/url"

	"partyscout/api"
	"partyscout/config"
	"partyscout/models/places"
)

// PlacesApiClient talks to the real Google Geocoding and Places (v1) APIs.
// Two base clients because the APIs live on different hosts.
type PlacesApiClient struct {
	geocodingClient *api.HTTPClient
	placesClient    *api.HTTPClient
	apiKey          string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(geocodingClient, placesClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		geocodingClient: geocodingClient,
		placesClient:    placesClient,
	}
}

func (c *PlacesApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GeocodeZipCode converts a ZIP code to latitude/longitude using the Google
// Geocoding API.
func (c *PlacesApiClient) GeocodeZipCode(ctx context.Context, zipCode string) (*places.Location, error) {
	log.Printf("Geocoding ZIP code: %s", zipCode)

	endpoint := "/maps/api/geocode/json?address=" + url.QueryEscape(zipCode) + "&key=" + url.QueryEscape(c.apiKey)

	var response places.GeocodingResponse
	if err := c.geocodingClient.Request(ctx, "GET", endpoint, nil, nil, &response); err != nil {
		return nil, newGeocodeError("geocoding API unreachable", err)
	}

	if response.Status != "OK" || len(response.Results) == 0 {
		reason := response.Status
		if response.ErrorMessage != "" {
			reason = response.Status + " - " + response.ErrorMessage
		}
		return nil, newGeocodeError(reason, nil)
	}

	location := response.Results[0].Geometry.Location
	return &location, nil
}

// SearchNearby finds places near a point using the Places API (v1)
// places:searchNearby endpoint.
func (c *PlacesApiClient) SearchNearby(ctx context.Context, location places.Location, keywords []string, radiusMeters int) (*places.SearchNearbyResponse, error) {
	log.Printf("Searching nearby places at (%f, %f) with types: %v", location.Lat, location.Lng, keywords)

	request := places.SearchNearbyRequest{
		IncludedTypes:  MapKeywordsToTypes(keywords),
		MaxResultCount: config.MAX_RESULT_COUNT,
		LocationRestriction: places.LocationRestriction{
			Circle: places.Circle{
				Center: places.LatLng{
					Latitude:  location.Lat,
					Longitude: location.Lng,
				},
				Radius: float64(radiusMeters),
			},
		},
	}

	headers := map[string]string{
		"X-Goog-Api-Key":   c.apiKey,
		"X-Goog-FieldMask": config.GOOGLE_PLACES_FIELD_MASK,
	}

	var response places.SearchNearbyResponse
	if err := c.placesClient.Request(ctx, "POST", "/v1/places:searchNearby", headers, request, &response); err != nil {
		return nil, newSearchError("nearby search API call failed", err)
	}

	log.Printf("Found %d places", len(response.Places))
	return &response, nil
}

// MapKeywordsToTypes maps legacy search keywords to Places API types.
// Unrecognized keywords pass through unchanged, so taxonomy category filters
// can be handed to SearchNearby directly.
func MapKeywordsToTypes(keywords []string) []string {
	var types []string
	for _, keyword := range keywords {
		switch keyword {
		case "playground":
			types = append(types, "park", "playground")
		case "amusement_park":
			types = append(types, "amusement_park", "amusement_center")
		case "bowling_alley":
			types = append(types, "bowling_alley")
		case "arcade":
			types = append(types, "amusement_center")
		case "movie_theater":
			types = append(types, "movie_theater")
		case "sports_complex":
			types = append(types, "gym", "stadium", "sports_complex")
		case "restaurant":
			types = append(types, "restaurant")
		case "bar":
			types = append(types, "bar", "night_club")
		case "banquet_hall":
			types = append(types, "banquet_hall", "event_venue")
		default:
			types = append(types, keyword)
		}
	}

	seen := make(map[string]bool, len(types))
	distinct := make([]string, 0, len(types))
	for _, t := range types {
		if !seen[t] {
			seen[t] = true
			distinct = append(distinct, t)
		}
	}
	return distinct
}
