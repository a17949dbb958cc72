package util

import (
	"encoding/json"
	"fmt"
	"os"

	"partyscout/models/places"
)

// ReadGeocodingResponseFromJSON loads a GeocodingResponse from JSON on disk.
func ReadGeocodingResponseFromJSON(filePath string) (*places.GeocodingResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp places.GeocodingResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeocodingResponse: %w", err)
	}
	return &resp, nil
}

// ReadSearchNearbyResponseFromJSON loads a SearchNearbyResponse from JSON on disk.
func ReadSearchNearbyResponseFromJSON(filePath string) (*places.SearchNearbyResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp places.SearchNearbyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SearchNearbyResponse: %w", err)
	}
	return &resp, nil
}
