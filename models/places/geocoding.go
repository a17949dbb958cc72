package places

// GeocodingResponse is the Google Geocoding API response envelope.
type GeocodingResponse struct {
	Results      []GeocodingResult `json:"results"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

type GeocodingResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
}

type Geometry struct {
	Location     Location `json:"location"`
	LocationType string   `json:"location_type,omitempty"`
}

// Location is a geocoded point (geocoding API uses lat/lng keys).
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
