package places

// SearchNearbyRequest is the request body for the Places API (v1)
// places:searchNearby endpoint.
type SearchNearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LocationRestriction LocationRestriction `json:"locationRestriction"`
}

type LocationRestriction struct {
	Circle Circle `json:"circle"`
}

type Circle struct {
	Center LatLng  `json:"center"`
	Radius float64 `json:"radius"`
}

// LatLng is a point in the Places API (v1) shape (latitude/longitude keys,
// unlike the geocoding API's lat/lng).
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SearchNearbyResponse struct {
	Places []Place `json:"places"`
}

// Place is a single result from places:searchNearby. Every field may be
// absent; pointer fields distinguish "missing" from zero values where the
// mapping rules depend on it.
type Place struct {
	ID                       string       `json:"id,omitempty"`
	DisplayName              *DisplayName `json:"displayName,omitempty"`
	FormattedAddress         string       `json:"formattedAddress,omitempty"`
	Location                 *LatLng      `json:"location,omitempty"`
	Rating                   *float64     `json:"rating,omitempty"`
	UserRatingCount          *int         `json:"userRatingCount,omitempty"`
	PriceLevel               string       `json:"priceLevel,omitempty"`
	Types                    []string     `json:"types,omitempty"`
	Photos                   []PlacePhoto `json:"photos,omitempty"`
	GoogleMapsURI            string       `json:"googleMapsUri,omitempty"`
	WebsiteURI               string       `json:"websiteUri,omitempty"`
	InternationalPhoneNumber string       `json:"internationalPhoneNumber,omitempty"`
}

type DisplayName struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type PlacePhoto struct {
	Name     string `json:"name"`
	WidthPx  int    `json:"widthPx,omitempty"`
	HeightPx int    `json:"heightPx,omitempty"`
}
