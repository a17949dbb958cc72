package services

import (
	"fmt"
	"math"
	"sort"

	"partyscout/models"
)

// PartyTypeService is the static party-type catalog. The taxonomy is built
// once and read-only afterwards, so it is safe to share across requests.
type PartyTypeService struct {
	taxonomy []models.PartyTypeTaxonomy
}

// NewPartyTypeService constructs the service with the built-in taxonomy.
func NewPartyTypeService() *PartyTypeService {
	return &PartyTypeService{taxonomy: partyTypeTaxonomy}
}

var partyTypeTaxonomy = []models.PartyTypeTaxonomy{
	// Active Play - Physical activities, sports, movement
	{
		Type:        "active_play",
		DisplayName: "Active Play",
		Description: "Jump, run, and burn energy with physical fun",
		Icon:        "rocket",
		MinAge:      3,
		MaxAge:      16,
		GooglePlacesTypes: []string{
			"amusement_center", "gym", "bowling_alley", "swimming_pool",
		},
		SearchKeywords: []string{
			"trampoline park", "bounce house", "jump zone", "gymnastics",
			"skating rink", "roller skating", "ice skating", "ninja warrior",
			"obstacle course", "rock climbing", "sports center", "swim party",
			"pool party", "aquatic center",
		},
		TypicalDuration:      "2 hours",
		AverageCostPerPerson: models.CostRange{Low: 20, High: 45},
		Setting:              "indoor",
	},

	// Creative - Arts, crafts, hands-on making
	{
		Type:        "creative",
		DisplayName: "Creative",
		Description: "Arts, crafts, cooking, and hands-on activities",
		Icon:        "palette",
		MinAge:      4,
		MaxAge:      14,
		GooglePlacesTypes: []string{
			"art_studio", "museum",
		},
		SearchKeywords: []string{
			"art studio", "pottery painting", "craft party", "painting party",
			"cooking class", "baking party", "science center", "STEM party",
			"slime party", "jewelry making", "canvas painting",
		},
		TypicalDuration:      "2 hours",
		AverageCostPerPerson: models.CostRange{Low: 25, High: 50},
		Setting:              "indoor",
	},

	// Amusement - Games, movies, competitive fun
	{
		Type:        "amusement",
		DisplayName: "Amusement",
		Description: "Arcades, movies, escape rooms, and games galore",
		Icon:        "gamepad",
		MinAge:      5,
		MaxAge:      18,
		GooglePlacesTypes: []string{
			"amusement_center", "movie_theater", "bowling_alley",
		},
		SearchKeywords: []string{
			"arcade", "game center", "chuck e cheese", "dave and busters",
			"movie theater", "cinema", "private screening",
			"escape room", "puzzle room", "VR experience", "virtual reality",
			"bowling", "laser tag", "go kart", "racing", "mini golf", "putt putt",
		},
		TypicalDuration:      "2 hours",
		AverageCostPerPerson: models.CostRange{Low: 25, High: 55},
		Setting:              "indoor",
	},

	// Outdoor - Nature, parks, open-air activities
	{
		Type:        "outdoor",
		DisplayName: "Outdoor",
		Description: "Parks, zoos, farms, and nature adventures",
		Icon:        "tree",
		MinAge:      3,
		MaxAge:      16,
		GooglePlacesTypes: []string{
			"park", "zoo", "amusement_park", "campground",
		},
		SearchKeywords: []string{
			"park pavilion", "nature center", "zoo", "botanical garden",
			"farm party", "petting zoo", "pumpkin patch", "adventure park",
			"climbing", "zip line", "ropes course", "picnic area",
			"outdoor party venue", "garden party",
		},
		TypicalDuration:      "3 hours",
		AverageCostPerPerson: models.CostRange{Low: 15, High: 40},
		Setting:              "outdoor",
	},

	// Characters & Performers - Entertainers, themed experiences
	{
		Type:        "characters_performers",
		DisplayName: "Characters & Performers",
		Description: "Magicians, princesses, superheroes, and entertainers",
		Icon:        "sparkles",
		MinAge:      2,
		MaxAge:      10,
		GooglePlacesTypes: []string{
			"event_venue", "amusement_center",
		},
		SearchKeywords: []string{
			"party entertainer", "magician", "magic show",
			"princess party", "superhero party", "character party",
			"clown", "face painter", "balloon artist", "balloon twister",
			"costumed character", "themed party entertainment",
		},
		TypicalDuration:      "2 hours",
		AverageCostPerPerson: models.CostRange{Low: 20, High: 45},
		Setting:              "both",
	},

	// Social/Dining - Food-focused, casual gatherings
	{
		Type:        "social_dining",
		DisplayName: "Social & Dining",
		Description: "Restaurants, cafes, and food-focused celebrations",
		Icon:        "utensils",
		MinAge:      1,
		MaxAge:      18,
		GooglePlacesTypes: []string{
			"restaurant", "cafe", "bakery",
		},
		SearchKeywords: []string{
			"restaurant party room", "private dining", "pizza party",
			"play cafe", "kids cafe", "party room rental",
			"ice cream party", "dessert bar", "themed restaurant",
		},
		TypicalDuration:      "2 hours",
		AverageCostPerPerson: models.CostRange{Low: 15, High: 35},
		Setting:              "indoor",
	},
}

// GetPartyTypesForAge returns party type suggestions appropriate for the
// given age, sorted by descending popularity score.
func (s *PartyTypeService) GetPartyTypesForAge(age int) []models.PartyTypeSuggestion {
	var eligible []models.PartyTypeTaxonomy
	for _, taxonomy := range s.taxonomy {
		if age >= taxonomy.MinAge && age <= taxonomy.MaxAge {
			eligible = append(eligible, taxonomy)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return s.popularityForAge(eligible[i], age) > s.popularityForAge(eligible[j], age)
	})

	suggestions := make([]models.PartyTypeSuggestion, 0, len(eligible))
	for _, taxonomy := range eligible {
		suggestions = append(suggestions, models.PartyTypeSuggestion{
			Type:            taxonomy.Type,
			DisplayName:     taxonomy.DisplayName,
			Description:     taxonomy.Description,
			Icon:            taxonomy.Icon,
			AgeRange:        fmt.Sprintf("Ages %d-%d", taxonomy.MinAge, taxonomy.MaxAge),
			AverageCost:     fmt.Sprintf("$%d-%d", taxonomy.AverageCostPerPerson.Low*10, taxonomy.AverageCostPerPerson.High*10),
			PopularityScore: s.popularityForAge(taxonomy, age),
		})
	}
	return suggestions
}

// GetKeywordsForPartyType returns the search keywords for a party type.
func (s *PartyTypeService) GetKeywordsForPartyType(partyType string) []string {
	if taxonomy := s.GetTaxonomyForType(partyType); taxonomy != nil {
		return taxonomy.SearchKeywords
	}
	return nil
}

// GetPlaceTypesForPartyType returns the Google Places types for a party type.
func (s *PartyTypeService) GetPlaceTypesForPartyType(partyType string) []string {
	if taxonomy := s.GetTaxonomyForType(partyType); taxonomy != nil {
		return taxonomy.GooglePlacesTypes
	}
	return nil
}

// GetTaxonomyForType returns the full taxonomy entry for a party type, or
// nil when the type is unknown.
func (s *PartyTypeService) GetTaxonomyForType(partyType string) *models.PartyTypeTaxonomy {
	for i := range s.taxonomy {
		if s.taxonomy[i].Type == partyType {
			return &s.taxonomy[i]
		}
	}
	return nil
}

// GetAllPartyTypes returns the full taxonomy.
func (s *PartyTypeService) GetAllPartyTypes() []models.PartyTypeTaxonomy {
	return s.taxonomy
}

// GetTypicalDuration returns the typical duration for a party type,
// defaulting to "2 hours" for unknown types.
func (s *PartyTypeService) GetTypicalDuration(partyType string) string {
	if taxonomy := s.GetTaxonomyForType(partyType); taxonomy != nil {
		return taxonomy.TypicalDuration
	}
	return "2 hours"
}

// GetSetting returns indoor/outdoor/both for a party type, defaulting to
// "indoor" for unknown types.
func (s *PartyTypeService) GetSetting(partyType string) string {
	if taxonomy := s.GetTaxonomyForType(partyType); taxonomy != nil {
		return taxonomy.Setting
	}
	return "indoor"
}

// popularityForAge scores 1-5 how well a party type fits an age: the closer
// the age sits to the midpoint of the type's age band, the higher the score.
// A zero-width band always scores 5.
func (s *PartyTypeService) popularityForAge(taxonomy models.PartyTypeTaxonomy, age int) int {
	midpoint := float64(taxonomy.MinAge+taxonomy.MaxAge) / 2.0
	halfRange := float64(taxonomy.MaxAge-taxonomy.MinAge) / 2.0
	if halfRange == 0 {
		return 5
	}
	normalizedDistance := math.Abs(float64(age)-midpoint) / halfRange

	switch {
	case normalizedDistance <= 0.3:
		return 5 // Very close to ideal age
	case normalizedDistance <= 0.5:
		return 4
	case normalizedDistance <= 0.7:
		return 3
	case normalizedDistance <= 0.9:
		return 2
	default:
		return 1
	}
}

// GetKeywordsForPartyTypes combines keywords from multiple party types.
func (s *PartyTypeService) GetKeywordsForPartyTypes(partyTypes []string) []string {
	var combined []string
	for _, partyType := range partyTypes {
		combined = append(combined, s.GetKeywordsForPartyType(partyType)...)
	}
	return distinct(combined)
}

// GetPlaceTypesForPartyTypes combines Google Places types from multiple
// party types.
func (s *PartyTypeService) GetPlaceTypesForPartyTypes(partyTypes []string) []string {
	var combined []string
	for _, partyType := range partyTypes {
		combined = append(combined, s.GetPlaceTypesForPartyType(partyType)...)
	}
	return distinct(combined)
}

// distinct keeps the first occurrence of each string, preserving order.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
