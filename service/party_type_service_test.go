package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPartyTypesForAge_FiltersByAge(t *testing.T) {
	service := NewPartyTypeService()

	tests := []struct {
		name          string
		age           int
		expectedCount int
	}{
		{"Age 7 fits every party type", 7, 6},
		{"Age 1 only fits social dining", 1, 1},
		{"Age 17 fits amusement and dining", 17, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			suggestions := service.GetPartyTypesForAge(test.age)

			if len(suggestions) != test.expectedCount {
				t.Errorf("Expected %d suggestions, got %d", test.expectedCount, len(suggestions))
			}
			for _, suggestion := range suggestions {
				taxonomy := service.GetTaxonomyForType(suggestion.Type)
				if taxonomy == nil {
					t.Fatalf("Suggestion references unknown type %s", suggestion.Type)
				}
				if test.age < taxonomy.MinAge || test.age > taxonomy.MaxAge {
					t.Errorf("Type %s not appropriate for age %d", suggestion.Type, test.age)
				}
			}
		})
	}
}

func TestGetPartyTypesForAge_SortedByPopularity(t *testing.T) {
	service := NewPartyTypeService()

	suggestions := service.GetPartyTypesForAge(7)

	for i := 1; i < len(suggestions); i++ {
		if suggestions[i-1].PopularityScore < suggestions[i].PopularityScore {
			t.Errorf("Suggestions not sorted by popularity: %d before %d",
				suggestions[i-1].PopularityScore, suggestions[i].PopularityScore)
		}
	}
}

func TestGetPartyTypesForAge_FormatsRangeAndCost(t *testing.T) {
	service := NewPartyTypeService()

	suggestions := service.GetPartyTypesForAge(9)

	var found bool
	for _, suggestion := range suggestions {
		if suggestion.Type == "active_play" {
			found = true
			assert.Equal(t, "Ages 3-16", suggestion.AgeRange)
			assert.Equal(t, "$200-450", suggestion.AverageCost)
			// Age 9 sits near the midpoint of the 3-16 band
			assert.Equal(t, 5, suggestion.PopularityScore)
		}
	}
	if !found {
		t.Fatal("Expected active_play suggestion for age 9")
	}
}

func TestGetTaxonomyForType_UnknownReturnsNil(t *testing.T) {
	service := NewPartyTypeService()

	if taxonomy := service.GetTaxonomyForType("laser_maze"); taxonomy != nil {
		t.Errorf("Expected nil for unknown type, got %+v", taxonomy)
	}
}

func TestGetTypicalDuration_Defaults(t *testing.T) {
	service := NewPartyTypeService()

	if got := service.GetTypicalDuration("outdoor"); got != "3 hours" {
		t.Errorf("Expected '3 hours', got %s", got)
	}
	if got := service.GetTypicalDuration("unknown"); got != "2 hours" {
		t.Errorf("Expected default '2 hours', got %s", got)
	}
}

func TestGetSetting_Defaults(t *testing.T) {
	service := NewPartyTypeService()

	if got := service.GetSetting("outdoor"); got != "outdoor" {
		t.Errorf("Expected 'outdoor', got %s", got)
	}
	if got := service.GetSetting("characters_performers"); got != "both" {
		t.Errorf("Expected 'both', got %s", got)
	}
	if got := service.GetSetting("unknown"); got != "indoor" {
		t.Errorf("Expected default 'indoor', got %s", got)
	}
}

func TestGetPlaceTypesForPartyTypes_Distinct(t *testing.T) {
	service := NewPartyTypeService()

	// active_play and amusement share amusement_center and bowling_alley
	placeTypes := service.GetPlaceTypesForPartyTypes([]string{"active_play", "amusement"})

	seen := make(map[string]int)
	for _, placeType := range placeTypes {
		seen[placeType]++
	}
	for placeType, count := range seen {
		if count > 1 {
			t.Errorf("Place type %s appears %d times", placeType, count)
		}
	}
	assert.Contains(t, placeTypes, "amusement_center")
	assert.Contains(t, placeTypes, "movie_theater")
}

func TestGetKeywordsForPartyTypes_CombinesTypes(t *testing.T) {
	service := NewPartyTypeService()

	keywords := service.GetKeywordsForPartyTypes([]string{"creative", "outdoor"})

	assert.Contains(t, keywords, "pottery painting")
	assert.Contains(t, keywords, "petting zoo")
}
