package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"partyscout/models"
)

func float64Ptr(v float64) *float64 { return &v }

func newMatchScoreService() *MatchScoreService {
	partyTypeService := NewPartyTypeService()
	return NewMatchScoreService(partyTypeService, NewBudgetEstimationService())
}

func TestCalculateMatchScore_StrongMatch(t *testing.T) {
	service := newMatchScoreService()

	request := models.PartySearchRequest{
		Age:              7,
		PartyTypes:       []string{"active_play"},
		GuestCount:       15,
		ZipCode:          "98004",
		Setting:          "any",
		MaxDistanceMiles: 10,
	}

	result := service.CalculateMatchScore(
		request,
		[]string{"amusement_center"},
		float64Ptr(4.6), intPtr(842), intPtr(2),
		1.5, 8, 60,
	)

	// Age: requested type fits age 7 and venue type matches -> 25
	assert.Equal(t, 25, result.Breakdown.AgeScore)
	// No budget bounds -> moderate 15
	assert.Equal(t, 15, result.Breakdown.BudgetScore)
	// 15 guests under the 30-48 ideal band of a 60-cap venue -> 16
	assert.Equal(t, 16, result.Breakdown.CapacityScore)
	// 1.5 of 10 miles -> 15
	assert.Equal(t, 15, result.Breakdown.DistanceScore)
	// 4.6 stars with 842 reviews -> 7 + 3
	assert.Equal(t, 10, result.Breakdown.RatingScore)
	// One overlapping place type -> 3
	assert.Equal(t, 3, result.Breakdown.TypeMatchScore)

	assert.Equal(t, 84, result.TotalScore)
	assert.Contains(t, result.Reasons, "Perfect for 7-year-olds")
	assert.Contains(t, result.Reasons, "Very close by")
	assert.Contains(t, result.Reasons, "Highly rated")
}

func TestCalculateMatchScore_MissingOptionalFields(t *testing.T) {
	service := newMatchScoreService()

	request := models.PartySearchRequest{
		Age:              7,
		PartyTypes:       []string{"active_play"},
		GuestCount:       10,
		ZipCode:          "98004",
		Setting:          "any",
		MaxDistanceMiles: 10,
	}

	result := service.CalculateMatchScore(
		request,
		[]string{"establishment"},
		nil, nil, nil,
		5.0, 10, 40,
	)

	// Unrated venues assume 3.5 stars with no review bonus
	assert.Equal(t, 4, result.Breakdown.RatingScore)

	if result.TotalScore < 0 || result.TotalScore > 100 {
		t.Errorf("Score out of range: %d", result.TotalScore)
	}
}

func TestCalculateMatchScore_BudgetComponent(t *testing.T) {
	service := newMatchScoreService()

	base := models.PartySearchRequest{
		Age:              7,
		PartyTypes:       []string{"active_play"},
		GuestCount:       15,
		ZipCode:          "98004",
		Setting:          "any",
		MaxDistanceMiles: 10,
	}

	// Estimated cost at moderate tier is 450
	within := base
	within.BudgetMax = intPtr(500)
	result := service.CalculateMatchScore(within, nil, nil, nil, intPtr(2), 3, 8, 60)
	assert.Equal(t, 25, result.Breakdown.BudgetScore)
	assert.Contains(t, result.Reasons, "Within your budget")

	over := base
	over.BudgetMax = intPtr(200)
	result = service.CalculateMatchScore(over, nil, nil, nil, intPtr(2), 3, 8, 60)
	// 450 vs 200 is over 100% above the ceiling
	assert.Equal(t, 2, result.Breakdown.BudgetScore)
	assert.Contains(t, result.Reasons, "May exceed budget")
}

func TestCalculateMatchScore_DistanceDecreasesScore(t *testing.T) {
	service := newMatchScoreService()

	request := models.PartySearchRequest{
		Age:              7,
		PartyTypes:       []string{"active_play"},
		GuestCount:       10,
		ZipCode:          "98004",
		Setting:          "any",
		MaxDistanceMiles: 10,
	}

	distances := []float64{1.5, 5.5, 9.0, 15.0}
	previous := 16
	for _, distance := range distances {
		result := service.CalculateMatchScore(request, nil, nil, nil, nil, distance, 10, 40)
		if result.Breakdown.DistanceScore >= previous {
			t.Errorf("Distance score did not decrease at %.1f miles: %d", distance, result.Breakdown.DistanceScore)
		}
		previous = result.Breakdown.DistanceScore
	}
}

func TestGetMatchQualityLabel(t *testing.T) {
	service := newMatchScoreService()

	tests := []struct {
		score    int
		expected string
	}{
		{92, "Excellent Match"},
		{85, "Excellent Match"},
		{70, "Great Match"},
		{55, "Good Match"},
		{40, "Possible Match"},
		{10, "Limited Match"},
	}

	for _, test := range tests {
		if got := service.GetMatchQualityLabel(test.score); got != test.expected {
			t.Errorf("Score %d: expected %s, got %s", test.score, test.expected, got)
		}
	}
}
