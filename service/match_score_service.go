package services

import (
	"fmt"

	"partyscout/models"
)

// MatchScoreService calculates venue match scores based on party
// requirements. Score breakdown:
// - Age Appropriateness: 25 points
// - Budget Match: 25 points
// - Capacity Match: 20 points
// - Distance: 15 points
// - Rating Quality: 10 points
// - Venue Type Match: 5 points
type MatchScoreService struct {
	partyTypeService        *PartyTypeService
	budgetEstimationService *BudgetEstimationService
}

func NewMatchScoreService(partyTypeService *PartyTypeService, budgetEstimationService *BudgetEstimationService) *MatchScoreService {
	return &MatchScoreService{
		partyTypeService:        partyTypeService,
		budgetEstimationService: budgetEstimationService,
	}
}

type MatchScoreResult struct {
	TotalScore int
	Reasons    []string
	Breakdown  ScoreBreakdown
}

type ScoreBreakdown struct {
	AgeScore       int
	BudgetScore    int
	CapacityScore  int
	DistanceScore  int
	RatingScore    int
	TypeMatchScore int
}

// CalculateMatchScore computes the comprehensive 0-100 match score for a
// venue, with human-readable reasons for the strongest components.
func (s *MatchScoreService) CalculateMatchScore(
	request models.PartySearchRequest,
	venuePlaceTypes []string,
	venueRating *float64,
	venueUserRatingsTotal *int,
	venuePriceLevel *int,
	venueDistanceMiles float64,
	venueMinCapacity int,
	venueMaxCapacity int,
) MatchScoreResult {
	reasons := []string{}

	// 1. Age Appropriateness (25 points)
	ageScore := s.calculateAgeScore(request.Age, request.PartyTypes, venuePlaceTypes)
	if ageScore >= 20 {
		reasons = append(reasons, fmt.Sprintf("Perfect for %d-year-olds", request.Age))
	} else if ageScore >= 15 {
		reasons = append(reasons, "Good for this age group")
	}

	// 2. Budget Match (25 points)
	estimatedCost := s.budgetEstimationService.EstimatePartyCost(request.PartyTypes, request.GuestCount, venuePriceLevel)
	budgetScore := s.calculateBudgetScore(estimatedCost, request.BudgetMin, request.BudgetMax)
	if budgetScore >= 20 {
		reasons = append(reasons, "Within your budget")
	} else if budgetScore >= 10 {
		reasons = append(reasons, "Close to budget")
	} else if request.BudgetMax != nil {
		reasons = append(reasons, "May exceed budget")
	}

	// 3. Capacity Match (20 points)
	capacityScore := s.calculateCapacityScore(request.GuestCount, venueMinCapacity, venueMaxCapacity)
	if capacityScore >= 18 {
		reasons = append(reasons, fmt.Sprintf("Ideal for %d guests", request.GuestCount))
	} else if capacityScore >= 12 {
		reasons = append(reasons, "Can accommodate your group")
	} else if capacityScore < 10 {
		reasons = append(reasons, "Group size may be tight fit")
	}

	// 4. Distance (15 points)
	distanceScore := s.calculateDistanceScore(venueDistanceMiles, request.MaxDistanceMiles)
	if distanceScore >= 12 {
		reasons = append(reasons, "Very close by")
	} else if venueDistanceMiles <= 5 {
		reasons = append(reasons, "Convenient location")
	}

	// 5. Rating Quality (10 points)
	ratingScore := s.calculateRatingScore(venueRating, venueUserRatingsTotal)
	if ratingScore >= 8 {
		reasons = append(reasons, "Highly rated")
	} else if ratingScore >= 6 {
		reasons = append(reasons, "Good reviews")
	}

	// 6. Venue Type Match (5 points)
	typeMatchScore := s.calculateTypeMatchScore(request.PartyTypes, venuePlaceTypes)
	if typeMatchScore == 5 {
		reasons = append(reasons, "Matches your party style")
	}

	totalScore := ageScore + budgetScore + capacityScore + distanceScore + ratingScore + typeMatchScore
	if totalScore > 100 {
		totalScore = 100
	}

	return MatchScoreResult{
		TotalScore: totalScore,
		Reasons:    reasons,
		Breakdown: ScoreBreakdown{
			AgeScore:       ageScore,
			BudgetScore:    budgetScore,
			CapacityScore:  capacityScore,
			DistanceScore:  distanceScore,
			RatingScore:    ratingScore,
			TypeMatchScore: typeMatchScore,
		},
	}
}

// calculateAgeScore (0-25): does the venue suit the child's age? 25 needs
// both an age-appropriate requested type and a place-type match.
func (s *MatchScoreService) calculateAgeScore(age int, requestedPartyTypes []string, venuePlaceTypes []string) int {
	ageAppropriate := make(map[string]bool)
	for _, suggestion := range s.partyTypeService.GetPartyTypesForAge(age) {
		ageAppropriate[suggestion.Type] = true
	}

	hasMatchingType := false
	for _, partyType := range requestedPartyTypes {
		if ageAppropriate[partyType] {
			hasMatchingType = true
			break
		}
	}

	expectedPlaceTypes := make(map[string]bool)
	for _, placeType := range s.partyTypeService.GetPlaceTypesForPartyTypes(requestedPartyTypes) {
		expectedPlaceTypes[placeType] = true
	}

	placeTypeMatch := false
	for _, placeType := range venuePlaceTypes {
		if expectedPlaceTypes[placeType] {
			placeTypeMatch = true
			break
		}
	}

	switch {
	case hasMatchingType && placeTypeMatch:
		return 25 // Perfect match
	case hasMatchingType:
		return 20 // Good age match, venue type may vary
	case placeTypeMatch:
		return 15 // Venue matches but not age-optimal
	default:
		return 10 // Generic venue
	}
}

// calculateBudgetScore (0-25): does the estimated cost fit the budget?
func (s *MatchScoreService) calculateBudgetScore(estimatedCost int, budgetMin, budgetMax *int) int {
	// If no budget specified, give moderate score
	if budgetMin == nil && budgetMax == nil {
		return 15
	}

	min := 0
	if budgetMin != nil {
		min = *budgetMin
	}

	if s.budgetEstimationService.IsWithinBudget(estimatedCost, budgetMin, budgetMax) {
		return 25 // Within budget
	}

	if estimatedCost < min {
		// Under budget - might be missing features
		underBy := int(float64(min-estimatedCost) / float64(min) * 100)
		if underBy <= 20 {
			return 22
		}
		return 18
	}

	// Over budget
	overBy := int(float64(estimatedCost-*budgetMax) / float64(*budgetMax) * 100)
	switch {
	case overBy <= 10:
		return 18 // Slightly over
	case overBy <= 25:
		return 12 // Moderately over
	case overBy <= 50:
		return 6 // Significantly over
	default:
		return 2 // Way over budget
	}
}

// calculateCapacityScore (0-20): ideal is a guest count at 50-80% of the
// venue's max capacity (not too empty, not too cramped).
func (s *MatchScoreService) calculateCapacityScore(guestCount, minCapacity, maxCapacity int) int {
	idealLow := float64(maxCapacity) * 0.5
	idealHigh := float64(maxCapacity) * 0.8

	switch {
	case guestCount < minCapacity:
		// Too few guests for venue
		score := int(float64(guestCount) / float64(minCapacity) * 10)
		if score < 2 {
			return 2
		}
		if score > 10 {
			return 10
		}
		return score
	case guestCount > maxCapacity:
		// Too many guests
		overBy := int(float64(guestCount-maxCapacity) / float64(maxCapacity) * 100)
		switch {
		case overBy <= 10:
			return 10 // Slightly over
		case overBy <= 20:
			return 5 // Moderately over
		default:
			return 0 // Way over
		}
	case guestCount >= int(idealLow) && guestCount <= int(idealHigh):
		return 20 // Ideal range
	case float64(guestCount) < idealLow:
		return 16 // Under-utilizing
	default:
		return 14 // Near capacity but ok
	}
}

// calculateDistanceScore (0-15): distance relative to the requested radius.
func (s *MatchScoreService) calculateDistanceScore(distanceMiles float64, maxDistanceMiles int) int {
	ratio := distanceMiles / float64(maxDistanceMiles)

	switch {
	case ratio <= 0.2:
		return 15 // Very close (within 20% of max)
	case ratio <= 0.4:
		return 13
	case ratio <= 0.6:
		return 11
	case ratio <= 0.8:
		return 9
	case ratio <= 1.0:
		return 7 // At edge of range
	case ratio <= 1.2:
		return 4 // Slightly beyond
	default:
		return 1 // Too far
	}
}

// calculateRatingScore (0-10): rating base plus a review-volume bonus.
// Missing ratings are treated as 3.5, missing counts as zero.
func (s *MatchScoreService) calculateRatingScore(rating *float64, userRatingsTotal *int) int {
	effectiveRating := 3.5
	if rating != nil {
		effectiveRating = *rating
	}
	reviewCount := 0
	if userRatingsTotal != nil {
		reviewCount = *userRatingsTotal
	}

	var ratingPoints int
	switch {
	case effectiveRating >= 4.5:
		ratingPoints = 7
	case effectiveRating >= 4.0:
		ratingPoints = 6
	case effectiveRating >= 3.5:
		ratingPoints = 4
	case effectiveRating >= 3.0:
		ratingPoints = 2
	default:
		ratingPoints = 1
	}

	var volumeBonus int
	switch {
	case reviewCount >= 500:
		volumeBonus = 3
	case reviewCount >= 200:
		volumeBonus = 2
	case reviewCount >= 50:
		volumeBonus = 1
	}

	if ratingPoints+volumeBonus > 10 {
		return 10
	}
	return ratingPoints + volumeBonus
}

// calculateTypeMatchScore (0-5): direct overlap between the venue's place
// types and those expected for the requested party types.
func (s *MatchScoreService) calculateTypeMatchScore(requestedPartyTypes []string, venuePlaceTypes []string) int {
	expectedPlaceTypes := make(map[string]bool)
	for _, placeType := range s.partyTypeService.GetPlaceTypesForPartyTypes(requestedPartyTypes) {
		expectedPlaceTypes[placeType] = true
	}

	matchCount := 0
	for _, placeType := range venuePlaceTypes {
		if expectedPlaceTypes[placeType] {
			matchCount++
		}
	}

	switch {
	case matchCount >= 2:
		return 5 // Strong match
	case matchCount == 1:
		return 3 // Partial match
	default:
		return 1 // No direct match
	}
}

// GetMatchQualityLabel maps a score to a human-readable quality label.
func (s *MatchScoreService) GetMatchQualityLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent Match"
	case score >= 70:
		return "Great Match"
	case score >= 55:
		return "Good Match"
	case score >= 40:
		return "Possible Match"
	default:
		return "Limited Match"
	}
}
