package services

import "math"

// BudgetEstimationService estimates party costs from party types, guest
// count, and a venue's price level. All intermediate dollar amounts are
// truncated to whole dollars before being combined; the truncation points
// are part of the contract and tests depend on them.
type BudgetEstimationService struct {
}

func NewBudgetEstimationService() *BudgetEstimationService {
	return &BudgetEstimationService{}
}

// Base cost per person by party type (at price level 2 - moderate)
var baseCostPerPerson = map[string]int{
	"active_play":           25,
	"creative":              32,
	"amusement":             33,
	"outdoor":               15,
	"characters_performers": 35,
	"social_dining":         22,
}

// Fixed costs that don't scale with guest count
var fixedCosts = map[string]int{
	"active_play":           75,
	"creative":              60,
	"amusement":             100,
	"outdoor":               25,
	"characters_performers": 150,
	"social_dining":         50,
}

// Price level multipliers (Google Places price level 0-4)
var priceLevelMultipliers = map[int]float64{
	0: 0.6, // Free/very cheap
	1: 0.8, // Inexpensive
	2: 1.0, // Moderate
	3: 1.3, // Expensive
	4: 1.6, // Very expensive
}

// multiplierFor resolves the tier multiplier, assuming moderate for an
// absent or unknown price level.
func multiplierFor(priceLevel *int) float64 {
	if priceLevel == nil {
		return 1.0
	}
	if m, ok := priceLevelMultipliers[*priceLevel]; ok {
		return m
	}
	return 1.0
}

// averageKnown averages the table values for the given party types, ignoring
// types the table does not know. Falls back to the default when none match.
func averageKnown(table map[string]int, partyTypes []string, fallback float64) float64 {
	sum := 0
	count := 0
	for _, partyType := range partyTypes {
		if cost, ok := table[partyType]; ok {
			sum += cost
			count++
		}
	}
	if count == 0 {
		return fallback
	}
	return float64(sum) / float64(count)
}

// EstimatePartyCost estimates the total party cost.
func (s *BudgetEstimationService) EstimatePartyCost(partyTypes []string, guestCount int, priceLevel *int) int {
	multiplier := multiplierFor(priceLevel)

	if len(partyTypes) == 0 {
		// Default estimate for unknown party type
		return int(25*float64(guestCount)*multiplier + 75)
	}

	avgBaseCost := averageKnown(baseCostPerPerson, partyTypes, 25.0)
	avgFixedCost := averageKnown(fixedCosts, partyTypes, 75.0)

	perPersonCost := int(avgBaseCost * multiplier)
	totalVariableCost := perPersonCost * guestCount
	totalFixedCost := int(avgFixedCost * multiplier)

	return totalVariableCost + totalFixedCost
}

// EstimateCostPerPerson estimates the cost per guest.
func (s *BudgetEstimationService) EstimateCostPerPerson(partyTypes []string, priceLevel *int) int {
	multiplier := multiplierFor(priceLevel)

	if len(partyTypes) == 0 {
		return int(25 * multiplier)
	}

	avgBaseCost := averageKnown(baseCostPerPerson, partyTypes, 25.0)
	return int(avgBaseCost * multiplier)
}

// GetBudgetRangeDescription labels an estimated cost.
func (s *BudgetEstimationService) GetBudgetRangeDescription(estimatedCost int) string {
	switch {
	case estimatedCost < 150:
		return "Budget-Friendly"
	case estimatedCost < 300:
		return "Moderate"
	case estimatedCost < 500:
		return "Premium"
	case estimatedCost < 800:
		return "Deluxe"
	default:
		return "Luxury"
	}
}

// IsWithinBudget reports whether a cost falls inside the optional bounds.
func (s *BudgetEstimationService) IsWithinBudget(estimatedCost int, budgetMin, budgetMax *int) bool {
	min := 0
	if budgetMin != nil {
		min = *budgetMin
	}
	max := math.MaxInt
	if budgetMax != nil {
		max = *budgetMax
	}
	return estimatedCost >= min && estimatedCost <= max
}

// GetBudgetVariance returns the percentage over (positive) or under
// (negative) the budget ceiling, or nil when no ceiling is set.
func (s *BudgetEstimationService) GetBudgetVariance(estimatedCost int, budgetMax *int) *int {
	if budgetMax == nil {
		return nil
	}
	variance := int(float64(estimatedCost-*budgetMax) / float64(*budgetMax) * 100)
	return &variance
}

// SuggestGuestCountForBudget suggests how many guests fit a budget ceiling
// after the fixed costs are paid.
func (s *BudgetEstimationService) SuggestGuestCountForBudget(partyTypes []string, priceLevel *int, budgetMax int) int {
	perPersonCost := s.EstimateCostPerPerson(partyTypes, priceLevel)
	avgFixedCost := int(averageKnown(fixedCosts, partyTypes, 75.0) * multiplierFor(priceLevel))

	availableForGuests := budgetMax - avgFixedCost
	suggested := availableForGuests / perPersonCost
	if suggested < 1 {
		return 1
	}
	return suggested
}
