package services

import (
	"fmt"
	"strconv"
	"strings"

	"partyscout/models"
)

// PartyDetailsService generates party content: what's included, what's not,
// suggested add-ons, and what to bring. The tables are keyed by the venue
// content types (finer-grained than the taxonomy's party types).
type PartyDetailsService struct {
	partyTypeService *PartyTypeService
}

func NewPartyDetailsService(partyTypeService *PartyTypeService) *PartyDetailsService {
	return &PartyDetailsService{partyTypeService: partyTypeService}
}

// Standard included items by party type
var includedByType = map[string][]string{
	"toddler_play": {
		"Supervised play time",
		"Party room access",
		"Basic paper goods (plates, napkins)",
		"Table setup",
	},
	"character_party": {
		"Character appearance",
		"Photo opportunities",
		"Party favors",
		"Themed decorations",
	},
	"bounce_house": {
		"Unlimited jump time",
		"Party room access",
		"Socks included",
		"Basic party supplies",
	},
	"arcade": {
		"Game tokens/credits",
		"Pizza and drinks",
		"Party host",
		"Prize tickets",
	},
	"sports": {
		"Lane/court rental",
		"Equipment (shoes, balls)",
		"Scoring system",
		"Party area",
	},
	"arts_crafts": {
		"Art supplies and materials",
		"Instructor guidance",
		"Take-home project",
		"Aprons provided",
	},
	"outdoor": {
		"Pavilion or area rental",
		"Picnic tables",
		"Trash receptacles",
		"Open play space",
	},
	"escape_room": {
		"Private room booking",
		"Game master",
		"Team photos",
		"Lobby gathering area",
	},
	"movies": {
		"Private screening room",
		"Popcorn and drinks",
		"Reserved seating",
		"Movie selection assistance",
	},
	"pool_party": {
		"Pool access",
		"Lifeguard on duty",
		"Party area",
		"Locker room access",
	},
	"go_karts": {
		"Races included",
		"Safety gear",
		"Party room access",
		"Winner recognition",
	},
	"adventure_park": {
		"Admission to attractions",
		"Safety equipment",
		"Instructor/guide",
		"Group photos",
	},
}

// Premium included items (for higher price levels)
var premiumInclusions = map[string][]string{
	"toddler_play": {
		"Extended play time",
		"Themed decorations",
		"Party host assistance",
		"Digital invitations",
	},
	"character_party": {
		"Extended character time",
		"Face painting",
		"Balloon artist",
		"Custom party favors",
	},
	"bounce_house": {
		"Extended time",
		"Pizza and drinks",
		"Party host",
		"Goody bags",
	},
	"arcade": {
		"Unlimited play",
		"VIP experience",
		"Exclusive games access",
		"Custom cake",
	},
	"sports": {
		"Extra game time",
		"Private lanes/courts",
		"Food and drinks",
		"Trophies/medals",
	},
	"arts_crafts": {
		"Premium materials",
		"Additional project",
		"Snacks and drinks",
		"Custom frames",
	},
	"outdoor": {
		"Tent/canopy",
		"Setup and cleanup",
		"Grill access",
		"Activity equipment",
	},
	"escape_room": {
		"Multiple rooms",
		"Extended time",
		"Snacks and drinks",
		"Commemorative photo",
	},
	"movies": {
		"Premium snacks",
		"Multiple movie choice",
		"Party decorations",
		"VIP seating",
	},
	"pool_party": {
		"Private pool time",
		"Pool toys",
		"Snacks and drinks",
		"Party coordinator",
	},
	"go_karts": {
		"Extra races",
		"VIP pit area",
		"Food package",
		"Trophies",
	},
	"adventure_park": {
		"All-access pass",
		"Extra activities",
		"Lunch included",
		"Commemorative gear",
	},
}

// Items typically NOT included (that parents should know about)
var notIncludedByType = map[string][]string{
	"toddler_play": {
		"Cake/cupcakes",
		"Custom decorations",
		"Party favors",
		"Additional food",
	},
	"character_party": {
		"Venue rental",
		"Cake",
		"Additional entertainment",
		"Food service",
	},
	"bounce_house": {
		"Cake",
		"Custom decorations",
		"Additional food",
		"Party favors",
	},
	"arcade": {
		"Birthday cake",
		"Custom decorations",
		"Additional food items",
		"Party favors",
	},
	"sports": {
		"Food beyond basic",
		"Custom cake",
		"Decorations",
		"Party favors",
	},
	"arts_crafts": {
		"Food and drinks",
		"Cake",
		"Decorations",
		"Party favors",
	},
	"outdoor": {
		"Food and drinks",
		"Entertainment",
		"Decorations",
		"Party supplies",
		"Cleanup service",
	},
	"escape_room": {
		"Food",
		"Cake",
		"Decorations",
		"Party favors",
	},
	"movies": {
		"Birthday cake",
		"Custom decorations",
		"Party favors",
		"Meal service",
	},
	"pool_party": {
		"Food beyond snacks",
		"Cake",
		"Decorations",
		"Pool toys (some venues)",
		"Towels",
	},
	"go_karts": {
		"Cake",
		"Decorations",
		"Party favors",
		"Additional food",
	},
	"adventure_park": {
		"Cake",
		"Custom decorations",
		"Party favors",
		"Souvenirs",
	},
}

// Suggested add-ons by party type
var addOnsByType = map[string][]models.AddOn{
	"toddler_play": {
		{Name: "Character visit", Description: "Add a costumed character appearance", EstimatedCost: 75, IsRecommended: true},
		{Name: "Extra play time", Description: "30 additional minutes of play", EstimatedCost: 40, IsRecommended: false},
		{Name: "Face painting", Description: "Simple designs for all guests", EstimatedCost: 60, IsRecommended: true},
		{Name: "Balloon twisting", Description: "Custom balloon animals", EstimatedCost: 50, IsRecommended: false},
	},
	"character_party": {
		{Name: "Second character", Description: "Add another character to the party", EstimatedCost: 100, IsRecommended: false},
		{Name: "Magic show", Description: "15-minute magic performance", EstimatedCost: 75, IsRecommended: true},
		{Name: "Princess makeovers", Description: "Hair, nails, and makeup", EstimatedCost: 15, IsRecommended: false},
		{Name: "Superhero training", Description: "Interactive activity session", EstimatedCost: 50, IsRecommended: false},
	},
	"bounce_house": {
		{Name: "Pizza package", Description: "2 slices + drink per child", EstimatedCost: 8, IsRecommended: true},
		{Name: "Extra time", Description: "30 additional minutes", EstimatedCost: 50, IsRecommended: false},
		{Name: "Goody bags", Description: "Pre-made party favors", EstimatedCost: 5, IsRecommended: true},
		{Name: "Glow party upgrade", Description: "UV lights and glow items", EstimatedCost: 40, IsRecommended: false},
	},
	"arcade": {
		{Name: "Extra tokens", Description: "25 additional game tokens", EstimatedCost: 15, IsRecommended: true},
		{Name: "Prize upgrade", Description: "Guaranteed prize tier", EstimatedCost: 10, IsRecommended: false},
		{Name: "VIP lane", Description: "Private bowling/attraction access", EstimatedCost: 50, IsRecommended: false},
		{Name: "Custom cake", Description: "Themed birthday cake", EstimatedCost: 40, IsRecommended: true},
	},
	"sports": {
		{Name: "Extra game", Description: "Additional bowling game or court time", EstimatedCost: 35, IsRecommended: true},
		{Name: "Shoe upgrade", Description: "Premium rental shoes", EstimatedCost: 5, IsRecommended: false},
		{Name: "Trophy package", Description: "Winner trophies and medals", EstimatedCost: 25, IsRecommended: true},
		{Name: "Food upgrade", Description: "Premium food package", EstimatedCost: 8, IsRecommended: false},
	},
	"arts_crafts": {
		{Name: "Second project", Description: "Additional art activity", EstimatedCost: 10, IsRecommended: true},
		{Name: "Premium canvas", Description: "Upgrade to gallery canvas", EstimatedCost: 8, IsRecommended: false},
		{Name: "Frame it", Description: "Take-home display frames", EstimatedCost: 6, IsRecommended: true},
		{Name: "Instructor demo", Description: "Live painting demonstration", EstimatedCost: 30, IsRecommended: false},
	},
	"outdoor": {
		{Name: "Bounce house rental", Description: "Inflatable entertainment", EstimatedCost: 150, IsRecommended: true},
		{Name: "Face painting", Description: "Artist for 2 hours", EstimatedCost: 100, IsRecommended: true},
		{Name: "Sports equipment", Description: "Soccer, frisbee, etc.", EstimatedCost: 30, IsRecommended: false},
		{Name: "Tent rental", Description: "Shade canopy 10x10", EstimatedCost: 75, IsRecommended: false},
	},
	"escape_room": {
		{Name: "Second room", Description: "Book an additional escape room", EstimatedCost: 150, IsRecommended: false},
		{Name: "Extended time", Description: "15 extra minutes per room", EstimatedCost: 30, IsRecommended: false},
		{Name: "Hint package", Description: "Extra hints available", EstimatedCost: 15, IsRecommended: false},
		{Name: "Photo package", Description: "Professional in-game photos", EstimatedCost: 25, IsRecommended: true},
	},
	"movies": {
		{Name: "Candy bar", Description: "Assorted movie candy", EstimatedCost: 4, IsRecommended: true},
		{Name: "Premium seating", Description: "Recliner upgrades", EstimatedCost: 5, IsRecommended: false},
		{Name: "Popcorn refills", Description: "Unlimited popcorn", EstimatedCost: 15, IsRecommended: false},
		{Name: "3D movie upgrade", Description: "3D glasses included", EstimatedCost: 3, IsRecommended: false},
	},
	"pool_party": {
		{Name: "Pool toys", Description: "Floats and water toys package", EstimatedCost: 30, IsRecommended: true},
		{Name: "Swim instructor", Description: "Games and water activities", EstimatedCost: 75, IsRecommended: false},
		{Name: "Extra pool time", Description: "Additional hour", EstimatedCost: 50, IsRecommended: false},
		{Name: "Cabana rental", Description: "Private shaded area", EstimatedCost: 100, IsRecommended: false},
	},
	"go_karts": {
		{Name: "Extra races", Description: "2 additional races per person", EstimatedCost: 12, IsRecommended: true},
		{Name: "VIP experience", Description: "Priority lane access", EstimatedCost: 10, IsRecommended: false},
		{Name: "Trophy ceremony", Description: "Winner celebration package", EstimatedCost: 30, IsRecommended: true},
		{Name: "Group photo", Description: "Professional race day photo", EstimatedCost: 20, IsRecommended: false},
	},
	"adventure_park": {
		{Name: "Additional attraction", Description: "Access to bonus activities", EstimatedCost: 15, IsRecommended: true},
		{Name: "Photo package", Description: "Action shots of all guests", EstimatedCost: 40, IsRecommended: true},
		{Name: "Lunch upgrade", Description: "Premium meal option", EstimatedCost: 8, IsRecommended: false},
		{Name: "Souvenir package", Description: "T-shirt for birthday child", EstimatedCost: 20, IsRecommended: false},
	},
}

// levelOrModerate substitutes the moderate tier for an absent price level.
func levelOrModerate(priceLevel *int) int {
	if priceLevel == nil {
		return 2
	}
	return *priceLevel
}

// GetIncludedItems returns the included items for the party types, with up
// to two premium items appended at price level 3 and above.
func (s *PartyDetailsService) GetIncludedItems(partyTypes []string, priceLevel *int) []string {
	var baseItems []string
	for _, partyType := range partyTypes {
		baseItems = append(baseItems, includedByType[partyType]...)
	}
	baseItems = distinct(baseItems)

	if levelOrModerate(priceLevel) >= 3 {
		var premiumItems []string
		for _, partyType := range partyTypes {
			premiumItems = append(premiumItems, premiumInclusions[partyType]...)
		}
		// Add a couple premium items
		if len(premiumItems) > 2 {
			premiumItems = premiumItems[:2]
		}
		baseItems = distinct(append(baseItems, premiumItems...))
	}

	return baseItems
}

// GetNotIncludedItems returns what parents should expect to provide. At
// premium venues fewer things are excluded.
func (s *PartyDetailsService) GetNotIncludedItems(partyTypes []string, priceLevel *int) []string {
	var allNotIncluded []string
	for _, partyType := range partyTypes {
		allNotIncluded = append(allNotIncluded, notIncludedByType[partyType]...)
	}
	allNotIncluded = distinct(allNotIncluded)

	if levelOrModerate(priceLevel) >= 3 && len(allNotIncluded) > 3 {
		return allNotIncluded[:3]
	}
	return allNotIncluded
}

// GetSuggestedAddOns returns add-ons for the party types, deduplicated by
// name. Add-ons costing $15 or less are treated as per-person: their cost is
// multiplied by the guest count and the unit cost noted in the description.
func (s *PartyDetailsService) GetSuggestedAddOns(partyTypes []string, guestCount int) []models.AddOn {
	seen := make(map[string]bool)
	var addOns []models.AddOn
	for _, partyType := range partyTypes {
		for _, addOn := range addOnsByType[partyType] {
			if seen[addOn.Name] {
				continue
			}
			seen[addOn.Name] = true

			if addOn.EstimatedCost <= 15 {
				// Likely a per-person cost
				addOn.Description = fmt.Sprintf("%s (%d/person)", addOn.Description, addOn.EstimatedCost)
				addOn.EstimatedCost = addOn.EstimatedCost * guestCount
			}
			addOns = append(addOns, addOn)
		}
	}
	return addOns
}

// GetTypicalDuration returns the longest typical duration among the party
// types, defaulting to "2 hours".
func (s *PartyDetailsService) GetTypicalDuration(partyTypes []string) string {
	if len(partyTypes) == 0 {
		return "2 hours"
	}

	best := ""
	bestHours := -1.0
	for _, partyType := range partyTypes {
		duration := s.partyTypeService.GetTypicalDuration(partyType)
		if duration == "" {
			continue
		}
		if hours := parseDurationHours(duration); hours > bestHours {
			bestHours = hours
			best = duration
		}
	}

	if best == "" {
		return "2 hours"
	}
	return best
}

func parseDurationHours(duration string) float64 {
	trimmed := strings.ReplaceAll(duration, " hours", "")
	trimmed = strings.ReplaceAll(trimmed, " hour", "")
	hours, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 2.0
	}
	return hours
}

// GetWhatToBring suggests what parents should pack for the party.
func (s *PartyDetailsService) GetWhatToBring(partyTypes []string, priceLevel *int) []string {
	suggestions := []string{
		"Birthday cake or cupcakes",
		"Candles and cake server",
		"Camera for photos",
	}

	if containsType(partyTypes, "pool_party") {
		suggestions = append(suggestions, "Towels", "Sunscreen", "Change of clothes")
	}
	if containsType(partyTypes, "outdoor") {
		suggestions = append(suggestions, "Cooler with ice", "Sunscreen", "Bug spray")
	}
	if containsType(partyTypes, "bounce_house") || containsType(partyTypes, "adventure_park") || containsType(partyTypes, "go_karts") {
		suggestions = append(suggestions, "Comfortable clothes for activity")
	}

	// At budget venues, need to bring more
	if levelOrModerate(priceLevel) <= 1 {
		suggestions = append(suggestions, "Paper goods", "Drinks", "Snacks")
	}

	return distinct(suggestions)
}

// GetAgeAppropriatenessDescription summarizes the combined age band of the
// requested party types.
func (s *PartyDetailsService) GetAgeAppropriatenessDescription(partyTypes []string) string {
	var taxonomies []*models.PartyTypeTaxonomy
	for _, partyType := range partyTypes {
		if taxonomy := s.partyTypeService.GetTaxonomyForType(partyType); taxonomy != nil {
			taxonomies = append(taxonomies, taxonomy)
		}
	}
	if len(taxonomies) == 0 {
		return "Suitable for various ages"
	}

	minAge := taxonomies[0].MinAge
	maxAge := taxonomies[0].MaxAge
	for _, taxonomy := range taxonomies[1:] {
		if taxonomy.MinAge < minAge {
			minAge = taxonomy.MinAge
		}
		if taxonomy.MaxAge > maxAge {
			maxAge = taxonomy.MaxAge
		}
	}

	return fmt.Sprintf("Best for ages %d-%d", minAge, maxAge)
}

func containsType(partyTypes []string, target string) bool {
	for _, partyType := range partyTypes {
		if partyType == target {
			return true
		}
	}
	return false
}
