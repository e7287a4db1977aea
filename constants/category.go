package constants

import (
	"strings"
)

type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Shopping      Category = "Shopping"
	Health        Category = "Health"
	Leisure       Category = "Leisure"
	Housing       Category = "Housing"
	Utilities     Category = "Utilities"
	Travel        Category = "Travel"
	Subscriptions Category = "Subscriptions"
	Other         Category = "Other"
)

// FallbackOrder is the fixed priority used to rank categories when scores tie
// and to fill suggestions when nothing scores at all. Categories outside this
// list sort last, alphabetically.
var FallbackOrder = []Category{
	Food,
	Shopping,
	Transport,
	Health,
	Leisure,
	Housing,
	Utilities,
	Travel,
	Subscriptions,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(FallbackOrder))
	for i, cat := range FallbackOrder {
		result[i] = string(cat)
	}
	return result
}

// FallbackRank returns the position of name in FallbackOrder, or
// len(FallbackOrder) when it is not a known category.
func FallbackRank(name string) int {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, cat := range FallbackOrder {
		if needle == strings.ToLower(string(cat)) {
			return i
		}
	}
	return len(FallbackOrder)
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, cat := range FallbackOrder {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}
	return Other, false
}
