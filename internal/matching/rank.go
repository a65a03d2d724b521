package matching

import (
	"cmp"
	"slices"
)

// DefaultSuggestionLimit caps quick suggestions when the caller gives no limit.
const DefaultSuggestionLimit = 10

// Rank keeps results scoring at least minPercentage and orders them by
// descending match percentage. Equal scores keep their input order, which is
// the store's candidate order (ascending id).
func Rank(results []MatchResult, minPercentage int) []MatchResult {
	kept := make([]MatchResult, 0, len(results))
	for _, r := range results {
		if r.MatchPercentage >= minPercentage {
			kept = append(kept, r)
		}
	}
	slices.SortStableFunc(kept, func(a, b MatchResult) int {
		return cmp.Compare(b.MatchPercentage, a.MatchPercentage)
	})
	return kept
}

// Suggest keeps results with at least one matching ingredient, orders them by
// how few ingredients are still missing (input order breaks ties) and
// truncates to limit.
func Suggest(results []MatchResult, limit int) []MatchResult {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	kept := make([]MatchResult, 0, len(results))
	for _, r := range results {
		if r.MatchingCount > 0 {
			kept = append(kept, r)
		}
	}
	slices.SortStableFunc(kept, func(a, b MatchResult) int {
		return cmp.Compare(len(a.MissingIngredients), len(b.MissingIngredients))
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
