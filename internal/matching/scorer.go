package matching

import (
	"slices"
	"strings"

	"github.com/pageza/pantry-finder/backend/internal/model"
)

// MatchMode selects the substring test used to decide whether an available
// term satisfies a required ingredient.
type MatchMode int

const (
	// Substring matches when the available term occurs inside the normalized
	// requirement: "onion" satisfies "red onion", "red onion" does not
	// satisfy "onion".
	Substring MatchMode = iota
	// Bidirectional also accepts the requirement occurring inside the
	// available term.
	Bidirectional
)

func (m MatchMode) String() string {
	if m == Bidirectional {
		return "bidirectional"
	}
	return "substring"
}

// MatchResult binds a recipe to how well an available set covers it.
type MatchResult struct {
	Recipe             model.Recipe `json:"recipe"`
	MatchPercentage    int          `json:"match_percentage"`
	MatchingCount      int          `json:"matching_count"`
	TotalCount         int          `json:"total_count"`
	MissingIngredients []string     `json:"missing_ingredients"`
}

// Scorer computes MatchResults under one match mode. A non-nil expander
// widens the available set with synonyms before matching.
type Scorer struct {
	mode     MatchMode
	expander *Expander
}

// NewScorer returns a scorer. expander may be nil.
func NewScorer(mode MatchMode, expander *Expander) *Scorer {
	return &Scorer{mode: mode, expander: expander}
}

// Available is an effective, prepared set of on-hand ingredient terms: the
// terms the caller gave plus any synonym aliases they expanded to.
type Available struct {
	given   []string
	aliases []string
}

// Len reports how many terms, given and expanded, the set holds.
func (a Available) Len() int {
	return len(a.given) + len(a.aliases)
}

// Prepare normalizes terms, drops blanks and applies synonym expansion.
// Blank terms must never reach the substring test: "" is inside everything.
func (s *Scorer) Prepare(terms []string) Available {
	seen := make(map[string]struct{}, len(terms))
	var avail Available
	for _, t := range terms {
		if t = normalizeTerm(t); t != "" {
			if _, dup := seen[t]; !dup {
				seen[t] = struct{}{}
				avail.given = append(avail.given, t)
			}
		}
	}
	if s.expander == nil {
		return avail
	}
	for _, t := range s.expander.ExpandAll(avail.given) {
		if _, dup := seen[t]; !dup {
			seen[t] = struct{}{}
			avail.aliases = append(avail.aliases, t)
		}
	}
	return avail
}

// Score rates recipe against avail.
func (s *Scorer) Score(recipe model.Recipe, avail Available) MatchResult {
	required := slices.Collect(NormalizeAll(recipe.Ingredients))

	result := MatchResult{
		Recipe:             recipe,
		TotalCount:         len(required),
		MissingIngredients: []string{},
	}
	for _, req := range required {
		if s.satisfied(req, avail) {
			result.MatchingCount++
		} else {
			result.MissingIngredients = append(result.MissingIngredients, req)
		}
	}
	result.MatchPercentage = Percentage(result.MatchingCount, result.TotalCount)
	return result
}

// ScoreAll scores every recipe in order against the same prepared set.
func (s *Scorer) ScoreAll(recipes []model.Recipe, avail Available) []MatchResult {
	results := make([]MatchResult, 0, len(recipes))
	for _, r := range recipes {
		results = append(results, s.Score(r, avail))
	}
	return results
}

// satisfied reports whether req is covered. Any term, given or alias, may
// occur inside req. The reverse test is limited to given terms so an alias
// such as "unsalted butter" cannot cover "salt".
func (s *Scorer) satisfied(req string, avail Available) bool {
	for _, a := range avail.given {
		if strings.Contains(req, a) {
			return true
		}
		if s.mode == Bidirectional && strings.Contains(a, req) {
			return true
		}
	}
	for _, a := range avail.aliases {
		if strings.Contains(req, a) {
			return true
		}
	}
	return false
}

// Percentage returns matching/total as a whole percentage rounded half up.
// A recipe without ingredients scores 0.
func Percentage(matching, total int) int {
	if total <= 0 {
		return 0
	}
	return (matching*200 + total) / (2 * total)
}
