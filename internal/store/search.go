package store

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/pageza/pantry-finder/backend/internal/model"
)

// DefaultRelevanceLimit caps text relevance results.
const DefaultRelevanceLimit = 100

// JoinTerms renders terms as a web-search style query matching any of them:
// ["olive oil", "onion"] becomes `"olive oil" or "onion"`. Quotes inside
// terms are dropped; blank terms are skipped.
func JoinTerms(terms []string) string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.Join(strings.Fields(strings.ReplaceAll(t, `"`, " ")), " ")
		if t != "" {
			quoted = append(quoted, `"`+t+`"`)
		}
	}
	return strings.Join(quoted, " or ")
}

// splitTerms reverses JoinTerms.
func splitTerms(query string) []string {
	var terms []string
	for _, part := range strings.Split(query, `" or "`) {
		if part = strings.Trim(part, `" `); part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// TextRelevanceSearch implements RecipeStore. Postgres ranks with ts_rank over
// the english tsvector of the ingredient text. Other dialects rank by the
// share of query terms found in the ingredient text.
func (s *GormStore) TextRelevanceSearch(ctx context.Context, query string, limit int) ([]ScoredRecipe, error) {
	if limit <= 0 {
		limit = DefaultRelevanceLimit
	}
	if s.dialect() == "postgres" {
		return s.tsRankSearch(ctx, query, limit)
	}
	return s.likeRankSearch(ctx, query, limit)
}

type scoredRow struct {
	model.Recipe
	Relevance float64
}

func (s *GormStore) tsRankSearch(ctx context.Context, query string, limit int) ([]ScoredRecipe, error) {
	var rows []scoredRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT recipes.*,
		       ts_rank(to_tsvector('english', recipes.ingredients::text), websearch_to_tsquery('english', ?)) AS relevance
		FROM recipes
		WHERE recipes.deleted_at IS NULL
		  AND to_tsvector('english', recipes.ingredients::text) @@ websearch_to_tsquery('english', ?)
		ORDER BY relevance DESC, recipes.id ASC
		LIMIT ?`,
		query, query, limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ScoredRecipe, 0, len(rows))
	for _, row := range rows {
		out = append(out, ScoredRecipe{Recipe: row.Recipe, RelevanceScore: row.Relevance})
	}
	return out, nil
}

func (s *GormStore) likeRankSearch(ctx context.Context, query string, limit int) ([]ScoredRecipe, error) {
	terms := splitTerms(query)
	if len(terms) == 0 {
		return []ScoredRecipe{}, nil
	}

	db := s.db.WithContext(ctx)
	cond := s.db.Where(`LOWER(recipes.ingredients) LIKE ? ESCAPE '\'`, sqlitePattern(terms[0]))
	for _, t := range terms[1:] {
		cond = cond.Or(`LOWER(recipes.ingredients) LIKE ? ESCAPE '\'`, sqlitePattern(t))
	}

	var recipes []model.Recipe
	if err := db.Where(cond).Order("recipes.id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}

	out := make([]ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		text := strings.ToLower(strings.Join(r.Ingredients, "\n"))
		hits := 0
		for _, t := range terms {
			if strings.Contains(text, strings.ToLower(t)) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		out = append(out, ScoredRecipe{Recipe: r, RelevanceScore: float64(hits) / float64(len(terms))})
	}
	slices.SortStableFunc(out, func(a, b ScoredRecipe) int {
		return cmp.Compare(b.RelevanceScore, a.RelevanceScore)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
