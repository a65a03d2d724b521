package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pageza/pantry-finder/backend/internal/logging"
	"github.com/pageza/pantry-finder/backend/internal/matching"
	"github.com/pageza/pantry-finder/backend/internal/model"
	"github.com/pageza/pantry-finder/backend/internal/store"
)

// Options tunes the recipe service. Zero values select the defaults.
type Options struct {
	// RelevanceLimit caps text search results before post-hoc filtering.
	RelevanceLimit int
	// SuggestionLimit is used when a quick suggestions caller gives no limit.
	SuggestionLimit int
	// Synonyms replaces matching.DefaultSynonyms for smart matching.
	Synonyms matching.Synonyms
}

// RecipeService handles recipe operations
type RecipeService struct {
	store           store.RecipeStore
	substring       *matching.Scorer
	smart           *matching.Scorer
	relevanceLimit  int
	suggestionLimit int
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(st store.RecipeStore, opts Options) *RecipeService {
	if opts.RelevanceLimit <= 0 {
		opts.RelevanceLimit = store.DefaultRelevanceLimit
	}
	if opts.SuggestionLimit <= 0 {
		opts.SuggestionLimit = matching.DefaultSuggestionLimit
	}
	if opts.Synonyms == nil {
		opts.Synonyms = matching.DefaultSynonyms
	}
	return &RecipeService{
		store:           st,
		substring:       matching.NewScorer(matching.Substring, nil),
		smart:           matching.NewScorer(matching.Bidirectional, matching.NewExpander(opts.Synonyms)),
		relevanceLimit:  opts.RelevanceLimit,
		suggestionLimit: opts.SuggestionLimit,
	}
}

func hasContent(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// ListRecipes returns every recipe passing the optional filters.
func (s *RecipeService) ListRecipes(ctx context.Context, filters *model.RecipeFilters) ([]model.Recipe, error) {
	recipes, err := s.store.FindMany(ctx, store.BuildPredicate(filters))
	if err != nil {
		return nil, queryFailed(ctx, "list_recipes", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	recipe, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, queryFailed(ctx, "get_recipe", err)
	}
	return recipe, nil
}

// RecipesByCategories returns recipes sharing at least one of categories.
func (s *RecipeService) RecipesByCategories(ctx context.Context, categories []string) ([]model.Recipe, error) {
	if !hasContent(categories) {
		return []model.Recipe{}, nil
	}
	recipes, err := s.store.FindMany(ctx, store.CategoriesPredicate(categories))
	if err != nil {
		return nil, queryFailed(ctx, "recipes_by_categories", err)
	}
	return recipes, nil
}

// RecipesByIngredientNames returns recipes whose ingredient text mentions
// every one of names.
func (s *RecipeService) RecipesByIngredientNames(ctx context.Context, names []string) ([]model.Recipe, error) {
	if !hasContent(names) {
		return []model.Recipe{}, nil
	}
	recipes, err := s.store.FindMany(ctx, store.IngredientNamesPredicate(names))
	if err != nil {
		return nil, queryFailed(ctx, "recipes_by_ingredient_names", err)
	}
	return recipes, nil
}

// ExactIngredients returns recipes fully covered by available. It is the
// percentage match at 100.
func (s *RecipeService) ExactIngredients(ctx context.Context, available []string, filters *model.RecipeFilters) ([]matching.MatchResult, error) {
	return s.match(ctx, "exact_ingredients", s.substring, available, 100, filters)
}

// PercentageMatch returns recipes at least minPercentage covered by
// available, best first.
func (s *RecipeService) PercentageMatch(ctx context.Context, available []string, minPercentage int, filters *model.RecipeFilters) ([]matching.MatchResult, error) {
	return s.match(ctx, "percentage_match", s.substring, available, minPercentage, filters)
}

// SmartMatch is PercentageMatch with synonym expansion and a bidirectional
// substring test.
func (s *RecipeService) SmartMatch(ctx context.Context, available []string, minPercentage int, filters *model.RecipeFilters) ([]matching.MatchResult, error) {
	return s.match(ctx, "smart_match", s.smart, available, minPercentage, filters)
}

func (s *RecipeService) match(ctx context.Context, op string, scorer *matching.Scorer, available []string, minPercentage int, filters *model.RecipeFilters) ([]matching.MatchResult, error) {
	if minPercentage < 0 || minPercentage > 100 {
		return nil, invalid("minimum match percentage %d outside 0-100", minPercentage)
	}
	avail := scorer.Prepare(available)
	if avail.Len() == 0 {
		return []matching.MatchResult{}, nil
	}

	candidates, err := s.store.FindMany(ctx, store.BuildPredicate(filters))
	if err != nil {
		return nil, queryFailed(ctx, op, err)
	}

	ranked := matching.Rank(scorer.ScoreAll(candidates, avail), minPercentage)
	logging.Ctx(ctx).Debug().
		Str("operation", op).
		Int("candidates", len(candidates)).
		Int("results", len(ranked)).
		Msg("recipes ranked")
	return ranked, nil
}

// TextSearch ranks recipes with the store's text relevance search over any of
// terms. Filters are applied afterwards to the capped result set, so fewer
// than RelevanceLimit recipes may come back even when more would qualify.
func (s *RecipeService) TextSearch(ctx context.Context, terms []string, filters *model.RecipeFilters) ([]store.ScoredRecipe, error) {
	query := store.JoinTerms(terms)
	if query == "" {
		return []store.ScoredRecipe{}, nil
	}

	rows, err := s.store.TextRelevanceSearch(ctx, query, s.relevanceLimit)
	if err != nil {
		return nil, queryFailed(ctx, "text_search", err)
	}

	pred := store.BuildPredicate(filters)
	out := make([]store.ScoredRecipe, 0, len(rows))
	for i := range rows {
		if pred.Matches(&rows[i].Recipe) {
			out = append(out, rows[i])
		}
	}
	return out, nil
}

// QuickSuggestions returns up to limit recipes using at least one available
// ingredient, fewest missing ingredients first. A zero limit selects the
// configured default.
func (s *RecipeService) QuickSuggestions(ctx context.Context, available []string, limit int) ([]matching.MatchResult, error) {
	if limit < 0 {
		return nil, invalid("limit %d must be positive", limit)
	}
	if limit == 0 {
		limit = s.suggestionLimit
	}
	avail := s.substring.Prepare(available)
	if avail.Len() == 0 {
		return []matching.MatchResult{}, nil
	}

	candidates, err := s.store.FindMany(ctx, store.Predicate{})
	if err != nil {
		return nil, queryFailed(ctx, "quick_suggestions", err)
	}
	return matching.Suggest(s.substring.ScoreAll(candidates, avail), limit), nil
}

// CreateRecipe stores a new recipe owned by owner.
func (s *RecipeService) CreateRecipe(ctx context.Context, owner uuid.UUID, recipe *model.Recipe) (*model.Recipe, error) {
	recipe.ID = 0
	recipe.OwnerID = owner
	if err := s.store.Create(ctx, recipe); err != nil {
		return nil, queryFailed(ctx, "create_recipe", err)
	}
	return recipe, nil
}

// UpdateRecipe replaces the recipe with id when owner owns it.
func (s *RecipeService) UpdateRecipe(ctx context.Context, owner uuid.UUID, id uint, recipe *model.Recipe) (*model.Recipe, error) {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != owner {
		return nil, ErrForbidden
	}

	recipe.ID = id
	recipe.OwnerID = owner
	recipe.CreatedAt = existing.CreatedAt
	if err := s.store.Update(ctx, recipe); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, queryFailed(ctx, "update_recipe", err)
	}
	return recipe, nil
}

// DeleteRecipe removes the recipe with id when owner owns it.
func (s *RecipeService) DeleteRecipe(ctx context.Context, owner uuid.UUID, id uint) error {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != owner {
		return ErrForbidden
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return queryFailed(ctx, "delete_recipe", err)
	}
	return nil
}
