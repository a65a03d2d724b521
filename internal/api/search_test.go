package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantry-finder/backend/internal/matching"
	"github.com/pageza/pantry-finder/backend/internal/model"
	"github.com/pageza/pantry-finder/backend/internal/service"
	"github.com/pageza/pantry-finder/backend/internal/store"
)

func TestSearchByCategories(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.On("RecipesByCategories", mock.Anything, []string{"soup"}).Return([]model.Recipe{{ID: 1}}, nil)

	rr := env.do(t, http.MethodPost, "/api/v1/search/categories", map[string]interface{}{"categories": []string{"soup"}}, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["recipes"], 1)
}

func TestSearchByIngredientNames(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.On("RecipesByIngredientNames", mock.Anything, []string{"garlic", "oil"}).Return([]model.Recipe{}, nil)

	rr := env.do(t, http.MethodPost, "/api/v1/search/ingredients", map[string]interface{}{"ingredientNames": []string{"garlic", "oil"}}, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode(t, rr)["recipes"])
}

func TestSearchExactWithFilters(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.On("ExactIngredients", mock.Anything, []string{"salt"}, mock.MatchedBy(func(f *model.RecipeFilters) bool {
		return f != nil && f.Vegan != nil && *f.Vegan
	})).Return([]matching.MatchResult{{Recipe: model.Recipe{ID: 2}, MatchPercentage: 100, MatchingCount: 1, TotalCount: 1, MissingIngredients: []string{}}}, nil)

	rr := env.do(t, http.MethodPost, "/api/v1/search/exact", map[string]interface{}{
		"availableIngredients": []string{"salt"},
		"filters":              map[string]interface{}{"vegan": true},
	}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	results := decode(t, rr)["results"].([]interface{})
	require.Len(t, results, 1)
	assert.EqualValues(t, 100, results[0].(map[string]interface{})["match_percentage"])
}

func TestSearchMatchRequiresPercentage(t *testing.T) {
	env := setupTestRouter(t)

	for _, body := range []map[string]interface{}{
		{"availableIngredients": []string{"salt"}},
		{"availableIngredients": []string{"salt"}, "minMatchPercentage": 150},
		{"minMatchPercentage": 50},
	} {
		rr := env.do(t, http.MethodPost, "/api/v1/search/match", body, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, fmt.Sprint(body))
	}
	env.recipes.AssertNotCalled(t, "PercentageMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchMatchAndSmart(t *testing.T) {
	env := setupTestRouter(t)
	nilFilters := (*model.RecipeFilters)(nil)
	env.recipes.On("PercentageMatch", mock.Anything, []string{"salt"}, 0, nilFilters).Return([]matching.MatchResult{}, nil)
	env.recipes.On("SmartMatch", mock.Anything, []string{"scallion"}, 60, nilFilters).Return([]matching.MatchResult{}, nil)

	body := map[string]interface{}{"availableIngredients": []string{"salt"}, "minMatchPercentage": 0}
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/search/match", body, "").Code)

	body = map[string]interface{}{"availableIngredients": []string{"scallion"}, "minMatchPercentage": 60}
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/search/smart", body, "").Code)
}

func TestSearchText(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.On("TextSearch", mock.Anything, []string{"olive oil"}, (*model.RecipeFilters)(nil)).
		Return([]store.ScoredRecipe{{Recipe: model.Recipe{ID: 4}, RelevanceScore: 0.5}}, nil)

	rr := env.do(t, http.MethodPost, "/api/v1/search/text", map[string]interface{}{"availableIngredients": []string{"olive oil"}}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	results := decode(t, rr)["results"].([]interface{})
	assert.InDelta(t, 0.5, results[0].(map[string]interface{})["relevance_score"], 1e-9)
}

func TestSearchSuggestions(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.On("QuickSuggestions", mock.Anything, []string{"egg"}, 0).Return([]matching.MatchResult{}, nil)
	env.recipes.On("QuickSuggestions", mock.Anything, []string{"egg"}, 3).Return([]matching.MatchResult{}, nil)

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/search/suggestions", map[string]interface{}{"availableIngredients": []string{"egg"}}, "").Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/search/suggestions", map[string]interface{}{"availableIngredients": []string{"egg"}, "limit": 3}, "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/api/v1/search/suggestions", map[string]interface{}{"availableIngredients": []string{"egg"}, "limit": 500}, "").Code)
}

func TestSearchQueryFailure(t *testing.T) {
	env := setupTestRouter(t)
	env.recipes.On("RecipesByCategories", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: recipes_by_categories: connection refused", service.ErrQueryFailed))

	rr := env.do(t, http.MethodPost, "/api/v1/search/categories", map[string]interface{}{"categories": []string{"soup"}}, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "recipe query failed: recipes_by_categories: connection refused", decode(t, rr)["error"])
}
