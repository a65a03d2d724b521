package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantry-finder/backend/internal/matching"
	"github.com/pageza/pantry-finder/backend/internal/mocks"
	"github.com/pageza/pantry-finder/backend/internal/model"
	"github.com/pageza/pantry-finder/backend/internal/service"
	"github.com/pageza/pantry-finder/backend/internal/store"
)

func newRecipeService(t *testing.T) (*service.RecipeService, *mocks.MockRecipeStore) {
	t.Helper()
	st := &mocks.MockRecipeStore{}
	t.Cleanup(func() { st.AssertExpectations(t) })
	return service.NewRecipeService(st, service.Options{}), st
}

func kitchen() []model.Recipe {
	return []model.Recipe{
		{ID: 1, Name: "Aglio e Olio", Ingredients: model.JSONBStringArray{"200 g spaghetti", "3 cloves garlic", "4 tbsp olive oil"}, Categories: model.JSONBStringArray{"pasta"}},
		{ID: 2, Name: "Onion Soup", Ingredients: model.JSONBStringArray{"3 onions", "2 tbsp olive oil", "salt"}, Vegan: true, Categories: model.JSONBStringArray{"soup"}},
		{ID: 3, Name: "Buttered Toast", Ingredients: model.JSONBStringArray{"1 slice bread", "butter"}},
	}
}

type matchResult = matching.MatchResult

func boolPtr(b bool) *bool { return &b }

func ids[T any](items []T, id func(T) uint) []uint {
	out := make([]uint, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func TestPercentageMatch(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	st.On("FindMany", ctx, store.Predicate{}).Return(kitchen(), nil)

	results, err := svc.PercentageMatch(ctx, []string{"Spaghetti", "garlic", "olive oil", "salt"}, 50, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, uint(1), results[0].Recipe.ID)
	assert.Equal(t, 100, results[0].MatchPercentage)
	assert.Empty(t, results[0].MissingIngredients)

	assert.Equal(t, uint(2), results[1].Recipe.ID)
	assert.Equal(t, 67, results[1].MatchPercentage)
	assert.Equal(t, 2, results[1].MatchingCount)
	assert.Equal(t, 3, results[1].TotalCount)
	assert.Equal(t, []string{"onions"}, results[1].MissingIngredients)
}

func TestPercentageMatchOneThird(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	st.On("FindMany", ctx, store.Predicate{}).Return(kitchen()[1:2], nil)

	results, err := svc.PercentageMatch(ctx, []string{"salt"}, 0, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 33, results[0].MatchPercentage)
	assert.Equal(t, []string{"onions", "olive oil"}, results[0].MissingIngredients)
}

func TestPercentageMatchPassesFilters(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	filters := &model.RecipeFilters{Vegan: boolPtr(true), Categories: []string{"soup"}}
	st.On("FindMany", ctx, store.BuildPredicate(filters)).Return(kitchen()[1:2], nil)

	results, err := svc.PercentageMatch(ctx, []string{"onion"}, 0, filters)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestExactIngredientsIsFullMatch(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	st.On("FindMany", ctx, store.Predicate{}).Return(kitchen(), nil)

	available := []string{"spaghetti", "garlic", "olive oil", "bread"}
	exact, err := svc.ExactIngredients(ctx, available, nil)
	require.NoError(t, err)
	full, err := svc.PercentageMatch(ctx, available, 100, nil)
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, ids(exact, func(r matchResult) uint { return r.Recipe.ID }))
	assert.Equal(t, exact, full)
}

func TestMatchRejectsOutOfRangePercentage(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()

	for _, pct := range []int{-1, 101} {
		_, err := svc.PercentageMatch(ctx, []string{"salt"}, pct, nil)
		assert.ErrorIs(t, err, service.ErrInvalidQuery)
		_, err = svc.SmartMatch(ctx, []string{"salt"}, pct, nil)
		assert.ErrorIs(t, err, service.ErrInvalidQuery)
	}
	st.AssertNotCalled(t, "FindMany", mock.Anything, mock.Anything)
}

func TestEmptyInputsSkipTheStore(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()

	exact, err := svc.ExactIngredients(ctx, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, exact)
	assert.Empty(t, exact)

	pct, err := svc.PercentageMatch(ctx, []string{" ", ""}, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, pct)

	smart, err := svc.SmartMatch(ctx, []string{}, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, smart)

	byCat, err := svc.RecipesByCategories(ctx, []string{"  "})
	require.NoError(t, err)
	assert.Empty(t, byCat)

	byName, err := svc.RecipesByIngredientNames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, byName)

	text, err := svc.TextSearch(ctx, []string{""}, nil)
	require.NoError(t, err)
	assert.Empty(t, text)

	sugg, err := svc.QuickSuggestions(ctx, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, sugg)

	st.AssertNotCalled(t, "FindMany", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "TextRelevanceSearch", mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreFailureBecomesQueryFailed(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	boom := errors.New("connection reset")
	st.On("FindMany", ctx, mock.Anything).Return(nil, boom)
	st.On("TextRelevanceSearch", ctx, mock.Anything, mock.Anything).Return(nil, boom)

	calls := map[string]func() error{
		"list":       func() error { _, err := svc.ListRecipes(ctx, nil); return err },
		"categories": func() error { _, err := svc.RecipesByCategories(ctx, []string{"soup"}); return err },
		"names":      func() error { _, err := svc.RecipesByIngredientNames(ctx, []string{"salt"}); return err },
		"exact":      func() error { _, err := svc.ExactIngredients(ctx, []string{"salt"}, nil); return err },
		"percentage": func() error { _, err := svc.PercentageMatch(ctx, []string{"salt"}, 10, nil); return err },
		"smart":      func() error { _, err := svc.SmartMatch(ctx, []string{"salt"}, 10, nil); return err },
		"text":       func() error { _, err := svc.TextSearch(ctx, []string{"salt"}, nil); return err },
		"suggest":    func() error { _, err := svc.QuickSuggestions(ctx, []string{"salt"}, 3); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.ErrorIs(t, err, service.ErrQueryFailed)
			assert.Contains(t, err.Error(), "connection reset")
		})
	}
}

func TestSmartMatchUsesSynonymsAndBothDirections(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	recipes := []model.Recipe{
		{ID: 7, Name: "Scallion Pancake", Ingredients: model.JSONBStringArray{"2 cups flour", "4 scallions, chopped"}},
		{ID: 8, Name: "Butter", Ingredients: model.JSONBStringArray{"cream"}},
	}
	st.On("FindMany", ctx, store.Predicate{}).Return(recipes, nil)

	smart, err := svc.SmartMatch(ctx, []string{"flour", "green onion", "heavy cream"}, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{7, 8}, ids(smart, func(r matchResult) uint { return r.Recipe.ID }))

	plain, err := svc.PercentageMatch(ctx, []string{"flour", "green onion", "heavy cream"}, 100, nil)
	require.NoError(t, err)
	assert.Empty(t, plain)
}

func TestTextSearchFiltersAfterTheCap(t *testing.T) {
	st := &mocks.MockRecipeStore{}
	svc := service.NewRecipeService(st, service.Options{RelevanceLimit: 2})
	ctx := context.Background()
	all := kitchen()

	st.On("TextRelevanceSearch", ctx, `"olive oil" or "salt"`, 2).Return([]store.ScoredRecipe{
		{Recipe: all[0], RelevanceScore: 0.9},
		{Recipe: all[1], RelevanceScore: 0.4},
	}, nil)

	got, err := svc.TextSearch(ctx, []string{"olive oil", "salt"}, &model.RecipeFilters{Vegan: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].Recipe.ID)
	assert.InDelta(t, 0.4, got[0].RelevanceScore, 1e-9)
	st.AssertExpectations(t)
}

func TestQuickSuggestions(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	st.On("FindMany", ctx, store.Predicate{}).Return(kitchen(), nil)

	got, err := svc.QuickSuggestions(ctx, []string{"olive oil", "salt", "butter"}, 0)
	require.NoError(t, err)
	// soup and toast miss one each, pasta misses two
	assert.Equal(t, []uint{2, 3, 1}, ids(got, func(r matchResult) uint { return r.Recipe.ID }))

	got, err = svc.QuickSuggestions(ctx, []string{"olive oil", "salt", "butter"}, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.QuickSuggestions(ctx, []string{"salt"}, -1)
	assert.ErrorIs(t, err, service.ErrInvalidQuery)
}

func TestGetRecipeNotFound(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	st.On("Get", ctx, uint(42)).Return(nil, store.ErrNotFound)

	_, err := svc.GetRecipe(ctx, 42)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestCreateRecipeSetsOwner(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	owner := uuid.New()
	st.On("Create", ctx, mock.MatchedBy(func(r *model.Recipe) bool {
		return r.OwnerID == owner && r.ID == 0
	})).Return(nil)

	got, err := svc.CreateRecipe(ctx, owner, &model.Recipe{ID: 99, Name: "Toast"})
	require.NoError(t, err)
	assert.Equal(t, owner, got.OwnerID)
}

func TestUpdateRecipeOwnership(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	owner := uuid.New()
	st.On("Get", ctx, uint(1)).Return(&model.Recipe{ID: 1, OwnerID: owner, Name: "Old"}, nil)
	st.On("Update", ctx, mock.MatchedBy(func(r *model.Recipe) bool { return r.ID == 1 && r.Name == "New" })).Return(nil).Once()

	_, err := svc.UpdateRecipe(ctx, uuid.New(), 1, &model.Recipe{Name: "New"})
	assert.ErrorIs(t, err, service.ErrForbidden)

	got, err := svc.UpdateRecipe(ctx, owner, 1, &model.Recipe{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, owner, got.OwnerID)
}

func TestDeleteRecipe(t *testing.T) {
	svc, st := newRecipeService(t)
	ctx := context.Background()
	owner := uuid.New()
	st.On("Get", ctx, uint(1)).Return(&model.Recipe{ID: 1, OwnerID: owner}, nil)
	st.On("Get", ctx, uint(2)).Return(nil, store.ErrNotFound)
	st.On("Delete", ctx, uint(1)).Return(nil).Once()

	assert.ErrorIs(t, svc.DeleteRecipe(ctx, uuid.New(), 1), service.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteRecipe(ctx, owner, 2), service.ErrRecipeNotFound)
	assert.NoError(t, svc.DeleteRecipe(ctx, owner, 1))
}
