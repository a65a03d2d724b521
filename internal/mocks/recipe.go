package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/pantry-finder/backend/internal/matching"
	"github.com/pageza/pantry-finder/backend/internal/model"
	"github.com/pageza/pantry-finder/backend/internal/store"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) recipes(args mock.Arguments) ([]model.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeService) matches(args mock.Arguments) ([]matching.MatchResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]matching.MatchResult), args.Error(1)
}

func (m *MockRecipeService) recipe(args mock.Arguments) (*model.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context, filters *model.RecipeFilters) ([]model.Recipe, error) {
	return m.recipes(m.Called(ctx, filters))
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	return m.recipe(m.Called(ctx, id))
}

// RecipesByCategories mocks the RecipesByCategories method
func (m *MockRecipeService) RecipesByCategories(ctx context.Context, categories []string) ([]model.Recipe, error) {
	return m.recipes(m.Called(ctx, categories))
}

// RecipesByIngredientNames mocks the RecipesByIngredientNames method
func (m *MockRecipeService) RecipesByIngredientNames(ctx context.Context, names []string) ([]model.Recipe, error) {
	return m.recipes(m.Called(ctx, names))
}

// ExactIngredients mocks the ExactIngredients method
func (m *MockRecipeService) ExactIngredients(ctx context.Context, available []string, filters *model.RecipeFilters) ([]matching.MatchResult, error) {
	return m.matches(m.Called(ctx, available, filters))
}

// PercentageMatch mocks the PercentageMatch method
func (m *MockRecipeService) PercentageMatch(ctx context.Context, available []string, minPercentage int, filters *model.RecipeFilters) ([]matching.MatchResult, error) {
	return m.matches(m.Called(ctx, available, minPercentage, filters))
}

// SmartMatch mocks the SmartMatch method
func (m *MockRecipeService) SmartMatch(ctx context.Context, available []string, minPercentage int, filters *model.RecipeFilters) ([]matching.MatchResult, error) {
	return m.matches(m.Called(ctx, available, minPercentage, filters))
}

// TextSearch mocks the TextSearch method
func (m *MockRecipeService) TextSearch(ctx context.Context, terms []string, filters *model.RecipeFilters) ([]store.ScoredRecipe, error) {
	args := m.Called(ctx, terms, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.ScoredRecipe), args.Error(1)
}

// QuickSuggestions mocks the QuickSuggestions method
func (m *MockRecipeService) QuickSuggestions(ctx context.Context, available []string, limit int) ([]matching.MatchResult, error) {
	return m.matches(m.Called(ctx, available, limit))
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeService) CreateRecipe(ctx context.Context, owner uuid.UUID, recipe *model.Recipe) (*model.Recipe, error) {
	return m.recipe(m.Called(ctx, owner, recipe))
}

// UpdateRecipe mocks the UpdateRecipe method
func (m *MockRecipeService) UpdateRecipe(ctx context.Context, owner uuid.UUID, id uint, recipe *model.Recipe) (*model.Recipe, error) {
	return m.recipe(m.Called(ctx, owner, id, recipe))
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, owner uuid.UUID, id uint) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}
