package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/pantry-finder/backend/internal/matching"
	"github.com/pageza/pantry-finder/backend/internal/model"
	"github.com/pageza/pantry-finder/backend/internal/store"
	"github.com/pageza/pantry-finder/backend/internal/types"
)

// IAuthService defines the interface for token operations
type IAuthService interface {
	GenerateToken(userID uuid.UUID, username string, ttl time.Duration) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, filters *model.RecipeFilters) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*model.Recipe, error)
	RecipesByCategories(ctx context.Context, categories []string) ([]model.Recipe, error)
	RecipesByIngredientNames(ctx context.Context, names []string) ([]model.Recipe, error)
	ExactIngredients(ctx context.Context, available []string, filters *model.RecipeFilters) ([]matching.MatchResult, error)
	PercentageMatch(ctx context.Context, available []string, minPercentage int, filters *model.RecipeFilters) ([]matching.MatchResult, error)
	SmartMatch(ctx context.Context, available []string, minPercentage int, filters *model.RecipeFilters) ([]matching.MatchResult, error)
	TextSearch(ctx context.Context, terms []string, filters *model.RecipeFilters) ([]store.ScoredRecipe, error)
	QuickSuggestions(ctx context.Context, available []string, limit int) ([]matching.MatchResult, error)
	CreateRecipe(ctx context.Context, owner uuid.UUID, recipe *model.Recipe) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, owner uuid.UUID, id uint, recipe *model.Recipe) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, owner uuid.UUID, id uint) error
}

var (
	_ IAuthService   = (*AuthService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
)
