package types

import "github.com/pageza/pantry-finder/backend/internal/model"

// RecipeRequest represents the request body for creating or replacing a recipe
type RecipeRequest struct {
	Name            string                `json:"name" binding:"required,max=255"`
	ServingSize     int                   `json:"serving_size" binding:"min=0"`
	Description     string                `json:"description"`
	Ingredients     []string              `json:"ingredients" binding:"required,min=1,dive,required"`
	Procedure       string                `json:"procedure"`
	EstimatedTime   string                `json:"estimated_time" binding:"max=64"`
	Calories        string                `json:"calories" binding:"max=64"`
	NutritionalInfo model.NutritionalInfo `json:"nutritional_info"`
	Vegan           bool                  `json:"vegan"`
	Categories      []string              `json:"categories" binding:"dive,required"`
}

// ToRecipe converts the request into an unsaved recipe
func (r *RecipeRequest) ToRecipe() *model.Recipe {
	categories := r.Categories
	if categories == nil {
		categories = []string{}
	}
	return &model.Recipe{
		Name:            r.Name,
		ServingSize:     r.ServingSize,
		Description:     r.Description,
		Ingredients:     model.JSONBStringArray(r.Ingredients),
		Procedure:       r.Procedure,
		EstimatedTime:   r.EstimatedTime,
		Calories:        r.Calories,
		NutritionalInfo: r.NutritionalInfo,
		Vegan:           r.Vegan,
		Categories:      model.JSONBStringArray(categories),
	}
}

// CategoriesRequest searches recipes sharing any of the categories
type CategoriesRequest struct {
	Categories []string `json:"categories" binding:"required"`
}

// IngredientNamesRequest searches recipes mentioning every ingredient name
type IngredientNamesRequest struct {
	IngredientNames []string `json:"ingredientNames" binding:"required"`
}

// AvailableIngredientsRequest is the body shared by exact and text searches
type AvailableIngredientsRequest struct {
	AvailableIngredients []string             `json:"availableIngredients" binding:"required"`
	Filters              *model.RecipeFilters `json:"filters"`
}

// MatchRequest is the body of percentage and smart searches
type MatchRequest struct {
	AvailableIngredients []string             `json:"availableIngredients" binding:"required"`
	MinMatchPercentage   *int                 `json:"minMatchPercentage" binding:"required,min=0,max=100"`
	Filters              *model.RecipeFilters `json:"filters"`
}

// SuggestionsRequest is the body of quick suggestions
type SuggestionsRequest struct {
	AvailableIngredients []string `json:"availableIngredients" binding:"required"`
	Limit                *int     `json:"limit" binding:"omitempty,min=1,max=100"`
}
