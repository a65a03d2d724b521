package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-finder/backend/internal/middleware"
	"github.com/pageza/pantry-finder/backend/internal/service"
	"github.com/pageza/pantry-finder/backend/internal/types"
)

// SearchHandler serves the ingredient matching strategies.
type SearchHandler struct {
	recipes service.IRecipeService
	limiter *middleware.RateLimiter
}

// NewSearchHandler builds the search handler. limiter may be nil.
func NewSearchHandler(recipes service.IRecipeService, limiter *middleware.RateLimiter) *SearchHandler {
	return &SearchHandler{recipes: recipes, limiter: limiter}
}

func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	search := router.Group("/search")
	if h.limiter != nil {
		search.Use(h.limiter.RateLimitMiddleware())
	}
	{
		search.POST("/categories", h.ByCategories)
		search.POST("/ingredients", h.ByIngredientNames)
		search.POST("/exact", h.Exact)
		search.POST("/match", h.Percentage)
		search.POST("/smart", h.Smart)
		search.POST("/text", h.Text)
		search.POST("/suggestions", h.Suggestions)
	}
}

// respond writes {key: value} or records err for the error middleware.
func respond(c *gin.Context, key string, value interface{}, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: value})
}

func (h *SearchHandler) ByCategories(c *gin.Context) {
	var req types.CategoriesRequest
	if !bindJSON(c, &req) {
		return
	}
	recipes, err := h.recipes.RecipesByCategories(c.Request.Context(), req.Categories)
	respond(c, "recipes", recipes, err)
}

func (h *SearchHandler) ByIngredientNames(c *gin.Context) {
	var req types.IngredientNamesRequest
	if !bindJSON(c, &req) {
		return
	}
	recipes, err := h.recipes.RecipesByIngredientNames(c.Request.Context(), req.IngredientNames)
	respond(c, "recipes", recipes, err)
}

func (h *SearchHandler) Exact(c *gin.Context) {
	var req types.AvailableIngredientsRequest
	if !bindJSON(c, &req) {
		return
	}
	results, err := h.recipes.ExactIngredients(c.Request.Context(), req.AvailableIngredients, req.Filters)
	respond(c, "results", results, err)
}

func (h *SearchHandler) Percentage(c *gin.Context) {
	var req types.MatchRequest
	if !bindJSON(c, &req) {
		return
	}
	results, err := h.recipes.PercentageMatch(c.Request.Context(), req.AvailableIngredients, *req.MinMatchPercentage, req.Filters)
	respond(c, "results", results, err)
}

func (h *SearchHandler) Smart(c *gin.Context) {
	var req types.MatchRequest
	if !bindJSON(c, &req) {
		return
	}
	results, err := h.recipes.SmartMatch(c.Request.Context(), req.AvailableIngredients, *req.MinMatchPercentage, req.Filters)
	respond(c, "results", results, err)
}

func (h *SearchHandler) Text(c *gin.Context) {
	var req types.AvailableIngredientsRequest
	if !bindJSON(c, &req) {
		return
	}
	results, err := h.recipes.TextSearch(c.Request.Context(), req.AvailableIngredients, req.Filters)
	respond(c, "results", results, err)
}

func (h *SearchHandler) Suggestions(c *gin.Context) {
	var req types.SuggestionsRequest
	if !bindJSON(c, &req) {
		return
	}
	limit := 0
	if req.Limit != nil {
		limit = *req.Limit
	}
	results, err := h.recipes.QuickSuggestions(c.Request.Context(), req.AvailableIngredients, limit)
	respond(c, "results", results, err)
}
