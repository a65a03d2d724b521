package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-finder/backend/internal/middleware"
	"github.com/pageza/pantry-finder/backend/internal/model"
	"github.com/pageza/pantry-finder/backend/internal/service"
	"github.com/pageza/pantry-finder/backend/internal/types"
)

type RecipeHandler struct {
	recipes      service.IRecipeService
	auth         middleware.TokenValidator
	writeLimiter *middleware.RateLimiter
}

// NewRecipeHandler builds the catalog handler. writeLimiter may be nil.
func NewRecipeHandler(recipes service.IRecipeService, auth middleware.TokenValidator, writeLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:      recipes,
		auth:         auth,
		writeLimiter: writeLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}

	owned := recipes.Group("", middleware.AuthMiddleware(h.auth))
	if h.writeLimiter != nil {
		owned.Use(h.writeLimiter.RateLimitMiddleware())
	}
	{
		owned.POST("", h.CreateRecipe)
		owned.PUT("/:id", h.UpdateRecipe)
		owned.DELETE("/:id", h.DeleteRecipe)
	}
}

// listFilters reads ?vegan= and repeated ?category= parameters.
func listFilters(c *gin.Context) (*model.RecipeFilters, error) {
	filters := &model.RecipeFilters{Categories: c.QueryArray("category")}
	if v := c.Query("vegan"); v != "" {
		vegan, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: vegan must be true or false", service.ErrInvalidQuery)
		}
		filters.Vegan = &vegan
	}
	return filters, nil
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filters, err := listFilters(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := recipeID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: errMissingUser.Error()})
		return
	}

	var req types.RecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), userID, req.ToRecipe())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: errMissingUser.Error()})
		return
	}
	id, err := recipeID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req types.RecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), userID, id, req.ToRecipe())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: errMissingUser.Error()})
		return
	}
	id, err := recipeID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
