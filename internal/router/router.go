package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/pantry-finder/backend/internal/api"
	"github.com/pageza/pantry-finder/backend/internal/middleware"
	"github.com/pageza/pantry-finder/backend/internal/service"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Recipes service.IRecipeService
	Auth    service.IAuthService
	// Redis enables rate limiting when non-nil.
	Redis              *redis.Client
	RateLimitPerMinute int
	CORSOrigins        []string
	// Ping backs the readiness endpoint when set.
	Ping func(ctx context.Context) error
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.CORS(deps.CORSOrigins),
		middleware.ErrorHandler(),
	)

	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)
	if deps.Ping != nil {
		router.GET("/ready", api.ReadinessCheck(deps.Ping))
	}

	var searchLimiter, writeLimiter *middleware.RateLimiter
	if deps.Redis != nil && deps.RateLimitPerMinute > 0 {
		searchLimiter = middleware.NewSearchRateLimiter(deps.Redis, deps.RateLimitPerMinute)
		writeLimiter = middleware.NewRecipeModificationRateLimiter(deps.Redis)
	}

	v1 := router.Group("/api/v1")
	api.NewRecipeHandler(deps.Recipes, deps.Auth, writeLimiter).RegisterRoutes(v1)
	api.NewSearchHandler(deps.Recipes, searchLimiter).RegisterRoutes(v1)
	if searchLimiter != nil {
		api.RegisterRateLimitRoutes(v1, searchLimiter)
	}

	return router
}
