package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-finder/backend/internal/middleware"
	"github.com/pageza/pantry-finder/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Pantry Finder API is running",
		"version": "v1.0.0",
	})
}

// ReadinessCheck reports 503 while ping fails.
func ReadinessCheck(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// RegisterRateLimitRoutes exposes the caller's remaining search budget.
func RegisterRateLimitRoutes(router *gin.RouterGroup, searchLimiter *middleware.RateLimiter) {
	router.GET("/rate-limits/search", func(c *gin.Context) {
		remaining, resetTime, err := searchLimiter.GetRemainingRequests(c.Request.Context(), middleware.CallerKey(c))
		if err != nil {
			_ = c.Error(fmt.Errorf("rate limit status: %w", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
		})
	})
}

// bindJSON decodes the body into req, recording a bind error on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}

var errMissingUser = errors.New("user not authenticated")

func recipeID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: recipe id %q", service.ErrInvalidQuery, c.Param("id"))
	}
	return uint(id), nil
}
