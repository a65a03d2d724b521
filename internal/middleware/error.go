package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-finder/backend/internal/logging"
	"github.com/pageza/pantry-finder/backend/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors onto HTTP statuses. Anything unknown is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRecipeNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders the last error attached with c.Error as a JSON body.
// Store failures keep their "recipe query failed: op: cause" message; any
// other unknown error and any panic become a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Ctx(c.Request.Context()).Error().Interface("panic", rec).Msg("handler panicked")
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		status := statusFor(last.Err)
		if last.IsType(gin.ErrorTypeBind) {
			status = http.StatusBadRequest
		}
		msg := last.Err.Error()
		if status == http.StatusInternalServerError && !errors.Is(last.Err, service.ErrQueryFailed) {
			msg = "Internal Server Error"
		}
		c.JSON(status, ErrorResponse{Error: msg})
	}
}
