package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/pantry-finder/backend/internal/logging"
)

var (
	// ErrQueryFailed is the single externally visible kind for store failures.
	ErrQueryFailed = errors.New("recipe query failed")
	// ErrRecipeNotFound is returned when a recipe id does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrInvalidQuery marks malformed query parameters.
	ErrInvalidQuery = errors.New("invalid recipe query")
	// ErrForbidden is returned when a caller mutates a recipe it does not own.
	ErrForbidden = errors.New("recipe belongs to another user")
)

// queryFailed logs a store failure under its operation name and re-raises it
// as ErrQueryFailed carrying the underlying message.
func queryFailed(ctx context.Context, op string, err error) error {
	logging.Ctx(ctx).Error().Err(err).Str("operation", op).Msg("store query failed")
	return fmt.Errorf("%w: %s: %v", ErrQueryFailed, op, err)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
