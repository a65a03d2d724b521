package config

import (
	"errors"
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded values. Every problem is reported, not
// just the first.
func ValidateConfig(cfg *Config) error {
	var errs []error
	require := func(field, value string) {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("JWT_SECRET", cfg.JWTSecret)
	require("DB_NAME", cfg.DBName)

	switch cfg.DBDriver {
	case "postgres":
		require("DB_HOST", cfg.DBHost)
		require("DB_USER", cfg.DBUser)
		require("DB_PASSWORD", cfg.DBPassword)
	case "sqlite":
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.RelevanceLimit < 1 {
		errs = append(errs, ValidationError{Field: "RELEVANCE_LIMIT", Message: "must be positive"})
	}
	if cfg.SuggestionLimit < 1 {
		errs = append(errs, ValidationError{Field: "DEFAULT_SUGGESTION_LIMIT", Message: "must be positive"})
	}
	if cfg.RateLimitPerMinute < 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_PER_MINUTE", Message: "must not be negative"})
	}

	return errors.Join(errs...)
}
