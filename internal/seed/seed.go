// Package seed loads catalog recipes from a JSON array stored locally or in S3.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/pantry-finder/backend/config"
	"github.com/pageza/pantry-finder/backend/internal/model"
	"github.com/pageza/pantry-finder/backend/internal/types"
)

// Owner is the account seeded recipes belong to unless one is given.
var Owner = uuid.NewSHA1(uuid.NameSpaceURL, []byte("pantry-finder:seed"))

// Fetcher reads an object from a bucket.
type Fetcher func(ctx context.Context, bucket, key string) ([]byte, error)

// S3Fetcher fetches with the default AWS credential chain.
func S3Fetcher(ctx context.Context, bucket, key string) ([]byte, error) {
	s3cfg, err := config.NewS3Config(ctx, bucket)
	if err != nil {
		return nil, err
	}
	return s3cfg.FetchObject(ctx, key)
}

// Read returns the raw bytes behind source, a file path or s3://bucket/key.
func Read(ctx context.Context, source string, fetch Fetcher) ([]byte, error) {
	if bucket, key, ok := config.ParseS3URL(source); ok {
		return fetch(ctx, bucket, key)
	}
	return os.ReadFile(source)
}

// Decode parses a JSON array of recipe requests and validates each with the
// same rules as the HTTP API.
func Decode(data []byte, owner uuid.UUID) ([]model.Recipe, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var reqs []types.RecipeRequest
	if err := dec.Decode(&reqs); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}

	recipes := make([]model.Recipe, 0, len(reqs))
	for i := range reqs {
		if err := binding.Validator.ValidateStruct(&reqs[i]); err != nil {
			return nil, fmt.Errorf("recipe %d (%q): %w", i, reqs[i].Name, err)
		}
		r := reqs[i].ToRecipe()
		r.OwnerID = owner
		recipes = append(recipes, *r)
	}
	return recipes, nil
}

// Insert writes recipes in one transaction, batchSize rows per statement.
func Insert(ctx context.Context, db *gorm.DB, recipes []model.Recipe, batchSize int) error {
	if batchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", batchSize)
	}
	if len(recipes) == 0 {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&recipes, batchSize).Error
	})
}
