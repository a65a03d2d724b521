// Package store persists recipes and answers the two catalog queries the
// matching engine needs: structured filtered retrieval and text relevance
// search over ingredient text.
package store

import (
	"context"
	"errors"
	"slices"

	"gorm.io/gorm"

	"github.com/pageza/pantry-finder/backend/internal/model"
)

// ErrNotFound is returned when a recipe id does not exist.
var ErrNotFound = errors.New("recipe not found")

// ScoredRecipe is a recipe ranked by the store's text relevance function.
type ScoredRecipe struct {
	Recipe         model.Recipe `json:"recipe"`
	RelevanceScore float64      `json:"relevance_score"`
}

// RecipeStore is the persistence boundary of the recipe finder.
type RecipeStore interface {
	// FindMany returns every recipe satisfying pred, ordered by ascending id.
	FindMany(ctx context.Context, pred Predicate) ([]model.Recipe, error)
	// TextRelevanceSearch returns at most limit recipes whose ingredient text
	// matches query, most relevant first.
	TextRelevanceSearch(ctx context.Context, query string, limit int) ([]ScoredRecipe, error)
	Get(ctx context.Context, id uint) (*model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) error
	Update(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, id uint) error
}

// GormStore implements RecipeStore on postgres, or sqlite for tests and
// local runs.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore instance
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) dialect() string {
	return s.db.Dialector.Name()
}

// FindMany implements RecipeStore.
func (s *GormStore) FindMany(ctx context.Context, pred Predicate) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Scopes(pred.scope(s.dialect())).
		Order("recipes.id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	if s.dialect() == "sqlite" && len(pred.IngredientTerms) > 0 {
		recipes = slices.DeleteFunc(recipes, func(r model.Recipe) bool { return !pred.Matches(&r) })
	}
	return recipes, nil
}

// Get implements RecipeStore.
func (s *GormStore) Get(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create implements RecipeStore.
func (s *GormStore) Create(ctx context.Context, recipe *model.Recipe) error {
	return s.db.WithContext(ctx).Create(recipe).Error
}

// Update overwrites every editable column of the recipe with recipe.ID,
// zero values included.
func (s *GormStore) Update(ctx context.Context, recipe *model.Recipe) error {
	result := s.db.WithContext(ctx).
		Model(recipe).
		Select("*").
		Omit("id", "created_at", "deleted_at", "owner_id").
		Updates(recipe)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete implements RecipeStore.
func (s *GormStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
