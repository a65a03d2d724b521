package store

import (
	"slices"
	"strings"
	"unicode"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pageza/pantry-finder/backend/internal/model"
)

// Predicate is a structured condition over the recipe catalog. Set fields
// are ANDed together; the zero value matches every recipe.
type Predicate struct {
	// Vegan requires recipe.Vegan to equal the pointed-to value.
	Vegan *bool
	// AnyCategories requires at least one shared category (any-of).
	AnyCategories []string
	// IngredientTerms requires every term to occur in the ingredient text,
	// case-insensitively.
	IngredientTerms []string
}

// BuildPredicate translates optional query filters into a Predicate. An empty
// category list is the same as no category filter.
func BuildPredicate(filters *model.RecipeFilters) Predicate {
	if filters == nil {
		return Predicate{}
	}
	return Predicate{
		Vegan:         filters.Vegan,
		AnyCategories: nonBlank(filters.Categories),
	}
}

// CategoriesPredicate matches recipes sharing at least one category.
func CategoriesPredicate(categories []string) Predicate {
	return Predicate{AnyCategories: nonBlank(categories)}
}

// IngredientNamesPredicate matches recipes whose ingredient text contains
// every name.
func IngredientNamesPredicate(names []string) Predicate {
	return Predicate{IngredientTerms: nonBlank(names)}
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Matches evaluates the predicate in memory with the same semantics the
// store applies in SQL.
func (p Predicate) Matches(r *model.Recipe) bool {
	if p.Vegan != nil && r.Vegan != *p.Vegan {
		return false
	}
	if len(p.AnyCategories) > 0 && !slices.ContainsFunc(r.Categories, func(c string) bool {
		return slices.Contains(p.AnyCategories, c)
	}) {
		return false
	}
	if len(p.IngredientTerms) > 0 {
		text := strings.ToLower(strings.Join(r.Ingredients, "\n"))
		for _, term := range p.IngredientTerms {
			if !strings.Contains(text, strings.ToLower(term)) {
				return false
			}
		}
	}
	return true
}

// likePattern escapes LIKE metacharacters so user input is matched literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

// sqlitePattern is likePattern for SQLite, whose LOWER folds ASCII only.
// Cased non-ASCII letters become the one-character wildcard, so rows may
// over-match in SQL and callers recheck them with Matches.
func sqlitePattern(term string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII && (unicode.ToUpper(r) != r || unicode.ToLower(r) != r) {
			return '_'
		}
		return r
	}, likePattern(term))
}

// scope renders the predicate as parameterized conditions for the dialect.
func (p Predicate) scope(dialect string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Vegan != nil {
			db = db.Where("vegan = ?", *p.Vegan)
		}

		if len(p.AnyCategories) > 0 {
			if dialect == "postgres" {
				db = db.Where("EXISTS (SELECT 1 FROM jsonb_array_elements_text(recipes.categories) AS c(value) WHERE c.value = ANY(?))",
					pq.Array(p.AnyCategories))
			} else {
				db = db.Where("EXISTS (SELECT 1 FROM json_each(recipes.categories) WHERE json_each.value IN ?)",
					p.AnyCategories)
			}
		}

		for _, term := range p.IngredientTerms {
			if dialect == "postgres" {
				db = db.Where("recipes.ingredients::text ILIKE ?", likePattern(term))
			} else {
				db = db.Where(`LOWER(recipes.ingredients) LIKE ? ESCAPE '\'`, sqlitePattern(term))
			}
		}
		return db
	}
}
