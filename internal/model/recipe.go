package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface. The array is written as text
// so sqlite keeps it usable by json_each.
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]string(a)); err != nil {
		return nil, err
	}
	return string(bytes.TrimSpace(buf.Bytes())), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported JSONB value type %T", value)
	}

	return json.Unmarshal(raw, a)
}

// NutritionalInfo is free text as entered by the recipe author ("12g").
type NutritionalInfo struct {
	Fat          string `gorm:"size:64" json:"fat"`
	Carbohydrate string `gorm:"size:64" json:"carbohydrate"`
	Protein      string `gorm:"size:64" json:"protein"`
}

// Recipe is a catalog entry. Ingredients are raw lines ("1 onion, diced");
// quantity, unit and name are only separated at query time.
type Recipe struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
	OwnerID         uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	ServingSize     int              `json:"serving_size"`
	Description     string           `gorm:"type:text" json:"description"`
	Ingredients     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Procedure       string           `gorm:"type:text" json:"procedure"`
	EstimatedTime   string           `gorm:"size:64" json:"estimated_time"`
	Calories        string           `gorm:"size:64" json:"calories"`
	NutritionalInfo NutritionalInfo  `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutritional_info"`
	Vegan           bool             `gorm:"not null;default:false;index" json:"vegan"`
	Categories      JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"categories"`
}

// RecipeFilters narrows a query. A nil field means no constraint.
type RecipeFilters struct {
	Vegan      *bool    `json:"vegan,omitempty"`
	Categories []string `json:"categories,omitempty"`
}
