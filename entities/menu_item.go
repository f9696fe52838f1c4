package entities

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`

	Recipe []*RecipeLine `gorm:"foreignKey:MenuItemID" json:"recipe"`
	Timestamp
}

// RecipeLine is one ingredient requirement of a menu item. Unit is an
// optional constraint: empty matches whatever unit the ingredient carries.
type RecipeLine struct {
	MenuItemID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"menu_item_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit,omitempty"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
