package domain

import (
	"errors"
)

var (
	MessageSuccessAddMenuItem    = "menu item added successfully"
	MessageSuccessUpdateMenuItem = "menu item updated successfully"
	MessageSuccessDeleteMenuItem = "menu item deleted successfully"
	MessageSuccessGetMenuItems   = "menu items retrieved successfully"

	MessageFailedAddMenuItem    = "failed to add menu item"
	MessageFailedUpdateMenuItem = "failed to update menu item"
	MessageFailedDeleteMenuItem = "failed to delete menu item"
	MessageFailedGetMenuItems   = "failed to retrieve menu items"

	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrMenuItemAlreadyExists = errors.New("menu item already exists")
	ErrInvalidPrice          = errors.New("price must not be negative")
	ErrEmptyRecipe           = errors.New("recipe must have at least one ingredient")
	ErrDuplicateRecipeLine   = errors.New("recipe references the same ingredient twice")
	ErrInvalidRecipeQuantity = errors.New("recipe quantity must be positive")
	// ErrMenuItemInUse blocks deletion while committed orders still carry
	// lines for the item.
	ErrMenuItemInUse = errors.New("menu item is referenced by orders")
)

type (
	RecipeLineRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"omitempty,oneof=unit kg l"`
	}

	AddMenuItemRequest struct {
		Name        string              `json:"name" validate:"required"`
		Description string              `json:"description" validate:"omitempty"`
		Price       float64             `json:"price" validate:"min=0"`
		Recipe      []RecipeLineRequest `json:"recipe" validate:"required,min=1,dive"`
	}

	UpdateMenuItemRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		Description string  `json:"description" validate:"omitempty"`
		Price       float64 `json:"price" validate:"omitempty,min=0"`
	}

	RecipeLineResponse struct {
		IngredientID string  `json:"ingredient_id"`
		Ingredient   string  `json:"ingredient"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit,omitempty"`
	}

	MenuItemResponse struct {
		ID          string               `json:"id"`
		Name        string               `json:"name"`
		Description string               `json:"description"`
		Price       float64              `json:"price"`
		Available   bool                 `json:"available"`
		Recipe      []RecipeLineResponse `json:"recipe"`
		Shortages   []StockShortage      `json:"shortages,omitempty"`
	}
)
