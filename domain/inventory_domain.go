package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessImportStock      = "stock import processed"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedImportStock      = "failed to process stock import"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrInvalidUnit        = errors.New("invalid unit of measure")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrUnitMismatch       = errors.New("ingredient unit does not match requirement")
	// ErrIngredientInUse blocks deletion while a recipe references the row.
	ErrIngredientInUse = errors.New("ingredient is referenced by a recipe")

	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockShortage identifies one unsatisfiable requirement.
type StockShortage struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Needed       float64 `json:"needed"`
	Available    float64 `json:"available"`
}

// StockShortageError carries every shortfall found so the caller can report
// all missing ingredients, not only the first one.
type StockShortageError struct {
	Shortages []StockShortage
}

func (e *StockShortageError) Error() string {
	names := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		names = append(names, fmt.Sprintf("%s (need %.2f, have %.2f)", s.Name, s.Needed, s.Available))
	}
	return "insufficient stock: " + strings.Join(names, ", ")
}

func (e *StockShortageError) Unwrap() error {
	return ErrInsufficientStock
}

type (
	AddIngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Unit     string  `json:"unit" validate:"required,oneof=unit kg l"`
		Quantity float64 `json:"quantity" validate:"min=0"`
	}

	UpdateIngredientQuantityRequest struct {
		Quantity float64 `json:"quantity" validate:"min=0"`
	}

	IngredientResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Unit     string  `json:"unit"`
		Quantity float64 `json:"quantity"`
		LowStock bool    `json:"low_stock"`
	}

	ImportRowError struct {
		Line   int    `json:"line"`
		Reason string `json:"reason"`
	}

	ImportStockResponse struct {
		Imported int              `json:"imported"`
		Merged   int              `json:"merged"`
		Rejected []ImportRowError `json:"rejected,omitempty"`
	}
)
