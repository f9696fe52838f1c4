package entities

import (
	"strings"

	"github.com/google/uuid"
)

// Units recognized by the stock ledger.
const (
	UnitPiece = "unit"
	UnitKilo  = "kg"
	UnitLiter = "l"
)

type Ingredient struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `gorm:"uniqueIndex" json:"-"`
	Unit           string    `json:"unit"` // "unit", "kg", "l"
	Quantity       float64   `json:"quantity"`

	Timestamp
}

// NormalizeIngredientName collapses case and whitespace so "Extra Virgin Oil",
// "extravirginoil" and " extra virgin  oil " resolve to the same ledger row.
func NormalizeIngredientName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

func ValidUnit(unit string) bool {
	switch unit {
	case UnitPiece, UnitKilo, UnitLiter:
		return true
	}
	return false
}
