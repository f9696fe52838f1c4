package inventory

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// Ledger is the narrow surface the order transaction uses to mutate
	// stock inside its own database transaction. Reserve and Restore are
	// pure deltas: Reserve(x) followed by Restore(x) is the identity.
	Ledger interface {
		Reserve(tx *gorm.DB, ingredientID uuid.UUID, amount float64, unit string) error
		Restore(tx *gorm.DB, ingredientID uuid.UUID, amount float64) error
	}

	InventoryRepository interface {
		Ledger

		AddOrMergeStock(ctx context.Context, name, unit string, quantity float64) (*entities.Ingredient, bool, error)
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		GetLowStock(ctx context.Context, threshold float64) ([]*entities.Ingredient, error)
		SetQuantity(ctx context.Context, id string, quantity float64) error
		DeleteIngredient(ctx context.Context, id string) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// AddOrMergeStock inserts the ingredient, or adds the quantity onto the
// existing row when the normalized name already exists. Manual creation and
// CSV import both go through here so merge behavior cannot diverge.
func (r *inventoryRepository) AddOrMergeStock(ctx context.Context, name, unit string, quantity float64) (*entities.Ingredient, bool, error) {
	var ingredient entities.Ingredient
	merged := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		normalized := entities.NormalizeIngredientName(name)

		err := lockForUpdate(tx).Where("normalized_name = ?", normalized).First(&ingredient).Error
		if err == nil {
			merged = true
			ingredient.Quantity += quantity
			return tx.Model(&entities.Ingredient{}).
				Where("id = ?", ingredient.ID).
				Update("quantity", gorm.Expr("quantity + ?", quantity)).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		ingredient = entities.Ingredient{
			ID:             uuid.New(),
			Name:           name,
			NormalizedName: normalized,
			Unit:           unit,
			Quantity:       quantity,
		}
		return tx.Create(&ingredient).Error
	})
	if err != nil {
		return nil, false, err
	}

	return &ingredient, merged, nil
}

func (r *inventoryRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *inventoryRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	normalized := entities.NormalizeIngredientName(name)
	if err := r.db.WithContext(ctx).Where("normalized_name = ?", normalized).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *inventoryRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("name asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *inventoryRepository) GetLowStock(ctx context.Context, threshold float64) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Order("quantity asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *inventoryRepository) SetQuantity(ctx context.Context, id string, quantity float64) error {
	result := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteIngredient refuses to remove a row any recipe still references.
func (r *inventoryRepository) DeleteIngredient(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var references int64
		if err := tx.Model(&entities.RecipeLine{}).
			Where("ingredient_id = ?", id).
			Count(&references).Error; err != nil {
			return err
		}
		if references > 0 {
			return domain.ErrIngredientInUse
		}

		result := tx.Delete(&entities.Ingredient{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Reserve decrements only when the unit matches and the quantity suffices;
// otherwise the row is untouched and the shortfall is reported.
func (r *inventoryRepository) Reserve(tx *gorm.DB, ingredientID uuid.UUID, amount float64, unit string) error {
	var ingredient entities.Ingredient
	if err := lockForUpdate(tx).Where("id = ?", ingredientID).First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if unit != "" && ingredient.Unit != unit {
		return domain.ErrUnitMismatch
	}

	if ingredient.Quantity < amount {
		return &domain.StockShortageError{Shortages: []domain.StockShortage{{
			IngredientID: ingredient.ID.String(),
			Name:         ingredient.Name,
			Needed:       amount,
			Available:    ingredient.Quantity,
		}}}
	}

	return tx.Model(&entities.Ingredient{}).
		Where("id = ?", ingredientID).
		Update("quantity", gorm.Expr("quantity - ?", amount)).Error
}

// Restore always succeeds for an existing ingredient.
func (r *inventoryRepository) Restore(tx *gorm.DB, ingredientID uuid.UUID, amount float64) error {
	result := tx.Model(&entities.Ingredient{}).
		Where("id = ?", ingredientID).
		Update("quantity", gorm.Expr("quantity + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

// lockForUpdate takes a row lock on backends that support it. SQLite has no
// FOR UPDATE; its writer lock covers the transaction instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
