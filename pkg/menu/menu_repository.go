package menu

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		AddMenuItem(ctx context.Context, item *entities.MenuItem) error
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		GetMenuItemByName(ctx context.Context, name string) (*entities.MenuItem, error)
		GetMenuItems(ctx context.Context) ([]*entities.MenuItem, error)
		UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error
		DeleteMenuItem(ctx context.Context, id string) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// AddMenuItem writes the item and all of its recipe lines in one
// transaction, so a bad line never leaves a half-created item behind.
func (r *menuRepository) AddMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := item.Recipe
		item.Recipe = nil
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		item.Recipe = recipe

		for _, line := range recipe {
			line.MenuItemID = item.ID
			if err := tx.Create(line).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Recipe.Ingredient").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetMenuItemByName(ctx context.Context, name string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Recipe.Ingredient").
		Where("name = ?", name).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetMenuItems(ctx context.Context) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Recipe.Ingredient").
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
		}).Error
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var references int64
		if err := tx.Model(&entities.OrderItem{}).
			Where("menu_item_id = ?", id).
			Count(&references).Error; err != nil {
			return err
		}
		if references > 0 {
			return domain.ErrMenuItemInUse
		}

		if err := tx.Where("menu_item_id = ?", id).Delete(&entities.RecipeLine{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entities.MenuItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
