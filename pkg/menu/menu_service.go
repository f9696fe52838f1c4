package menu

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"Resto-Manager/pkg/inventory"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error)
		GetMenuItems(ctx context.Context) ([]domain.MenuItemResponse, error)
		GetMenuItemByID(ctx context.Context, id string) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error
		DeleteMenuItem(ctx context.Context, id string) error
		IsAvailable(ctx context.Context, id string) (bool, error)
	}

	menuService struct {
		menuRepository      MenuRepository
		inventoryRepository inventory.InventoryRepository
	}
)

func NewMenuService(menuRepository MenuRepository, inventoryRepository inventory.InventoryRepository) MenuService {
	return &menuService{
		menuRepository:      menuRepository,
		inventoryRepository: inventoryRepository,
	}
}

// AddMenuItem validates the whole recipe before anything is written: every
// referenced ingredient must exist and every quantity must be positive, or
// the creation fails as a unit.
func (s *menuService) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
	}
	if req.Price < 0 {
		return domain.MenuItemResponse{}, domain.ErrInvalidPrice
	}
	if len(req.Recipe) == 0 {
		return domain.MenuItemResponse{}, domain.ErrEmptyRecipe
	}

	if _, err := s.menuRepository.GetMenuItemByName(ctx, strings.TrimSpace(req.Name)); err == nil {
		return domain.MenuItemResponse{}, domain.ErrMenuItemAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MenuItemResponse{}, err
	}

	seen := make(map[string]bool, len(req.Recipe))
	recipe := make([]*entities.RecipeLine, 0, len(req.Recipe))
	for _, line := range req.Recipe {
		if line.Quantity <= 0 {
			return domain.MenuItemResponse{}, domain.ErrInvalidRecipeQuantity
		}
		if seen[line.IngredientID] {
			return domain.MenuItemResponse{}, domain.ErrDuplicateRecipeLine
		}
		seen[line.IngredientID] = true

		ingredient, err := s.inventoryRepository.GetIngredientByID(ctx, line.IngredientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.MenuItemResponse{}, domain.ErrIngredientNotFound
			}
			return domain.MenuItemResponse{}, err
		}

		if line.Unit != "" && ingredient.Unit != line.Unit {
			return domain.MenuItemResponse{}, domain.ErrUnitMismatch
		}

		recipe = append(recipe, &entities.RecipeLine{
			IngredientID: ingredient.ID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
			Ingredient:   ingredient,
		})
	}

	item := &entities.MenuItem{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Recipe:      recipe,
	}

	if err := s.menuRepository.AddMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toMenuItemResponse(item), nil
}

func (s *menuService) GetMenuItems(ctx context.Context) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	return response, nil
}

func (s *menuService) GetMenuItemByID(ctx context.Context, id string) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price > 0 {
		item.Price = req.Price
	}

	return s.menuRepository.UpdateMenuItem(ctx, item)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.menuRepository.DeleteMenuItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}
	return nil
}

// IsAvailable is the boolean gate: it stops at the first shortfall.
func (s *menuService) IsAvailable(ctx context.Context, id string) (bool, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrMenuItemNotFound
		}
		return false, err
	}

	for _, line := range item.Recipe {
		if !lineSatisfied(line) {
			return false, nil
		}
	}
	return true, nil
}

// Shortages evaluates every recipe line even after the first shortfall so
// callers can report all missing ingredients at once.
func Shortages(item *entities.MenuItem) []domain.StockShortage {
	var shortages []domain.StockShortage
	for _, line := range item.Recipe {
		if lineSatisfied(line) {
			continue
		}

		shortage := domain.StockShortage{
			IngredientID: line.IngredientID.String(),
			Needed:       line.Quantity,
		}
		if line.Ingredient != nil {
			shortage.Name = line.Ingredient.Name
			shortage.Available = line.Ingredient.Quantity
		}
		shortages = append(shortages, shortage)
	}
	return shortages
}

func lineSatisfied(line *entities.RecipeLine) bool {
	if line.Ingredient == nil {
		return false
	}
	if line.Unit != "" && line.Ingredient.Unit != line.Unit {
		return false
	}
	return line.Ingredient.Quantity >= line.Quantity
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	recipe := make([]domain.RecipeLineResponse, 0, len(item.Recipe))
	for _, line := range item.Recipe {
		res := domain.RecipeLineResponse{
			IngredientID: line.IngredientID.String(),
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
		if line.Ingredient != nil {
			res.Ingredient = line.Ingredient.Name
		}
		recipe = append(recipe, res)
	}

	shortages := Shortages(item)

	return domain.MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Available:   len(shortages) == 0,
		Recipe:      recipe,
		Shortages:   shortages,
	}
}
