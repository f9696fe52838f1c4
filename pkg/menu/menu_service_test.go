package menu

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"Resto-Manager/pkg/inventory"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Ingredient{},
		&entities.MenuItem{},
		&entities.RecipeLine{},
		&entities.Order{},
		&entities.OrderItem{},
	))
	return db
}

func seedIngredient(t *testing.T, repo inventory.InventoryRepository, name, unit string, quantity float64) *entities.Ingredient {
	ingredient, _, err := repo.AddOrMergeStock(context.Background(), name, unit, quantity)
	require.NoError(t, err)
	return ingredient
}

func TestAddMenuItem_CreatesItemWithRecipe(t *testing.T) {
	db := setupTestDB(t)
	inventoryRepo := inventory.NewInventoryRepository(db)
	service := NewMenuService(NewMenuRepository(db), inventoryRepo)
	ctx := context.Background()

	flour := seedIngredient(t, inventoryRepo, "Flour", entities.UnitKilo, 10)
	water := seedIngredient(t, inventoryRepo, "Water", entities.UnitLiter, 20)

	res, err := service.AddMenuItem(ctx, domain.AddMenuItemRequest{
		Name:  "Bread",
		Price: 3.5,
		Recipe: []domain.RecipeLineRequest{
			{IngredientID: flour.ID.String(), Quantity: 3},
			{IngredientID: water.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bread", res.Name)
	assert.True(t, res.Available)
	assert.Len(t, res.Recipe, 2)
	assert.Empty(t, res.Shortages)
}

func TestAddMenuItem_AllOrNothing(t *testing.T) {
	db := setupTestDB(t)
	inventoryRepo := inventory.NewInventoryRepository(db)
	menuRepo := NewMenuRepository(db)
	service := NewMenuService(menuRepo, inventoryRepo)
	ctx := context.Background()

	flour := seedIngredient(t, inventoryRepo, "Flour", entities.UnitKilo, 10)

	// One unknown ingredient rejects the whole item.
	_, err := service.AddMenuItem(ctx, domain.AddMenuItemRequest{
		Name:  "Cake",
		Price: 7,
		Recipe: []domain.RecipeLineRequest{
			{IngredientID: flour.ID.String(), Quantity: 1},
			{IngredientID: uuid.NewString(), Quantity: 2},
		},
	})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	items, err := menuRepo.GetMenuItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddMenuItem_RejectsInvalidRecipes(t *testing.T) {
	db := setupTestDB(t)
	inventoryRepo := inventory.NewInventoryRepository(db)
	service := NewMenuService(NewMenuRepository(db), inventoryRepo)
	ctx := context.Background()

	flour := seedIngredient(t, inventoryRepo, "Flour", entities.UnitKilo, 10)

	_, err := service.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Empty", Price: 1})
	assert.ErrorIs(t, err, domain.ErrEmptyRecipe)

	_, err = service.AddMenuItem(ctx, domain.AddMenuItemRequest{
		Name:  "Zero",
		Price: 1,
		Recipe: []domain.RecipeLineRequest{
			{IngredientID: flour.ID.String(), Quantity: 0},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRecipeQuantity)

	_, err = service.AddMenuItem(ctx, domain.AddMenuItemRequest{
		Name:  "Twice",
		Price: 1,
		Recipe: []domain.RecipeLineRequest{
			{IngredientID: flour.ID.String(), Quantity: 1},
			{IngredientID: flour.ID.String(), Quantity: 2},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateRecipeLine)
}

func TestAddMenuItem_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	inventoryRepo := inventory.NewInventoryRepository(db)
	service := NewMenuService(NewMenuRepository(db), inventoryRepo)
	ctx := context.Background()

	flour := seedIngredient(t, inventoryRepo, "Flour", entities.UnitKilo, 10)
	recipe := []domain.RecipeLineRequest{{IngredientID: flour.ID.String(), Quantity: 1}}

	_, err := service.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Bread", Price: 3, Recipe: recipe})
	require.NoError(t, err)

	_, err = service.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Bread", Price: 4, Recipe: recipe})
	assert.ErrorIs(t, err, domain.ErrMenuItemAlreadyExists)
}

func TestIsAvailable(t *testing.T) {
	db := setupTestDB(t)
	inventoryRepo := inventory.NewInventoryRepository(db)
	service := NewMenuService(NewMenuRepository(db), inventoryRepo)
	ctx := context.Background()

	flour := seedIngredient(t, inventoryRepo, "Flour", entities.UnitKilo, 2)

	res, err := service.AddMenuItem(ctx, domain.AddMenuItemRequest{
		Name:  "Bread",
		Price: 3,
		Recipe: []domain.RecipeLineRequest{
			{IngredientID: flour.ID.String(), Quantity: 3},
		},
	})
	require.NoError(t, err)

	available, err := service.IsAvailable(ctx, res.ID)
	require.NoError(t, err)
	assert.False(t, available)

	_, _, err = inventoryRepo.AddOrMergeStock(ctx, "Flour", entities.UnitKilo, 5)
	require.NoError(t, err)

	available, err = service.IsAvailable(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestGetMenuItemByID_ReportsAllShortages(t *testing.T) {
	db := setupTestDB(t)
	inventoryRepo := inventory.NewInventoryRepository(db)
	service := NewMenuService(NewMenuRepository(db), inventoryRepo)
	ctx := context.Background()

	flour := seedIngredient(t, inventoryRepo, "Flour", entities.UnitKilo, 1)
	sugar := seedIngredient(t, inventoryRepo, "Sugar", entities.UnitKilo, 0.5)

	res, err := service.AddMenuItem(ctx, domain.AddMenuItemRequest{
		Name:  "Cake",
		Price: 8,
		Recipe: []domain.RecipeLineRequest{
			{IngredientID: flour.ID.String(), Quantity: 2},
			{IngredientID: sugar.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	detail, err := service.GetMenuItemByID(ctx, res.ID)
	require.NoError(t, err)
	assert.False(t, detail.Available)
	assert.Len(t, detail.Shortages, 2)
}

func TestDeleteMenuItem_BlockedByOrderReference(t *testing.T) {
	db := setupTestDB(t)
	inventoryRepo := inventory.NewInventoryRepository(db)
	menuRepo := NewMenuRepository(db)
	service := NewMenuService(menuRepo, inventoryRepo)
	ctx := context.Background()

	flour := seedIngredient(t, inventoryRepo, "Flour", entities.UnitKilo, 10)

	res, err := service.AddMenuItem(ctx, domain.AddMenuItemRequest{
		Name:  "Bread",
		Price: 3,
		Recipe: []domain.RecipeLineRequest{
			{IngredientID: flour.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	itemID := uuid.MustParse(res.ID)
	require.NoError(t, db.Create(&entities.OrderItem{
		ID: uuid.New(), OrderID: uuid.New(), MenuItemID: itemID, Quantity: 1, PriceAtTime: 3,
	}).Error)

	err = service.DeleteMenuItem(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrMenuItemInUse)
}
