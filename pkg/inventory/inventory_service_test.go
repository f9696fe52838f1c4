package inventory

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"
	"errors"
	"strings"
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
	))
	return db
}

func TestAddIngredient_MergesOnNormalizedName(t *testing.T) {
	db := setupTestDB(t)
	service := NewInventoryService(NewInventoryRepository(db))
	ctx := context.Background()

	first, err := service.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: "Extra Virgin Oil", Unit: entities.UnitLiter, Quantity: 2,
	})
	require.NoError(t, err)

	// Case and whitespace variants resolve to the same row.
	second, err := service.AddIngredient(ctx, domain.AddIngredientRequest{
		Name: " extra  virgin OIL ", Unit: entities.UnitLiter, Quantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5.0, second.Quantity)

	all, err := service.GetIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAddIngredient_RejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	service := NewInventoryService(NewInventoryRepository(db))
	ctx := context.Background()

	_, err := service.AddIngredient(ctx, domain.AddIngredientRequest{Name: "Flour", Unit: "tons", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = service.AddIngredient(ctx, domain.AddIngredientRequest{Name: "Flour", Unit: entities.UnitKilo, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestReserveAndRestore_AreInverse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()

	ingredient, _, err := repo.AddOrMergeStock(ctx, "Flour", entities.UnitKilo, 10)
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return repo.Reserve(tx, ingredient.ID, 4, entities.UnitKilo)
	})
	require.NoError(t, err)

	after, err := repo.GetIngredientByID(ctx, ingredient.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 6.0, after.Quantity)

	err = db.Transaction(func(tx *gorm.DB) error {
		return repo.Restore(tx, ingredient.ID, 4)
	})
	require.NoError(t, err)

	restored, err := repo.GetIngredientByID(ctx, ingredient.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 10.0, restored.Quantity)
}

func TestReserve_ShortageLeavesStockUntouched(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()

	ingredient, _, err := repo.AddOrMergeStock(ctx, "Sugar", entities.UnitKilo, 2)
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return repo.Reserve(tx, ingredient.ID, 5, entities.UnitKilo)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *domain.StockShortageError
	require.ErrorAs(t, err, &shortage)
	require.Len(t, shortage.Shortages, 1)
	assert.Equal(t, 5.0, shortage.Shortages[0].Needed)
	assert.Equal(t, 2.0, shortage.Shortages[0].Available)

	after, err := repo.GetIngredientByID(ctx, ingredient.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2.0, after.Quantity)
}

func TestReserve_UnitMismatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	ingredient, _, err := repo.AddOrMergeStock(context.Background(), "Milk", entities.UnitLiter, 5)
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return repo.Reserve(tx, ingredient.ID, 1, entities.UnitKilo)
	})
	assert.ErrorIs(t, err, domain.ErrUnitMismatch)
}

func TestDeleteIngredient_BlockedByRecipeReference(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	service := NewInventoryService(repo)
	ctx := context.Background()

	ingredient, _, err := repo.AddOrMergeStock(ctx, "Cheese", entities.UnitKilo, 3)
	require.NoError(t, err)

	item := &entities.MenuItem{ID: uuid.New(), Name: "Pizza", Price: 9.5}
	require.NoError(t, db.Create(item).Error)
	require.NoError(t, db.Create(&entities.RecipeLine{
		MenuItemID: item.ID, IngredientID: ingredient.ID, Quantity: 0.2,
	}).Error)

	err = service.DeleteIngredient(ctx, ingredient.ID.String())
	assert.ErrorIs(t, err, domain.ErrIngredientInUse)

	// Still deletable once the reference is gone.
	require.NoError(t, db.Where("ingredient_id = ?", ingredient.ID).Delete(&entities.RecipeLine{}).Error)
	assert.NoError(t, service.DeleteIngredient(ctx, ingredient.ID.String()))
}

func TestGetLowStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	service := NewInventoryService(repo)
	ctx := context.Background()

	_, _, err := repo.AddOrMergeStock(ctx, "Salt", entities.UnitKilo, 1)
	require.NoError(t, err)
	_, _, err = repo.AddOrMergeStock(ctx, "Rice", entities.UnitKilo, 50)
	require.NoError(t, err)

	low, err := service.GetLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Salt", low[0].Name)
	assert.True(t, low[0].LowStock)
}

func TestImportStockCSV(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	service := NewInventoryService(repo)
	ctx := context.Background()

	_, _, err := repo.AddOrMergeStock(ctx, "Flour", entities.UnitKilo, 10)
	require.NoError(t, err)

	csvData := strings.Join([]string{
		"name,unit,quantity",
		"Flour,kg,5",
		"Tomato,unit,12",
		"Broken,tons,3",
		"Oil,l,not-a-number",
		"Milk,l,4",
	}, "\n")

	res, err := service.ImportStockCSV(ctx, strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Merged)
	require.Len(t, res.Rejected, 2)
	assert.Equal(t, 4, res.Rejected[0].Line)
	assert.Equal(t, 5, res.Rejected[1].Line)

	flour, err := repo.GetIngredientByName(ctx, "flour")
	require.NoError(t, err)
	assert.Equal(t, 15.0, flour.Quantity)
}

func TestGetIngredientByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewInventoryService(NewInventoryRepository(db))

	_, err := service.GetIngredientByID(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, domain.ErrIngredientNotFound))
}
