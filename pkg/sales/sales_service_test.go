package sales

import (
	"Resto-Manager/entities"
	"context"
	"testing"
	"time"

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
		&entities.Customer{},
		&entities.MenuItem{},
		&entities.Order{},
		&entities.OrderItem{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, date time.Time, itemName string, price float64, count int) {
	item := &entities.MenuItem{ID: uuid.New(), Name: itemName + "-" + uuid.NewString()[:8], Price: price}
	require.NoError(t, db.Create(item).Error)

	order := &entities.Order{
		ID:            uuid.New(),
		CustomerEmail: "ana@example.com",
		OrderDate:     date,
		Status:        entities.OrderStatusCommitted,
		TotalAmount:   price * float64(count),
	}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&entities.OrderItem{
		ID:          uuid.New(),
		OrderID:     order.ID,
		MenuItemID:  item.ID,
		Quantity:    count,
		PriceAtTime: price,
	}).Error)
}

func TestGetSalesReport_EmptySetIsZeroReport(t *testing.T) {
	db := setupTestDB(t)
	service := NewSalesService(NewSalesRepository(db))

	report, err := service.GetSalesReport(context.Background(), "day", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalOrders)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Empty(t, report.ByPeriod)
	assert.Empty(t, report.ByMenuItem)
}

func TestTotalRevenue_SumsCommittedOrders(t *testing.T) {
	db := setupTestDB(t)
	service := NewSalesService(NewSalesRepository(db))

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, day, "Bread", 1000, 1)
	seedOrder(t, db, day, "Cake", 2000, 1)
	seedOrder(t, db, day, "Pie", 3000, 1)

	total, err := service.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6000.0, total)
}

func TestGetSalesReport_FoldsByMonth(t *testing.T) {
	db := setupTestDB(t)
	service := NewSalesService(NewSalesRepository(db))

	seedOrder(t, db, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), "Bread", 100, 2)
	seedOrder(t, db, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), "Cake", 300, 1)
	seedOrder(t, db, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), "Bread", 100, 1)

	report, err := service.GetSalesReport(context.Background(), "month", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalOrders)
	assert.Equal(t, 600.0, report.TotalRevenue)

	require.Len(t, report.ByPeriod, 2)
	assert.Equal(t, "2026-01", report.ByPeriod[0].Period)
	assert.Equal(t, 500.0, report.ByPeriod[0].Revenue)
	assert.Equal(t, 2, report.ByPeriod[0].Orders)
	assert.Equal(t, "2026-02", report.ByPeriod[1].Period)
	assert.Equal(t, 100.0, report.ByPeriod[1].Revenue)
}

func TestGetSalesReport_RanksMenuItemsByCount(t *testing.T) {
	db := setupTestDB(t)
	service := NewSalesService(NewSalesRepository(db))

	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, day, "Bread", 100, 3)
	seedOrder(t, db, day, "Cake", 300, 1)

	report, err := service.GetSalesReport(context.Background(), "day", time.Time{}, time.Time{})
	require.NoError(t, err)

	require.Len(t, report.ByMenuItem, 2)
	assert.Equal(t, 3, report.ByMenuItem[0].Count)
	assert.Equal(t, 300.0, report.ByMenuItem[0].Revenue)
	assert.Equal(t, 1, report.ByMenuItem[1].Count)
}

func TestGetSalesReport_DateRangeFilter(t *testing.T) {
	db := setupTestDB(t)
	service := NewSalesService(NewSalesRepository(db))

	seedOrder(t, db, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), "Bread", 100, 1)
	seedOrder(t, db, time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC), "Cake", 300, 1)

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	report, err := service.GetSalesReport(context.Background(), "day", from, to)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalOrders)
	assert.Equal(t, 300.0, report.TotalRevenue)
}
