package customer

import (
	"Resto-Manager/domain"
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
		&entities.Order{},
		&entities.OrderItem{},
	))
	return db
}

func TestRegisterCustomer_NormalizesNameAndEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(NewCustomerRepository(db))

	res, err := service.RegisterCustomer(context.Background(), domain.RegisterCustomerRequest{
		Email: " Ana.Soto@Example.COM ",
		Name:  "ana soto",
		Age:   30,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana.soto@example.com", res.Email)
	assert.Equal(t, "Ana Soto", res.Name)
}

func TestRegisterCustomer_RejectsUnderage(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(NewCustomerRepository(db))

	_, err := service.RegisterCustomer(context.Background(), domain.RegisterCustomerRequest{
		Email: "kid@example.com",
		Name:  "Kid",
		Age:   17,
	})
	assert.ErrorIs(t, err, domain.ErrCustomerUnderage)
}

func TestRegisterCustomer_EmailIsUnique(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(NewCustomerRepository(db))
	ctx := context.Background()

	_, err := service.RegisterCustomer(ctx, domain.RegisterCustomerRequest{
		Email: "ana@example.com", Name: "Ana", Age: 30,
	})
	require.NoError(t, err)

	// Same address with different casing is the same customer.
	_, err = service.RegisterCustomer(ctx, domain.RegisterCustomerRequest{
		Email: "ANA@example.com", Name: "Ana Again", Age: 31,
	})
	assert.ErrorIs(t, err, domain.ErrCustomerAlreadyExists)
}

func TestUpdateCustomer_KeepsEmailStable(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(NewCustomerRepository(db))
	ctx := context.Background()

	_, err := service.RegisterCustomer(ctx, domain.RegisterCustomerRequest{
		Email: "ana@example.com", Name: "Ana", Age: 30,
	})
	require.NoError(t, err)

	require.NoError(t, service.UpdateCustomer(ctx, "ana@example.com", domain.UpdateCustomerRequest{
		Name: "ana maria soto", Age: 31,
	}))

	res, err := service.GetCustomerByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria Soto", res.Name)
	assert.Equal(t, 31, res.Age)

	err = service.UpdateCustomer(ctx, "ana@example.com", domain.UpdateCustomerRequest{Age: 15})
	assert.ErrorIs(t, err, domain.ErrCustomerUnderage)
}

func TestDeleteCustomer_BlockedByDependentOrders(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(NewCustomerRepository(db))
	ctx := context.Background()

	_, err := service.RegisterCustomer(ctx, domain.RegisterCustomerRequest{
		Email: "ana@example.com", Name: "Ana", Age: 30,
	})
	require.NoError(t, err)

	require.NoError(t, db.Create(&entities.Order{
		ID:            uuid.New(),
		CustomerEmail: "ana@example.com",
		OrderDate:     time.Now(),
		Status:        entities.OrderStatusCommitted,
	}).Error)

	err = service.DeleteCustomer(ctx, "ana@example.com")
	assert.ErrorIs(t, err, domain.ErrCustomerHasOrders)

	// Deletable once the order history is gone.
	require.NoError(t, db.Where("customer_email = ?", "ana@example.com").Delete(&entities.Order{}).Error)
	assert.NoError(t, service.DeleteCustomer(ctx, "ana@example.com"))

	_, err = service.GetCustomerByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewCustomerService(NewCustomerRepository(db))

	err := service.DeleteCustomer(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
