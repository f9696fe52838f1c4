package order

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyOrderRepository fails the transactional operations a configured number
// of times before delegating to the real repository.
type flakyOrderRepository struct {
	OrderRepository
	err            error
	createFailures int
	deleteFailures int
	createCalls    int
	deleteCalls    int
}

func (r *flakyOrderRepository) CreateOrderWithReservation(ctx context.Context, order *entities.Order, requirements []domain.IngredientRequirement) error {
	r.createCalls++
	if r.createCalls <= r.createFailures {
		return r.err
	}
	return r.OrderRepository.CreateOrderWithReservation(ctx, order, requirements)
}

func (r *flakyOrderRepository) DeleteOrderWithRestock(ctx context.Context, orderID uuid.UUID, requirements []domain.IngredientRequirement) error {
	r.deleteCalls++
	if r.deleteCalls <= r.deleteFailures {
		return r.err
	}
	return r.OrderRepository.DeleteOrderWithRestock(ctx, orderID, requirements)
}

// contentionFixture rebuilds the service on top of the flaky repository so the
// retry policy is exercised end to end through Checkout and CancelOrder.
func contentionFixture(t *testing.T, flaky *flakyOrderRepository) (*fixture, string) {
	f := setupFixture(t)

	f.seedCustomer(t, "ana@example.com")
	flour := f.seedIngredient(t, "Flour", entities.UnitKilo, 10)
	breadID := f.seedMenuItem(t, "Bread", 3.5, []domain.RecipeLineRequest{
		{IngredientID: flour.ID.String(), Quantity: 3},
	})

	real := f.orderService.(*orderService)
	flaky.OrderRepository = real.orderRepository
	real.orderRepository = flaky

	return f, breadID
}

func TestCheckout_RecoversFromTransientContention(t *testing.T) {
	flaky := &flakyOrderRepository{err: errors.New("database is locked"), createFailures: 2}
	f, breadID := contentionFixture(t, flaky)

	flour, err := f.inventoryRepo.GetIngredientByName(context.Background(), "Flour")
	require.NoError(t, err)

	res, err := f.orderService.Checkout(context.Background(), domain.CheckoutOrderRequest{
		CustomerEmail: "ana@example.com",
		Cart:          []domain.CartLineRequest{{MenuItemID: breadID, Count: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCommitted, res.Status)

	// Two locked attempts plus the one that lands.
	assert.Equal(t, 3, flaky.createCalls)

	// The failed attempts never touched stock; only one reservation applied.
	assert.Equal(t, 7.0, f.stockOf(t, flour.ID.String()))
}

func TestCheckout_ContentionRetriesAreBounded(t *testing.T) {
	flaky := &flakyOrderRepository{err: errors.New("database is locked"), createFailures: 10}
	f, breadID := contentionFixture(t, flaky)

	flour, err := f.inventoryRepo.GetIngredientByName(context.Background(), "Flour")
	require.NoError(t, err)

	_, err = f.orderService.Checkout(context.Background(), domain.CheckoutOrderRequest{
		CustomerEmail: "ana@example.com",
		Cart:          []domain.CartLineRequest{{MenuItemID: breadID, Count: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageContention)

	assert.Equal(t, 3, flaky.createCalls)
	assert.Equal(t, 10.0, f.stockOf(t, flour.ID.String()))
}

func TestCheckout_NonTransientErrorAbortsImmediately(t *testing.T) {
	flaky := &flakyOrderRepository{err: errors.New("constraint failed"), createFailures: 10}
	f, breadID := contentionFixture(t, flaky)

	_, err := f.orderService.Checkout(context.Background(), domain.CheckoutOrderRequest{
		CustomerEmail: "ana@example.com",
		Cart:          []domain.CartLineRequest{{MenuItemID: breadID, Count: 1}},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStorageContention)

	assert.Equal(t, 1, flaky.createCalls)
}

func TestCancelOrder_RetriesTransientContention(t *testing.T) {
	flaky := &flakyOrderRepository{err: errors.New("deadlock detected"), deleteFailures: 2}
	f, breadID := contentionFixture(t, flaky)
	ctx := context.Background()

	res, err := f.orderService.Checkout(ctx, domain.CheckoutOrderRequest{
		CustomerEmail: "ana@example.com",
		Cart:          []domain.CartLineRequest{{MenuItemID: breadID, Count: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, f.orderService.CancelOrder(ctx, res.ID))
	assert.Equal(t, 3, flaky.deleteCalls)

	flour, err := f.inventoryRepo.GetIngredientByName(ctx, "Flour")
	require.NoError(t, err)
	assert.Equal(t, 10.0, flour.Quantity)
}

func TestCancelOrder_ContentionExhaustionSurfaces(t *testing.T) {
	flaky := &flakyOrderRepository{err: errors.New("could not serialize access"), deleteFailures: 10}
	f, breadID := contentionFixture(t, flaky)
	ctx := context.Background()

	res, err := f.orderService.Checkout(ctx, domain.CheckoutOrderRequest{
		CustomerEmail: "ana@example.com",
		Cart:          []domain.CartLineRequest{{MenuItemID: breadID, Count: 1}},
	})
	require.NoError(t, err)

	err = f.orderService.CancelOrder(ctx, res.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageContention)
	assert.Equal(t, 3, flaky.deleteCalls)
}

func TestIsTransientStorageErr(t *testing.T) {
	assert.True(t, isTransientStorageErr(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isTransientStorageErr(errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")))
	assert.True(t, isTransientStorageErr(errors.New("ERROR: could not serialize access due to concurrent update")))
	assert.False(t, isTransientStorageErr(nil))
	assert.False(t, isTransientStorageErr(errors.New("UNIQUE constraint failed")))
}
