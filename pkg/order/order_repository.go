package order

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"Resto-Manager/pkg/inventory"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrderWithReservation(ctx context.Context, order *entities.Order, requirements []domain.IngredientRequirement) error
		DeleteOrderWithRestock(ctx context.Context, orderID uuid.UUID, requirements []domain.IngredientRequirement) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrders(ctx context.Context, customerEmail string) ([]*entities.Order, error)
	}

	orderRepository struct {
		db     *gorm.DB
		ledger inventory.Ledger
	}
)

func NewOrderRepository(db *gorm.DB, ledger inventory.Ledger) OrderRepository {
	return &orderRepository{
		db:     db,
		ledger: ledger,
	}
}

// CreateOrderWithReservation reserves the merged ingredient requirement and
// persists the order inside one database transaction. Either the stock
// decrement and the order record both land, or neither does.
func (r *orderRepository) CreateOrderWithReservation(ctx context.Context, order *entities.Order, requirements []domain.IngredientRequirement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, req := range requirements {
			if err := r.ledger.Reserve(tx, req.IngredientID, req.Quantity, req.Unit); err != nil {
				return err
			}
		}

		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		order.Items = items

		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteOrderWithRestock is the compensating path: every reserved amount is
// restored and the order removed in the same transaction, so a partial
// restore can never outlive a deleted order.
func (r *orderRepository) DeleteOrderWithRestock(ctx context.Context, orderID uuid.UUID, requirements []domain.IngredientRequirement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, req := range requirements {
			if err := r.ledger.Restore(tx, req.IngredientID, req.Quantity); err != nil {
				return err
			}
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entities.Order{}, "id = ?", orderID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.MenuItem.Recipe.Ingredient").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrders(ctx context.Context, customerEmail string) ([]*entities.Order, error) {
	var orders []*entities.Order

	query := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Order("order_date desc")

	if customerEmail != "" {
		query = query.Where("customer_email = ?", customerEmail)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
