package sales

import (
	"Resto-Manager/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	SalesRepository interface {
		GetCommittedOrders(ctx context.Context, from, to time.Time) ([]*entities.Order, error)
	}

	salesRepository struct {
		db *gorm.DB
	}
)

func NewSalesRepository(db *gorm.DB) SalesRepository {
	return &salesRepository{db: db}
}

// GetCommittedOrders loads orders with their lines for the aggregation
// folds. Zero from/to means an unbounded range.
func (r *salesRepository) GetCommittedOrders(ctx context.Context, from, to time.Time) ([]*entities.Order, error) {
	var orders []*entities.Order

	query := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Where("status = ?", entities.OrderStatusCommitted)

	if !from.IsZero() {
		query = query.Where("order_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("order_date <= ?", to)
	}

	if err := query.Order("order_date asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
