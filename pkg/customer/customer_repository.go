package customer

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CustomerRepository interface {
		AddCustomer(ctx context.Context, customer *entities.Customer) error
		GetCustomerByEmail(ctx context.Context, email string) (*entities.Customer, error)
		GetCustomers(ctx context.Context) ([]*entities.Customer, error)
		UpdateCustomer(ctx context.Context, customer *entities.Customer) error
		DeleteCustomer(ctx context.Context, email string) error
		CountOrders(ctx context.Context, email string) (int64, error)
	}

	customerRepository struct {
		db *gorm.DB
	}
)

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) AddCustomer(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetCustomerByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetCustomers(ctx context.Context) ([]*entities.Customer, error) {
	var customers []*entities.Customer
	if err := r.db.WithContext(ctx).Order("name asc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// DeleteCustomer enforces the referential guard: a customer with committed
// orders stays, and the caller gets a distinguishable error for it.
func (r *customerRepository) DeleteCustomer(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orders int64
		if err := tx.Model(&entities.Order{}).
			Where("customer_email = ?", email).
			Count(&orders).Error; err != nil {
			return err
		}
		if orders > 0 {
			return domain.ErrCustomerHasOrders
		}

		result := tx.Delete(&entities.Customer{}, "email = ?", email)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *customerRepository) CountOrders(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("customer_email = ?", email).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
