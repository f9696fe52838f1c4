package customer

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

const minimumCustomerAge = 18

type (
	CustomerService interface {
		RegisterCustomer(ctx context.Context, req domain.RegisterCustomerRequest) (domain.CustomerResponse, error)
		GetCustomers(ctx context.Context) ([]domain.CustomerResponse, error)
		GetCustomerByEmail(ctx context.Context, email string) (domain.CustomerResponse, error)
		UpdateCustomer(ctx context.Context, email string, req domain.UpdateCustomerRequest) error
		DeleteCustomer(ctx context.Context, email string) error
	}

	customerService struct {
		customerRepository CustomerRepository
	}
)

var nameCaser = cases.Title(language.Und)

func NewCustomerService(customerRepository CustomerRepository) CustomerService {
	return &customerService{customerRepository: customerRepository}
}

func (s *customerService) RegisterCustomer(ctx context.Context, req domain.RegisterCustomerRequest) (domain.CustomerResponse, error) {
	if req.Age < minimumCustomerAge {
		return domain.CustomerResponse{}, domain.ErrCustomerUnderage
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := nameCaser.String(strings.TrimSpace(req.Name))

	if _, err := s.customerRepository.GetCustomerByEmail(ctx, email); err == nil {
		return domain.CustomerResponse{}, domain.ErrCustomerAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CustomerResponse{}, err
	}

	customer := &entities.Customer{
		Email: email,
		Name:  name,
		Age:   req.Age,
	}

	if err := s.customerRepository.AddCustomer(ctx, customer); err != nil {
		return domain.CustomerResponse{}, err
	}

	return toCustomerResponse(customer, 0), nil
}

func (s *customerService) GetCustomers(ctx context.Context) ([]domain.CustomerResponse, error) {
	customers, err := s.customerRepository.GetCustomers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		count, err := s.customerRepository.CountOrders(ctx, customer.Email)
		if err != nil {
			return nil, err
		}
		response = append(response, toCustomerResponse(customer, int(count)))
	}
	return response, nil
}

func (s *customerService) GetCustomerByEmail(ctx context.Context, email string) (domain.CustomerResponse, error) {
	customer, err := s.customerRepository.GetCustomerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerResponse{}, domain.ErrCustomerNotFound
		}
		return domain.CustomerResponse{}, err
	}

	count, err := s.customerRepository.CountOrders(ctx, customer.Email)
	if err != nil {
		return domain.CustomerResponse{}, err
	}

	return toCustomerResponse(customer, int(count)), nil
}

// UpdateCustomer keeps the email key stable; only name and age move.
func (s *customerService) UpdateCustomer(ctx context.Context, email string, req domain.UpdateCustomerRequest) error {
	customer, err := s.customerRepository.GetCustomerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}
		return err
	}

	if req.Name != "" {
		customer.Name = nameCaser.String(strings.TrimSpace(req.Name))
	}
	if req.Age != 0 {
		if req.Age < minimumCustomerAge {
			return domain.ErrCustomerUnderage
		}
		customer.Age = req.Age
	}

	return s.customerRepository.UpdateCustomer(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, email string) error {
	if err := s.customerRepository.DeleteCustomer(ctx, strings.ToLower(strings.TrimSpace(email))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}
		return err
	}
	return nil
}

func toCustomerResponse(customer *entities.Customer, orderCount int) domain.CustomerResponse {
	return domain.CustomerResponse{
		Email:      customer.Email,
		Name:       customer.Name,
		Age:        customer.Age,
		OrderCount: orderCount,
		CreatedAt:  customer.CreatedAt,
	}
}
