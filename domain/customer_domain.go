package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegisterCustomer = "customer registered successfully"
	MessageSuccessUpdateCustomer   = "customer updated successfully"
	MessageSuccessDeleteCustomer   = "customer deleted successfully"
	MessageSuccessGetCustomers     = "customers retrieved successfully"

	MessageFailedRegisterCustomer = "failed to register customer"
	MessageFailedUpdateCustomer   = "failed to update customer"
	MessageFailedDeleteCustomer   = "failed to delete customer"
	MessageFailedGetCustomers     = "failed to retrieve customers"

	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrCustomerUnderage      = errors.New("customer must be at least 18 years old")
	// ErrCustomerHasOrders is the referential guard: a customer with
	// committed orders cannot be removed.
	ErrCustomerHasOrders = errors.New("customer has dependent orders")
)

type (
	RegisterCustomerRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Age   int    `json:"age" validate:"required,min=18"`
	}

	UpdateCustomerRequest struct {
		Name string `json:"name" validate:"omitempty"`
		Age  int    `json:"age" validate:"omitempty,min=18"`
	}

	CustomerResponse struct {
		Email      string    `json:"email"`
		Name       string    `json:"name"`
		Age        int       `json:"age"`
		OrderCount int       `json:"order_count"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
