package handlers

import (
	"Resto-Manager/domain"
	"Resto-Manager/internal/api/presenters"
	"Resto-Manager/pkg/customer"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CustomerHandler interface {
		RegisterCustomer(c *fiber.Ctx) error
		GetCustomers(c *fiber.Ctx) error
		GetCustomerDetails(c *fiber.Ctx) error
		UpdateCustomer(c *fiber.Ctx) error
		DeleteCustomer(c *fiber.Ctx) error
	}

	customerHandler struct {
		customerService customer.CustomerService
		validator       *validator.Validate
	}
)

func NewCustomerHandler(customerService customer.CustomerService, validator *validator.Validate) CustomerHandler {
	return &customerHandler{
		customerService: customerService,
		validator:       validator,
	}
}

func (h *customerHandler) RegisterCustomer(c *fiber.Ctx) error {
	req := new(domain.RegisterCustomerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterCustomer, err)
	}

	res, err := h.customerService.RegisterCustomer(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterCustomer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterCustomer)
}

func (h *customerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.customerService.GetCustomers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCustomers, err)
	}

	return presenters.SuccessResponse(c, customers, fiber.StatusOK, domain.MessageSuccessGetCustomers)
}

func (h *customerHandler) GetCustomerDetails(c *fiber.Ctx) error {
	email := c.Params("email")

	res, err := h.customerService.GetCustomerByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCustomers, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCustomers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCustomers)
}

func (h *customerHandler) UpdateCustomer(c *fiber.Ctx) error {
	email := c.Params("email")
	req := new(domain.UpdateCustomerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCustomer, err)
	}

	if err := h.customerService.UpdateCustomer(c.Context(), email, *req); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateCustomer, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCustomer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCustomer)
}

func (h *customerHandler) DeleteCustomer(c *fiber.Ctx) error {
	email := c.Params("email")

	if err := h.customerService.DeleteCustomer(c.Context(), email); err != nil {
		if errors.Is(err, domain.ErrCustomerHasOrders) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDeleteCustomer, err)
		}
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteCustomer, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCustomer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCustomer)
}
