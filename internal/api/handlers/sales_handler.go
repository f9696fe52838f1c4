package handlers

import (
	"Resto-Manager/domain"
	"Resto-Manager/internal/api/presenters"
	"Resto-Manager/pkg/sales"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	SalesHandler interface {
		GetSalesReport(c *fiber.Ctx) error
	}

	salesHandler struct {
		salesService sales.SalesService
	}
)

func NewSalesHandler(salesService sales.SalesService) SalesHandler {
	return &salesHandler{salesService: salesService}
}

func (h *salesHandler) GetSalesReport(c *fiber.Ctx) error {
	bucket := c.Query("bucket", domain.BucketDay)

	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSales, err)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSales, err)
		}
		to = parsed
	}

	report, err := h.salesService.GetSalesReport(c.Context(), bucket, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSales, err)
	}

	return presenters.SuccessResponse(c, report, fiber.StatusOK, domain.MessageSuccessGetSales)
}
