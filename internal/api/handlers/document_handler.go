package handlers

import (
	"Resto-Manager/domain"
	"Resto-Manager/internal/api/presenters"
	"Resto-Manager/pkg/document"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DocumentHandler interface {
		GetReceipt(c *fiber.Ctx) error
		SendReceipt(c *fiber.Ctx) error
		GetStockChart(c *fiber.Ctx) error
		GetSalesChart(c *fiber.Ctx) error
	}

	documentHandler struct {
		documentService document.DocumentService
		validator       *validator.Validate
	}
)

func NewDocumentHandler(documentService document.DocumentService, validator *validator.Validate) DocumentHandler {
	return &documentHandler{
		documentService: documentService,
		validator:       validator,
	}
}

func (h *documentHandler) GetReceipt(c *fiber.Ctx) error {
	id := c.Params("id")

	receipt, err := h.documentService.GenerateReceipt(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceipt, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, id))
	return c.Send(receipt)
}

func (h *documentHandler) SendReceipt(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.SendReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendReceipt, err)
	}

	if err := h.documentService.EmailReceipt(c.Context(), id, *req); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSendReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendReceipt, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendReceipt)
}

func (h *documentHandler) GetStockChart(c *fiber.Ctx) error {
	chart, err := h.documentService.StockChart(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNothingToChart) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetChart, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChart, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(chart)
}

func (h *documentHandler) GetSalesChart(c *fiber.Ctx) error {
	bucket := c.Query("bucket", domain.BucketDay)

	chart, err := h.documentService.SalesChart(c.Context(), bucket)
	if err != nil {
		if errors.Is(err, domain.ErrNothingToChart) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetChart, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChart, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(chart)
}
