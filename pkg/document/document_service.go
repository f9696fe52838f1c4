package document

import (
	"Resto-Manager/domain"
	"Resto-Manager/internal/utils/mailing"
	"Resto-Manager/pkg/inventory"
	"Resto-Manager/pkg/order"
	"Resto-Manager/pkg/sales"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type (
	DocumentService interface {
		GenerateReceipt(ctx context.Context, orderID string) ([]byte, error)
		EmailReceipt(ctx context.Context, orderID string, req domain.SendReceiptRequest) error
		StockChart(ctx context.Context) ([]byte, error)
		SalesChart(ctx context.Context, bucket string) ([]byte, error)
	}

	documentService struct {
		orderRepository     order.OrderRepository
		inventoryRepository inventory.InventoryRepository
		salesService        sales.SalesService
	}
)

func NewDocumentService(
	orderRepository order.OrderRepository,
	inventoryRepository inventory.InventoryRepository,
	salesService sales.SalesService,
) DocumentService {
	return &documentService{
		orderRepository:     orderRepository,
		inventoryRepository: inventoryRepository,
		salesService:        salesService,
	}
}

// GenerateReceipt renders the boleta for a committed order. It reads only
// committed data; nothing here can mutate stock or orders.
func (s *documentService) GenerateReceipt(ctx context.Context, orderID string) ([]byte, error) {
	committed, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return renderReceiptPDF(committed)
}

func (s *documentService) EmailReceipt(ctx context.Context, orderID string, req domain.SendReceiptRequest) error {
	receipt, err := s.GenerateReceipt(ctx, orderID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Receipt for order %s", orderID)
	body := "Thank you for your order. Your receipt is attached."
	filename := fmt.Sprintf("receipt-%s.pdf", orderID)

	return mailing.SendMailWithAttachment(req.Email, subject, body, filename, receipt)
}

func (s *documentService) StockChart(ctx context.Context) ([]byte, error) {
	ingredients, err := s.inventoryRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		return nil, domain.ErrNothingToChart
	}

	return renderStockChart(ingredients)
}

func (s *documentService) SalesChart(ctx context.Context, bucket string) ([]byte, error) {
	report, err := s.salesService.GetSalesReport(ctx, bucket, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	if len(report.ByPeriod) == 0 {
		return nil, domain.ErrNothingToChart
	}

	return renderSalesChart(report.ByPeriod)
}
