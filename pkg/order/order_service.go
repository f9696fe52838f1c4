package order

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"Resto-Manager/pkg/customer"
	"Resto-Manager/pkg/inventory"
	"Resto-Manager/pkg/menu"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bounded retry on transient lock contention. Anything beyond these attempts
// surfaces domain.ErrStorageContention.
const (
	contentionRetries = 3
	contentionBackoff = 100 * time.Millisecond
)

type (
	OrderService interface {
		Checkout(ctx context.Context, req domain.CheckoutOrderRequest) (domain.OrderResponse, error)
		CancelOrder(ctx context.Context, id string) error
		GetOrders(ctx context.Context, customerEmail string) ([]domain.OrderResponse, error)
		GetOrderByID(ctx context.Context, id string) (domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository     OrderRepository
		menuRepository      menu.MenuRepository
		customerRepository  customer.CustomerRepository
		inventoryRepository inventory.InventoryRepository
		log                 *slog.Logger
	}

	cartLine struct {
		item  *entities.MenuItem
		count int
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	menuRepository menu.MenuRepository,
	customerRepository customer.CustomerRepository,
	inventoryRepository inventory.InventoryRepository,
	log *slog.Logger,
) OrderService {
	return &orderService{
		orderRepository:     orderRepository,
		menuRepository:      menuRepository,
		customerRepository:  customerRepository,
		inventoryRepository: inventoryRepository,
		log:                 log.With("component", "order_service"),
	}
}

// Checkout turns a cart into a committed order: validate, resolve the merged
// ingredient requirement, check it against the ledger, then reserve and
// persist atomically. Every failure leaves stock and orders untouched.
func (s *orderService) Checkout(ctx context.Context, req domain.CheckoutOrderRequest) (domain.OrderResponse, error) {
	if _, err := s.customerRepository.GetCustomerByEmail(ctx, req.CustomerEmail); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrCustomerNotFound
		}
		return domain.OrderResponse{}, err
	}

	lines, err := s.loadCart(ctx, req.Cart)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	requirements := ResolveRequirements(lines)

	if err := s.checkAvailability(ctx, requirements); err != nil {
		s.log.Warn("checkout rejected", "customer", req.CustomerEmail, "error", err)
		return domain.OrderResponse{}, err
	}

	order := s.buildOrder(req, lines)

	err = s.withContentionRetry(func() error {
		return s.orderRepository.CreateOrderWithReservation(ctx, order, requirements)
	})
	if err != nil {
		s.log.Error("checkout failed", "customer", req.CustomerEmail, "error", err)
		return domain.OrderResponse{}, err
	}

	s.log.Info("order committed",
		"order_id", order.ID,
		"customer", order.CustomerEmail,
		"total", order.TotalAmount)

	return toOrderResponse(order), nil
}

// CancelOrder re-expands the committed order's recipes and restores exactly
// what the commit reserved, then deletes the order, all in one transaction.
func (s *orderService) CancelOrder(ctx context.Context, id string) error {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	lines := make([]cartLine, 0, len(order.Items))
	for _, item := range order.Items {
		if item.MenuItem == nil {
			return domain.ErrMenuItemNotFound
		}
		lines = append(lines, cartLine{item: item.MenuItem, count: item.Quantity})
	}

	requirements := ResolveRequirements(lines)

	err = s.withContentionRetry(func() error {
		return s.orderRepository.DeleteOrderWithRestock(ctx, order.ID, requirements)
	})
	if err != nil {
		s.log.Error("cancel failed", "order_id", id, "error", err)
		return err
	}

	s.log.Info("order cancelled", "order_id", id, "restored_ingredients", len(requirements))
	return nil
}

func (s *orderService) GetOrders(ctx context.Context, customerEmail string) ([]domain.OrderResponse, error) {
	// Orders persist the email lowercased, so the filter must match that form.
	orders, err := s.orderRepository.GetOrders(ctx, strings.ToLower(strings.TrimSpace(customerEmail)))
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	return response, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

// ResolveRequirements expands a cart into one merged ingredient requirement
// map: duplicate ingredient references across menu items collapse into a
// single aggregate entry before any stock check. The result is sorted by
// ingredient name so cart order never changes the outcome.
func ResolveRequirements(lines []cartLine) []domain.IngredientRequirement {
	merged := make(map[uuid.UUID]*domain.IngredientRequirement)

	for _, line := range lines {
		for _, recipeLine := range line.item.Recipe {
			needed := recipeLine.Quantity * float64(line.count)

			if req, ok := merged[recipeLine.IngredientID]; ok {
				req.Quantity += needed
				if req.Unit == "" {
					req.Unit = recipeLine.Unit
				}
				continue
			}

			req := &domain.IngredientRequirement{
				IngredientID: recipeLine.IngredientID,
				Quantity:     needed,
				Unit:         recipeLine.Unit,
			}
			if recipeLine.Ingredient != nil {
				req.Name = recipeLine.Ingredient.Name
			}
			merged[recipeLine.IngredientID] = req
		}
	}

	requirements := make([]domain.IngredientRequirement, 0, len(merged))
	for _, req := range merged {
		requirements = append(requirements, *req)
	}
	sort.Slice(requirements, func(i, j int) bool {
		return requirements[i].Name < requirements[j].Name
	})
	return requirements
}

// loadCart eagerly fetches every menu item with its recipe before validation
// begins, rejecting empty carts, duplicate lines and unknown items.
func (s *orderService) loadCart(ctx context.Context, cart []domain.CartLineRequest) ([]cartLine, error) {
	if len(cart) == 0 {
		return nil, domain.ErrEmptyCart
	}

	seen := make(map[string]bool, len(cart))
	lines := make([]cartLine, 0, len(cart))
	for _, line := range cart {
		if line.Count < 1 {
			return nil, domain.ErrEmptyCart
		}
		if seen[line.MenuItemID] {
			return nil, domain.ErrDuplicateCartLine
		}
		seen[line.MenuItemID] = true

		item, err := s.menuRepository.GetMenuItemByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrMenuItemNotFound
			}
			return nil, err
		}
		lines = append(lines, cartLine{item: item, count: line.Count})
	}
	return lines, nil
}

// checkAvailability evaluates the whole merged requirement and reports every
// shortfall, not only the first one. No stock is touched here; the
// authoritative re-check happens under lock inside the commit transaction.
func (s *orderService) checkAvailability(ctx context.Context, requirements []domain.IngredientRequirement) error {
	var shortages []domain.StockShortage

	for _, req := range requirements {
		ingredient, err := s.inventoryRepository.GetIngredientByID(ctx, req.IngredientID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrIngredientNotFound
			}
			return err
		}

		if req.Unit != "" && ingredient.Unit != req.Unit {
			return domain.ErrUnitMismatch
		}

		if ingredient.Quantity < req.Quantity {
			shortages = append(shortages, domain.StockShortage{
				IngredientID: ingredient.ID.String(),
				Name:         ingredient.Name,
				Needed:       req.Quantity,
				Available:    ingredient.Quantity,
			})
		}
	}

	if len(shortages) > 0 {
		return &domain.StockShortageError{Shortages: shortages}
	}
	return nil
}

func (s *orderService) buildOrder(req domain.CheckoutOrderRequest, lines []cartLine) *entities.Order {
	orderDate := time.Now()
	if req.OrderDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.OrderDate); err == nil {
			orderDate = parsed
		}
	}

	var total float64
	items := make([]*entities.OrderItem, 0, len(lines))
	for _, line := range lines {
		total += line.item.Price * float64(line.count)
		items = append(items, &entities.OrderItem{
			ID:          uuid.New(),
			MenuItemID:  line.item.ID,
			Quantity:    line.count,
			PriceAtTime: line.item.Price,
			MenuItem:    line.item,
		})
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Order of %d items. Total: $%.2f", len(lines), total)
	}

	return &entities.Order{
		ID:            uuid.New(),
		CustomerEmail: strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		Description:   description,
		OrderDate:     orderDate,
		Status:        entities.OrderStatusCommitted,
		TotalAmount:   total,
		Items:         items,
	}
}

// withContentionRetry retries f on transient lock contention with a fixed
// backoff; any other error aborts immediately.
func (s *orderService) withContentionRetry(f func() error) error {
	var err error
	for attempt := 0; attempt < contentionRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(contentionBackoff)
			s.log.Warn("retrying after storage contention", "attempt", attempt)
		}

		err = f()
		if err == nil || !isTransientStorageErr(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageContention, err)
}

func isTransientStorageErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"database is locked",
		"database table is locked",
		"deadlock detected",
		"could not serialize access",
		"lock timeout",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	items := make([]domain.OrderLineResponse, 0, len(order.Items))
	for _, item := range order.Items {
		line := domain.OrderLineResponse{
			MenuItemID:  item.MenuItemID.String(),
			Count:       item.Quantity,
			PriceAtTime: item.PriceAtTime,
		}
		if item.MenuItem != nil {
			line.MenuItem = item.MenuItem.Name
		}
		items = append(items, line)
	}

	return domain.OrderResponse{
		ID:            order.ID.String(),
		CustomerEmail: order.CustomerEmail,
		Description:   order.Description,
		OrderDate:     order.OrderDate,
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
		Items:         items,
	}
}
