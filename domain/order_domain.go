package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessCheckoutOrder = "order committed successfully"
	MessageSuccessCancelOrder   = "order cancelled and stock restored"
	MessageSuccessGetOrders     = "orders retrieved successfully"

	MessageFailedCheckoutOrder = "failed to commit order"
	MessageFailedCancelOrder   = "failed to cancel order"
	MessageFailedGetOrders     = "failed to retrieve orders"

	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart must have at least one line")
	ErrDuplicateCartLine = errors.New("cart references the same menu item twice")
)

type (
	CartLineRequest struct {
		MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
		Count      int    `json:"count" validate:"required,min=1"`
	}

	CheckoutOrderRequest struct {
		CustomerEmail string            `json:"customer_email" validate:"required,email"`
		Description   string            `json:"description" validate:"omitempty"`
		OrderDate     string            `json:"order_date" validate:"omitempty"`
		Cart          []CartLineRequest `json:"cart" validate:"required,min=1,dive"`
	}

	OrderLineResponse struct {
		MenuItemID  string  `json:"menu_item_id"`
		MenuItem    string  `json:"menu_item"`
		Count       int     `json:"count"`
		PriceAtTime float64 `json:"price_at_time"`
	}

	OrderResponse struct {
		ID            string              `json:"id"`
		CustomerEmail string              `json:"customer_email"`
		Description   string              `json:"description"`
		OrderDate     time.Time           `json:"order_date"`
		Status        string              `json:"status"`
		TotalAmount   float64             `json:"total_amount"`
		Items         []OrderLineResponse `json:"items"`
	}
)

// IngredientRequirement is one entry of the merged aggregate requirement the
// recipe resolver produces for a whole cart.
type IngredientRequirement struct {
	IngredientID uuid.UUID
	Name         string
	Quantity     float64
	Unit         string // empty means any unit satisfies the requirement
}
