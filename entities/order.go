package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusCommitted = "Committed"
)

type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerEmail string    `json:"customer_email"`
	Description   string    `json:"description"`
	OrderDate     time.Time `json:"order_date"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`

	Customer *Customer    `gorm:"foreignKey:CustomerEmail;references:Email"`
	Items    []*OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Timestamp
}

// OrderItem snapshots the menu item price at commit time so later menu edits
// never change what a committed order is worth.
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	MenuItemID  uuid.UUID `json:"menu_item_id"`
	Quantity    int       `json:"quantity"`
	PriceAtTime float64   `json:"price_at_time"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
}
