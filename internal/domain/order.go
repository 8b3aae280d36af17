package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is what checkout sends to the backend, built from a cart snapshot.
type Order struct {
	ID        uuid.UUID
	Reference string
	Status    OrderStatus
	Items     []OrderItem
	Email     string
	Name      string
	Address   string
	Total     float64
	CreatedAt time.Time
}

type OrderItem struct {
	ProductID string
	Title     string
	Variant   string
	Qty       int
	UnitPrice float64
}
