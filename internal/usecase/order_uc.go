package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/phenrril/modashop/internal/domain"
)

// OrderUC turns the cart into a backend order. The cart is cleared only after
// the backend confirms; a cancelled or failed submission leaves it untouched.
type OrderUC struct {
	Cart    *CartUC
	Gateway domain.CatalogGateway
}

// Checkout submits the current cart. On success it returns the confirmed
// order and empties the cart.
func (uc *OrderUC) Checkout(ctx context.Context, email, name, address string) (*domain.Order, error) {
	lines := uc.Cart.Snapshot()
	if len(lines) == 0 {
		return nil, errors.New("carrito vacío")
	}

	items := make([]domain.OrderItem, 0, len(lines))
	total := 0.0
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ProductID: l.ProductID,
			Title:     l.Title,
			Variant:   l.Variant,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
		})
		total += l.Subtotal()
	}

	o := &domain.Order{
		ID:        uuid.New(),
		Status:    domain.OrderStatusPending,
		Items:     items,
		Email:     email,
		Name:      name,
		Address:   address,
		Total:     total,
		CreatedAt: time.Now(),
	}

	ref, err := uc.Gateway.SubmitOrder(ctx, o)
	if err != nil {
		return nil, err
	}
	o.Reference = ref
	o.Status = domain.OrderStatusConfirmed
	uc.Cart.Clear()
	return o, nil
}
