package usecase

import (
	"errors"

	"github.com/phenrril/modashop/internal/catalog"
	"github.com/phenrril/modashop/internal/domain"
	"github.com/phenrril/modashop/internal/store"
)

// CartUC tracks the active session's cart. It survives screen changes; its
// lifecycle is the session's, not any view's.
type CartUC struct {
	lines *store.AggregateStore[domain.CartLine]
}

func NewCartUC() *CartUC {
	return &CartUC{
		lines: store.New(func(l domain.CartLine) string { return l.Key() }),
	}
}

// Add puts qty units of p (in the given variant) into the cart. Repeated adds
// of the same key sum quantities; every other field keeps the first add's
// value. qty <= 0 is rejected with no state change.
func (uc *CartUC) Add(p *domain.Product, variant string, qty int) error {
	if p == nil {
		return errors.New("producto nil")
	}
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	ref, _ := catalog.ResolveAssetPath(p.Thumbnail)
	line := domain.CartLine{
		ProductID:   p.ID,
		Variant:     variant,
		Title:       p.Name,
		Description: p.Description,
		UnitPrice:   p.Price,
		Qty:         qty,
		ImageRef:    ref,
	}
	uc.lines.Upsert(line, func(old, incoming domain.CartLine) domain.CartLine {
		old.Qty += incoming.Qty
		return old
	})
	return nil
}

// Remove drops the line for (productID, variant). Unknown keys are a no-op.
func (uc *CartUC) Remove(productID, variant string) {
	uc.lines.Remove(domain.CartLine{ProductID: productID, Variant: variant}.Key())
}

// ReplaceAll swaps the whole cart for lines, keeping the given order. Lines
// whose quantity dropped to zero or below are discarded. Used after syncing
// with backend-confirmed state and when restoring a persisted cart.
func (uc *CartUC) ReplaceAll(lines []domain.CartLine) {
	kept := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Qty <= 0 {
			continue
		}
		kept = append(kept, l)
	}
	uc.lines.Replace(kept)
}

// Total sums unit price times quantity over all lines. No rounding happens
// here; formatting for display rounds at the edge.
func (uc *CartUC) Total() float64 {
	total := 0.0
	for _, l := range uc.lines.Values() {
		total += l.Subtotal()
	}
	return total
}

// Snapshot returns the lines in insertion order, detached from live state.
func (uc *CartUC) Snapshot() []domain.CartLine {
	return uc.lines.Values()
}

func (uc *CartUC) Get(productID, variant string) (domain.CartLine, bool) {
	return uc.lines.Get(domain.CartLine{ProductID: productID, Variant: variant}.Key())
}

func (uc *CartUC) Clear() { uc.lines.Clear() }

func (uc *CartUC) Len() int { return uc.lines.Len() }
