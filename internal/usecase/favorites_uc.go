package usecase

import (
	"sync"

	"github.com/phenrril/modashop/internal/catalog"
	"github.com/phenrril/modashop/internal/domain"
	"github.com/phenrril/modashop/internal/store"
)

// FavoritesUC tracks the liked products of exactly one user identity at a
// time. Every operation first checks the session: when the identity changed
// since the last call (login as someone else, or logout) the content is
// invalidated before the operation runs, so favorites never leak across
// users.
type FavoritesUC struct {
	session *Session

	mu      sync.Mutex
	boundTo string
	entries *store.AggregateStore[domain.FavoriteEntry]
}

func NewFavoritesUC(session *Session) *FavoritesUC {
	return &FavoritesUC{
		session: session,
		entries: store.New(func(e domain.FavoriteEntry) string { return e.ProductID }),
	}
}

// rebind invalidates the store when the session identity changed. Callers
// hold uc.mu for the whole operation so the identity check and the store
// mutation cannot interleave with a switch to another user.
func (uc *FavoritesUC) rebind() {
	id := uc.session.UserID()
	if id != uc.boundTo {
		uc.entries.Clear()
		uc.boundTo = id
	}
}

// Add marks p as a favorite. Adding an already-favorited product is a no-op,
// not a duplicate.
func (uc *FavoritesUC) Add(p *domain.Product) {
	if p == nil {
		return
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rebind()
	ref, _ := catalog.ResolveAssetPath(p.Thumbnail)
	entry := domain.FavoriteEntry{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageRef:    ref,
	}
	uc.entries.Upsert(entry, func(old, _ domain.FavoriteEntry) domain.FavoriteEntry {
		return old
	})
}

// Remove unlikes a product. Unknown ids are a no-op.
func (uc *FavoritesUC) Remove(productID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rebind()
	uc.entries.Remove(productID)
}

func (uc *FavoritesUC) IsFavorite(productID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rebind()
	return uc.entries.Has(productID)
}

// List returns the favorites in like order.
func (uc *FavoritesUC) List() []domain.FavoriteEntry {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rebind()
	return uc.entries.Values()
}

// ReplaceAll swaps the content, used when restoring a user's persisted
// favorites after login.
func (uc *FavoritesUC) ReplaceAll(entries []domain.FavoriteEntry) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rebind()
	uc.entries.Replace(entries)
}

// UserID reports the identity the store is currently bound to.
func (uc *FavoritesUC) UserID() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rebind()
	return uc.boundTo
}
