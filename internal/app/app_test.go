package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/phenrril/modashop/config"
	"github.com/phenrril/modashop/internal/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)

	a, err := NewApp(db, cfg)
	require.NoError(t, err)
	return a
}

func TestCartSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	p := &domain.Product{ID: "p1", Name: "Vestido", Price: 15000}
	require.NoError(t, a.Cart.Add(p, "beige", 2))
	require.NoError(t, a.Persist(ctx))

	// Fresh engines over the same store simulate an app restart.
	b := newTestApp(t)
	b.cartRepo = a.cartRepo
	require.NoError(t, b.Restore(ctx))

	lines := b.Cart.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, "beige", lines[0].Variant)
}

func TestLoginReloadsFavoritesAndLogoutClears(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	require.NoError(t, a.Login(ctx, &domain.User{ID: "ana"}))
	a.Favorites.Add(&domain.Product{ID: "p1", Name: "Vestido", Price: 15000})
	require.NoError(t, a.Cart.Add(&domain.Product{ID: "p1", Price: 15000}, "", 1))

	require.NoError(t, a.Logout(ctx))
	assert.Empty(t, a.Session.UserID())
	assert.Zero(t, a.Cart.Len(), "cart is session-owned")
	assert.Empty(t, a.Favorites.List())

	// Same user back: favorites come from the store.
	require.NoError(t, a.Login(ctx, &domain.User{ID: "ana"}))
	entries := a.Favorites.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)

	// A different user starts clean.
	require.NoError(t, a.Login(ctx, &domain.User{ID: "bruno"}))
	assert.Empty(t, a.Favorites.List())
}

func TestSignInDisabledWithoutSecret(t *testing.T) {
	// The bundled resource carries only the client id; without the secret the
	// oauth config must stay nil instead of defaulting.
	a := newTestApp(t)
	assert.Nil(t, a.OAuthConfig)
}
