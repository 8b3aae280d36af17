package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/phenrril/modashop/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestCartRepoRoundTrip(t *testing.T) {
	repo := NewCartRepo(setupTestDB(t))
	ctx := context.Background()

	lines := []domain.CartLine{
		{ProductID: "p2", Variant: "negro", Title: "Remera", UnitPrice: 9000, Qty: 2, ImageRef: "woman/r.jpg"},
		{ProductID: "p1", Title: "Vestido", UnitPrice: 15000, Qty: 1},
	}
	require.NoError(t, repo.Save(ctx, lines))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, lines, got, "order survives the round trip")

	// a later save replaces, never appends
	require.NoError(t, repo.Save(ctx, lines[:1]))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ProductID)
}

func TestCartRepoSaveEmpty(t *testing.T) {
	repo := NewCartRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.CartLine{{ProductID: "p1", Qty: 1}}))
	require.NoError(t, repo.Save(ctx, nil))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFavoritesRepoScopedByUser(t *testing.T) {
	repo := NewFavoritesRepo(setupTestDB(t))
	ctx := context.Background()

	ana := []domain.FavoriteEntry{
		{ProductID: "p1", Name: "Vestido", Price: 15000},
		{ProductID: "p2", Name: "Remera", Price: 9000},
	}
	bruno := []domain.FavoriteEntry{
		{ProductID: "p3", Name: "Campera", Price: 30000},
	}
	require.NoError(t, repo.Save(ctx, "ana", ana))
	require.NoError(t, repo.Save(ctx, "bruno", bruno))

	got, err := repo.Load(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, ana, got)

	got, err = repo.Load(ctx, "bruno")
	require.NoError(t, err)
	assert.Equal(t, bruno, got)

	// replacing ana's list must not touch bruno's
	require.NoError(t, repo.Save(ctx, "ana", nil))
	got, err = repo.Load(ctx, "bruno")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
