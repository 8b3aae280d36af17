package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/modashop/internal/domain"
)

func TestFavoritesAddIdempotent(t *testing.T) {
	s := NewSession()
	s.SetUser(&domain.User{ID: "u1"})
	fav := NewFavoritesUC(s)

	p := sampleProduct("p1", 100)
	fav.Add(p)
	fav.Add(p)

	entries := fav.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)
	assert.True(t, fav.IsFavorite("p1"))
}

func TestFavoritesRemoveUnknownIsNoop(t *testing.T) {
	s := NewSession()
	s.SetUser(&domain.User{ID: "u1"})
	fav := NewFavoritesUC(s)

	fav.Add(sampleProduct("p1", 100))
	fav.Remove("desconocido")

	assert.Len(t, fav.List(), 1)
}

func TestFavoritesResetOnIdentitySwitch(t *testing.T) {
	s := NewSession()
	s.SetUser(&domain.User{ID: "ana"})
	fav := NewFavoritesUC(s)
	fav.Add(sampleProduct("p1", 100))
	require.Len(t, fav.List(), 1)

	s.SetUser(&domain.User{ID: "bruno"})
	assert.Empty(t, fav.List(), "favorites must not leak across users")
	assert.False(t, fav.IsFavorite("p1"))

	fav.Add(sampleProduct("p2", 50))
	assert.Equal(t, "bruno", fav.UserID())

	// Back to the first user: the in-memory scope was invalidated, a reload
	// from persistence is the app's job.
	s.SetUser(&domain.User{ID: "ana"})
	assert.Empty(t, fav.List())
}

func TestFavoritesClearedOnLogout(t *testing.T) {
	s := NewSession()
	s.SetUser(&domain.User{ID: "u1"})
	fav := NewFavoritesUC(s)
	fav.Add(sampleProduct("p1", 100))

	s.Clear()
	assert.Empty(t, fav.List())
}

func TestFavoritesReplaceAll(t *testing.T) {
	s := NewSession()
	s.SetUser(&domain.User{ID: "u1"})
	fav := NewFavoritesUC(s)

	fav.ReplaceAll([]domain.FavoriteEntry{
		{ProductID: "a", Name: "A"},
		{ProductID: "b", Name: "B"},
	})
	entries := fav.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ProductID)
	assert.Equal(t, "b", entries[1].ProductID)
}

func TestFavoritesConcurrentWithIdentitySwitch(t *testing.T) {
	s := NewSession()
	s.SetUser(&domain.User{ID: "ana"})
	fav := NewFavoritesUC(s)
	p := sampleProduct("p1", 10)

	done := make(chan struct{})
	go func() {
		defer close(done)
		users := []*domain.User{{ID: "ana"}, {ID: "bruno"}}
		for i := 0; i < 2000; i++ {
			s.SetUser(users[i%2])
		}
	}()
	for i := 0; i < 2000; i++ {
		fav.Add(p)
		fav.IsFavorite("p1")
		fav.List()
	}
	<-done

	// A fresh identity must always start from an empty scope, no matter how
	// the switches above interleaved with the adds.
	s.SetUser(&domain.User{ID: "carla"})
	assert.Empty(t, fav.List())
	assert.Equal(t, "carla", fav.UserID())
}

func TestFavoritesListOrder(t *testing.T) {
	s := NewSession()
	s.SetUser(&domain.User{ID: "u1"})
	fav := NewFavoritesUC(s)

	fav.Add(sampleProduct("p3", 1))
	fav.Add(sampleProduct("p1", 1))
	fav.Add(sampleProduct("p2", 1))
	fav.Add(sampleProduct("p1", 1))

	entries := fav.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "p3", entries[0].ProductID)
	assert.Equal(t, "p1", entries[1].ProductID)
	assert.Equal(t, "p2", entries[2].ProductID)
}
