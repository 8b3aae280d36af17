package domain

import "context"

// CatalogGateway is the remote REST backend, reduced to the calls this layer
// makes. Transport details (retries, auth headers) live in the adapter.
type CatalogGateway interface {
	FetchProducts(ctx context.Context) ([]RawProduct, error)
	FetchProduct(ctx context.Context, id string) (*RawProduct, error)
	SubmitOrder(ctx context.Context, o *Order) (string, error)
}

// FolderLister lists the file names inside a bundled asset directory.
type FolderLister interface {
	List(dir string) ([]string, error)
}

// CartStore persists cart snapshots. The engine never sees the storage format.
type CartStore interface {
	Load(ctx context.Context) ([]CartLine, error)
	Save(ctx context.Context, lines []CartLine) error
}

// FavoritesStore persists favorites per user.
type FavoritesStore interface {
	Load(ctx context.Context, userID string) ([]FavoriteEntry, error)
	Save(ctx context.Context, userID string, entries []FavoriteEntry) error
}
