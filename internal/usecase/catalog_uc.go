package usecase

import (
	"context"
	"errors"

	"github.com/phenrril/modashop/internal/catalog"
	"github.com/phenrril/modashop/internal/domain"
)

// CatalogUC fetches raw records from the backend and hands screens canonical
// products.
type CatalogUC struct {
	Gateway    domain.CatalogGateway
	Normalizer *catalog.Normalizer

	// Fallback supplies raw records when the backend is unreachable,
	// typically the catalog workbook bundled with the app.
	Fallback func() ([]domain.RawProduct, error)
}

func (uc *CatalogUC) List(ctx context.Context) ([]domain.Product, error) {
	raws, err := uc.Gateway.FetchProducts(ctx)
	if err != nil {
		if uc.Fallback == nil {
			return nil, err
		}
		raws, err = uc.Fallback()
		if err != nil {
			return nil, err
		}
	}
	out := make([]domain.Product, 0, len(raws))
	for _, r := range raws {
		out = append(out, uc.Normalizer.Normalize(r))
	}
	return out, nil
}

func (uc *CatalogUC) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, errors.New("id vacío")
	}
	raw, err := uc.Gateway.FetchProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p := uc.Normalizer.Normalize(*raw)
	return &p, nil
}

// Gallery resolves the images to display for p. An empty result means the
// screen shows the placeholder asset.
func (uc *CatalogUC) Gallery(p domain.Product) []string {
	return uc.Normalizer.Gallery(p)
}

// Search filters the normalized catalog by name, category or brand.
func (uc *CatalogUC) Search(ctx context.Context, query string) ([]domain.Product, error) {
	all, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	q := normalizeQuery(query)
	if q == "" {
		return all, nil
	}
	out := []domain.Product{}
	for _, p := range all {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}
