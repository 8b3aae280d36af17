package usecase

import (
	"strings"

	"github.com/phenrril/modashop/internal/domain"
)

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func matchesQuery(p domain.Product, q string) bool {
	for _, field := range []string{p.Name, p.Category, p.Brand} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
