// Package catalog turns the backend's heterogeneous product records into the
// canonical domain.Product. All knowledge of the "|" wire delimiter, the size
// enumeration and the asset path conventions lives here and nowhere else.
package catalog

import (
	"strings"

	"github.com/phenrril/modashop/internal/domain"
)

// Delimiter separates values inside the backend's scalar size/color fields.
const Delimiter = "|"

// validSizes is the closed enumeration the backend is supposed to honor.
// Anything outside it gets dropped silently.
var validSizes = map[string]struct{}{
	"S": {}, "M": {}, "L": {}, "XL": {}, "XXL": {},
}

// ParseDelimited splits raw on the delimiter, trims every token and drops
// empty ones, so "S||M|" yields ["S","M"]. Duplicates collapse to the first
// occurrence. A blank input yields nil.
func ParseDelimited(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	seen := map[string]struct{}{}
	for _, tok := range strings.Split(raw, Delimiter) {
		t := strings.TrimSpace(tok)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// NormalizeSizes prefers the structured array when present, otherwise falls
// back to the delimited scalar. Values fold to uppercase and anything outside
// the size enumeration is excluded.
func NormalizeSizes(structured []string, delimited string) []string {
	src := structured
	if len(src) == 0 {
		src = ParseDelimited(delimited)
	}
	var out []string
	seen := map[string]struct{}{}
	for _, v := range src {
		s := strings.ToUpper(strings.TrimSpace(v))
		if s == "" {
			continue
		}
		if _, ok := validSizes[s]; !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// NormalizeColors works like NormalizeSizes but colors are free-form: only
// trim and drop-empty, no enumeration filter and no case folding.
func NormalizeColors(structured []string, delimited string) []string {
	src := structured
	if len(src) == 0 {
		src = ParseDelimited(delimited)
	}
	var out []string
	seen := map[string]struct{}{}
	for _, v := range src {
		c := strings.TrimSpace(v)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Normalizer builds canonical products. The Lister is only consulted when a
// product needs a gallery derived from its thumbnail folder.
type Normalizer struct {
	Lister domain.FolderLister
}

func NewNormalizer(lister domain.FolderLister) *Normalizer {
	return &Normalizer{Lister: lister}
}

// Normalize converts a raw backend record into the canonical product. It is
// total: malformed fields degrade to empty, never to an error.
func (n *Normalizer) Normalize(r domain.RawProduct) domain.Product {
	return domain.Product{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Price:       nonNegative(r.Price),
		Category:    strings.TrimSpace(r.Category),
		Brand:       strings.TrimSpace(r.Brand),
		Gender:      strings.TrimSpace(r.Gender),
		Sizes:       NormalizeSizes(r.Sizes, r.Size),
		Colors:      NormalizeColors(r.Colors, r.Color),
		Images:      r.Images,
		Thumbnail:   r.Thumbnail,
		Stock:       r.Stock,
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
