package catalog

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/modashop/internal/domain"
)

// Gallery resolves the list of images to show for a product. Preference
// order: explicit image entries, then the thumbnail's folder listed on disk,
// then the thumbnail alone. An empty result means the caller shows a
// placeholder.
func (n *Normalizer) Gallery(p domain.Product) []string {
	if len(p.Images) > 0 {
		var out []string
		for _, raw := range p.Images {
			if ref, ok := ResolveAssetPath(raw); ok {
				out = append(out, ref)
			}
		}
		return out
	}

	thumb, ok := ResolveAssetPath(p.Thumbnail)
	if !ok {
		return nil
	}

	segments := strings.Split(thumb, "/")
	if len(segments) < 3 {
		return []string{thumb}
	}

	// category/productFolder/file: the folder holds the whole gallery.
	folder := strings.Join(segments[:2], "/")
	names, err := n.list(folder)
	if err != nil {
		log.Debug().Err(err).Str("folder", folder).Msg("sin galería, uso thumbnail")
		return []string{thumb}
	}

	var out []string
	for _, name := range names {
		if !isImageFile(name) {
			continue
		}
		out = append(out, folder+"/"+name)
	}
	if len(out) == 0 {
		return []string{thumb}
	}
	return out
}

func (n *Normalizer) list(folder string) ([]string, error) {
	if n.Lister == nil {
		return nil, domain.ErrNotFound
	}
	return n.Lister.List(folder)
}

func isImageFile(name string) bool {
	ext := strings.ToLower(name)
	return strings.HasSuffix(ext, ".jpg") || strings.HasSuffix(ext, ".png")
}
