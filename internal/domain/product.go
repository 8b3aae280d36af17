package domain

// Product is the canonical in-memory shape every screen works with. Sizes and
// Colors arrive already normalized: trimmed, deduplicated, first-seen order.
// Images and Thumbnail keep the raw values exactly as the backend sent them;
// asset resolution happens on demand in the catalog package.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	Gender      string
	Sizes       []string
	Colors      []string
	Images      []string
	Thumbnail   string
	Stock       *int
}

// RawProduct mirrors the backend product record. The backend is inconsistent:
// some endpoints send sizes/colors as arrays, others as "|"-delimited scalars
// in size/color, and thumbnails may be absolute paths from whatever machine
// produced the data.
type RawProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Gender      string   `json:"gender"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Images      []string `json:"images"`
	Thumbnail   string   `json:"thumbnail"`
	Stock       *int     `json:"stock"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}
