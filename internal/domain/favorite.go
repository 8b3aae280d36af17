package domain

// FavoriteEntry is a liked product. Membership is boolean, there is no
// quantity. Display fields are denormalized so the favorites screen renders
// without refetching the catalog.
type FavoriteEntry struct {
	ProductID   string
	Name        string
	Description string
	Price       float64
	ImageRef    string
}
