package domain

// CartLine is one line of the active cart. Display fields are denormalized
// from the product at first add and are not refreshed on repeated adds.
type CartLine struct {
	ProductID   string
	Variant     string
	Title       string
	Description string
	UnitPrice   float64
	Qty         int
	ImageRef    string
}

// Key identifies a line inside the cart. The variant participates so the same
// product in two colors yields two lines.
func (l CartLine) Key() string {
	return l.ProductID + "|" + l.Variant
}

func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Qty)
}
