package models

// VariantSelection est la déclinaison choisie par le client pour une ligne du panier
type VariantSelection struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// CartItem est une ligne du panier. L'identité d'une ligne est le triplet
// (product id, size, color) : deux ajouts avec le même triplet incrémentent
// la quantité au lieu de créer une nouvelle ligne.
type CartItem struct {
	Product          Product           `json:"product"`
	Quantity         int               `json:"quantity"`
	SelectedVariants *VariantSelection `json:"selectedVariants,omitempty"`
}

// SameLine indique si la ligne porte le même triplet (product id, size, color).
// Une sélection absente équivaut à une sélection vide.
func (i CartItem) SameLine(productID string, sel *VariantSelection) bool {
	if i.Product.ID != productID {
		return false
	}
	a := i.SelectedVariants
	if a == nil {
		a = &VariantSelection{}
	}
	b := sel
	if b == nil {
		b = &VariantSelection{}
	}
	return a.Size == b.Size && a.Color == b.Color
}
