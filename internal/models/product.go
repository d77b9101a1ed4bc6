package models

// Category regroupe les produits du catalogue
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryHomeLiving  Category = "home-living"
	CategoryBeauty      Category = "beauty"
	CategorySports      Category = "sports"
	CategoryAll         Category = "all"
)

type ProductVariant struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // "size" ou "color"
	Name      string `json:"name"`
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Price         float64          `json:"price"`
	OriginalPrice float64          `json:"originalPrice,omitempty"`
	Discount      int              `json:"discount,omitempty"`
	Category      Category         `json:"category"`
	Images        []string         `json:"images"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	Stock         int              `json:"stock"`
	InStock       bool             `json:"inStock"`
	Featured      bool             `json:"featured,omitempty"`
	Rating        float64          `json:"rating,omitempty"`
	Reviews       int              `json:"reviews,omitempty"`
}
