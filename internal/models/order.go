package models

// SessionItem est une ligne envoyée au gateway de session de paiement
type SessionItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
}

// OrderItem est une ligne du récapitulatif de commande envoyé par e-mail
type OrderItem struct {
	Name     string  `json:"name"`
	Variants string  `json:"variants,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderData est le corps attendu par le gateway de confirmation de commande
type OrderData struct {
	OrderID       string      `json:"orderId"`
	CustomerEmail string      `json:"customerEmail"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Shipping      float64     `json:"shipping"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
}
