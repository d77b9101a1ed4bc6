// Package pricing regroupe les fonctions pures de calcul des montants.
// Arithmétique en dollars flottants, arrondi à deux décimales uniquement
// à l'affichage via FormatPrice.
package pricing

import (
	"fmt"

	"shophub_back_end/internal/models"
)

const (
	// FreeShippingThreshold : livraison offerte au-delà (strictement) de ce montant
	FreeShippingThreshold = 50.0
	ShippingFee           = 9.99
	TaxRate               = 0.08
)

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Subtotal calcule le montant total des lignes du panier
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func Shipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

func Total(subtotal float64) float64 {
	return subtotal + Shipping(subtotal) + Tax(subtotal)
}

// Summarize retourne le détail complet pour un instantané du panier
func Summarize(items []models.CartItem) Summary {
	subtotal := Subtotal(items)
	return Summary{
		Subtotal: subtotal,
		Shipping: Shipping(subtotal),
		Tax:      Tax(subtotal),
		Total:    Total(subtotal),
	}
}

// FormatPrice formate un montant en dollars pour l'affichage
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
