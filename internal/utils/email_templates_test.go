package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shophub_back_end/internal/models"
)

func sampleOrder() models.OrderData {
	return models.OrderData{
		OrderID:       "a1b2c3d4",
		CustomerEmail: "jane@example.com",
		Items: []models.OrderItem{
			{Name: "Wireless Headphones", Variants: "Color: Black", Price: 299.99, Quantity: 1},
			{Name: "Yoga Mat", Price: 39.99, Quantity: 2},
		},
		Subtotal: 379.97,
		Shipping: 0,
		Tax:      30.40,
		Total:    410.37,
	}
}

func TestOrderEmailHTML(t *testing.T) {
	order := sampleOrder()
	html := GenerateOrderEmailHTML(order, "http://localhost:3000")

	assert.Contains(t, html, "Order #a1b2c3d4")
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "Wireless Headphones")
	assert.Contains(t, html, "Color: Black")
	assert.Contains(t, html, "$299.99 × 1")
	// Deux tapis à 39.99 : le total de ligne est calculé
	assert.Contains(t, html, "$79.98")
	assert.Contains(t, html, "$379.97")
	assert.Contains(t, html, "$410.37")
	assert.Contains(t, html, `href="http://localhost:3000"`)
	// Les %% du CSS sont bien échappés dans le rendu
	assert.Contains(t, html, "linear-gradient(135deg, #0ea5e9 0%, #d946ef 100%)")
}

func TestOrderEmailShippingLine(t *testing.T) {
	order := sampleOrder()

	// Livraison offerte
	assert.Contains(t, GenerateOrderEmailHTML(order, ""), "<span>Free</span>")
	assert.Contains(t, GenerateOrderEmailText(order), "Shipping: Free")

	// Livraison payante
	order.Shipping = 9.99
	assert.Contains(t, GenerateOrderEmailHTML(order, ""), "<span>$9.99</span>")
	assert.Contains(t, GenerateOrderEmailText(order), "Shipping: $9.99")
}

func TestOrderEmailText(t *testing.T) {
	text := GenerateOrderEmailText(sampleOrder())

	assert.Contains(t, text, "Order #a1b2c3d4")
	assert.Contains(t, text, "Wireless Headphones (Color: Black)")
	assert.Contains(t, text, "$39.99 × 2 = $79.98")
	assert.Contains(t, text, "Subtotal: $379.97")
	assert.Contains(t, text, "Total: $410.37")
	// Pas de balises HTML dans l'alternative texte
	assert.NotContains(t, text, "<div")
}
