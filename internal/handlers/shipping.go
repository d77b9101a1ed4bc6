package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/pricing"
)

// ShippingOptions détaille les frais de port pour un total de panier donné
func ShippingOptions(c *gin.Context) {
	var cartTotal float64
	if raw := c.Query("cart_total"); raw != "" {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			cartTotal = n
		}
	}

	shipping := pricing.Shipping(cartTotal)

	c.JSON(http.StatusOK, gin.H{
		"freeThreshold": pricing.FreeShippingThreshold,
		"cartTotal":     cartTotal,
		"shipping":      shipping,
		"isFree":        shipping == 0,
	})
}
