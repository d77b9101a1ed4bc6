package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/cart"
	"shophub_back_end/internal/catalog"
	"shophub_back_end/internal/models"
	"shophub_back_end/internal/pricing"
)

// GetCart retourne les lignes du panier avec totaux et détail des montants
func (h *Handlers) GetCart(c *gin.Context) {
	store, ok := h.cartStore(c)
	if !ok {
		return
	}

	items := store.Items()

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"totalItems": store.TotalItems(),
		"summary":    pricing.Summarize(items),
	})
}

// AddToCart ajoute un produit au panier (quantité 1 par défaut)
func (h *Handlers) AddToCart(c *gin.Context) {
	store, ok := h.cartStore(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		return
	}

	product, found := catalog.ByID(input.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var variants *models.VariantSelection
	if input.Size != "" || input.Color != "" {
		variants = &models.VariantSelection{Size: input.Size, Color: input.Color}
	}

	if err := store.Add(c.Request.Context(), product, input.Quantity, variants); err != nil {
		if errors.Is(err, cart.ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Insufficient stock",
				"product":   product.Name,
				"available": product.Stock,
				"requested": input.Quantity,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to cart",
		"items":   store.Items(),
	})
}

// UpdateCartItem fixe la quantité d'un produit ; ≤ 0 le retire du panier
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	store, ok := h.cartStore(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	store.UpdateQuantity(c.Request.Context(), input.ProductID, input.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"items":   store.Items(),
	})
}

// RemoveFromCart retire toutes les lignes du produit, déclinaisons comprises
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	store, ok := h.cartStore(c)
	if !ok {
		return
	}

	store.Remove(c.Request.Context(), c.Param("productId"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from cart",
		"items":   store.Items(),
	})
}

// ClearCart vide complètement le panier
func (h *Handlers) ClearCart(c *gin.Context) {
	store, ok := h.cartStore(c)
	if !ok {
		return
	}

	store.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
