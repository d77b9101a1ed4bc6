package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/checkout"
	"shophub_back_end/internal/models"
)

// Checkout valide le formulaire puis soumet la commande à l'orchestrateur.
// Chaque requête est une tentative de checkout avec sa propre machine à états.
func (h *Handlers) Checkout(c *gin.Context) {
	store, ok := h.cartStore(c)
	if !ok {
		return
	}

	var form models.CheckoutFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	orch := checkout.NewOrchestrator(h.payments, h.cfg.CheckoutTimeout())
	result, fieldErrs, err := orch.Submit(c.Request.Context(), store, form)

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrs,
			"state":  orch.State(),
		})
		return
	}
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty", "state": orch.State()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create checkout session",
			"message": err.Error(),
			"state":   orch.State(),
		})
		return
	}

	resp := gin.H{
		"orderId":   result.OrderID,
		"sessionId": result.Session.ID,
		"url":       result.Session.URL,
		"summary":   result.Summary,
		"state":     orch.State(),
	}
	if result.Session.DemoMode {
		resp["message"] = result.Session.Message
	}
	c.JSON(http.StatusOK, resp)
}
