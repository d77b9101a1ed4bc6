package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/models"
)

// CreateCheckoutSession crée une session de paiement (réelle ou factice)
// à partir des lignes du panier envoyées par le client.
func (h *Handlers) CreateCheckoutSession(c *gin.Context) {
	var req struct {
		Items         []models.SessionItem `json:"items"`
		CustomerEmail string               `json:"customerEmail"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid items"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid items"})
		return
	}

	sess, err := h.payments.CreateSession(c.Request.Context(), req.Items, req.CustomerEmail)
	if err != nil {
		log.Printf("❌ Erreur création de session de paiement : %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create checkout session",
			"message": err.Error(),
		})
		return
	}

	resp := gin.H{"sessionId": sess.ID, "url": sess.URL}
	if sess.DemoMode {
		resp["message"] = sess.Message
	}
	c.JSON(http.StatusOK, resp)
}
