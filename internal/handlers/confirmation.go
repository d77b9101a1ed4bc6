package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/utils"
)

// OrderConfirmation rend le récapitulatif de commande en HTML et texte, puis
// l'envoie par e-mail si un fournisseur est configuré. Sans fournisseur,
// retourne success=false avec l'aperçu HTML.
func (h *Handlers) OrderConfirmation(c *gin.Context) {
	var order models.OrderData
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required order data"})
		return
	}
	if order.OrderID == "" || order.CustomerEmail == "" || len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required order data"})
		return
	}

	html := utils.GenerateOrderEmailHTML(order, h.cfg.BusinessURL)
	text := utils.GenerateOrderEmailText(order)

	if !h.mailer.Configured() {
		log.Println("⚠️ Service e-mail non configuré — aucun envoi, aperçu seul")
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Email service not configured. Add SMTP credentials to environment variables.",
			"preview": html,
		})
		return
	}

	subject := "Order Confirmation #" + order.OrderID
	if err := h.mailer.Send(order.CustomerEmail, subject, html, text); err != nil {
		log.Printf("❌ Échec d'envoi de la confirmation de commande : %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send order confirmation",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order confirmation sent to " + order.CustomerEmail,
	})
}
