package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/checkout"
	"shophub_back_end/internal/models"
)

// Contact valide le formulaire de contact et accuse réception
func Contact(c *gin.Context) {
	var form models.ContactFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if fieldErrs := checkout.ValidateContact(form); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrs,
		})
		return
	}

	log.Printf("📨 Message de contact reçu de %s (%s)", form.Name, form.Email)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thanks for reaching out! We'll get back to you soon.",
	})
}
