// Package handlers expose l'API HTTP de la boutique. Les collaborateurs
// (persistance du panier, gateway de paiement, mailer) sont injectés à la
// construction — pas de singleton ambiant.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/cart"
	"shophub_back_end/internal/config"
	"shophub_back_end/internal/payment"
	"shophub_back_end/internal/utils"
)

type Handlers struct {
	cfg      *config.Config
	carts    cart.Persister
	payments *payment.Gateway
	mailer   *utils.Mailer
}

func New(cfg *config.Config, carts cart.Persister, payments *payment.Gateway, mailer *utils.Mailer) *Handlers {
	return &Handlers{cfg: cfg, carts: carts, payments: payments, mailer: mailer}
}

// cartStore charge le panier du client identifié par l'en-tête X-Cart-ID
func (h *Handlers) cartStore(c *gin.Context) (*cart.Store, bool) {
	cartID := c.GetHeader("X-Cart-ID")
	if cartID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing X-Cart-ID header"})
		return nil, false
	}
	return cart.Load(c.Request.Context(), cartID, h.carts, nil), true
}
