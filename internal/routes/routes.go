package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/handlers"
	"shophub_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.Use(middleware.CORS())
	// Preflight sans en-tête Origin : 200 corps vide quand même
	r.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := r.Group("/api")

	// Catalogue
	api.GET("/products", handlers.ListProducts)
	api.GET("/products/:slug", handlers.GetProduct)

	// Panier (identifié par l'en-tête X-Cart-ID)
	api.GET("/cart", h.GetCart)
	api.POST("/cart/add", h.AddToCart)
	api.PUT("/cart/update", h.UpdateCartItem)
	api.DELETE("/cart/:productId", h.RemoveFromCart)
	api.DELETE("/cart", h.ClearCart)

	// Checkout
	api.GET("/shipping-options", handlers.ShippingOptions)
	api.POST("/checkout", h.Checkout)

	// Gateways externes
	api.POST("/create-checkout-session", h.CreateCheckoutSession)
	api.POST("/order-confirmation", h.OrderConfirmation)

	// Contact
	api.POST("/contact", handlers.Contact)
}
