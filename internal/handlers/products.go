package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shophub_back_end/internal/catalog"
	"shophub_back_end/internal/models"
)

// ListProducts retourne le catalogue, filtrable par catégorie ou mise en avant
func ListProducts(c *gin.Context) {
	var products []models.Product

	switch {
	case c.Query("featured") == "true":
		products = catalog.Featured()
	case c.Query("category") != "":
		products = catalog.ByCategory(models.Category(c.Query("category")))
	default:
		products = catalog.All()
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct retrouve un produit par son slug
func GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, ok := catalog.BySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}
