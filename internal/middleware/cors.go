package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS autorise tous les fronts et répond 200 corps vide aux preflights
func CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "X-Cart-ID"},
		OptionsResponseStatusCode: http.StatusOK,
	}
	return cors.New(cfg)
}
