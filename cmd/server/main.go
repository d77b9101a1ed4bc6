package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v83"

	"shophub_back_end/internal/cart"
	"shophub_back_end/internal/config"
	"shophub_back_end/internal/handlers"
	"shophub_back_end/internal/payment"
	"shophub_back_end/internal/routes"
	"shophub_back_end/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration invalide : ", err)
	}

	if cfg.StripeConfigured() {
		stripe.Key = cfg.StripeSecretKey
		log.Println("✅ Stripe initialisé")
	} else {
		log.Println("⚠️ STRIPE_SECRET_KEY manquante — mode démo activé (sessions factices)")
	}

	persister := newCartPersister(cfg)
	payments := payment.NewGateway(cfg.StripeSecretKey, cfg.BusinessURL)
	mailer := newMailer(cfg)

	h := handlers.New(cfg, persister, payments, mailer)

	r := gin.Default()
	routes.RegisterRoutes(r, h)

	log.Println("🚀 Serveur ShopHub lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Serveur arrêté : ", err)
	}
}

// newCartPersister connecte Redis si configuré, sinon repli en mémoire.
// Le panier reste fonctionnel dans tous les cas : la persistance est
// best-effort.
func newCartPersister(cfg *config.Config) cart.Persister {
	if !cfg.RedisConfigured() {
		log.Println("⚠️ REDIS_ADDR manquant — persistance du panier en mémoire")
		return cart.NewMemoryPersister()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("⚠️ Redis injoignable — persistance du panier en mémoire :", err)
		return cart.NewMemoryPersister()
	}

	log.Println("✅ Redis connecté — persistance du panier activée")
	return cart.NewRedisPersister(client)
}

func newMailer(cfg *config.Config) *utils.Mailer {
	if cfg.SMTPConfigured() {
		log.Println("✅ Fournisseur e-mail configuré :", cfg.SMTPHost)
	} else {
		log.Println("⚠️ SMTP_HOST manquant — confirmations de commande en aperçu seul")
	}
	return utils.NewMailer(utils.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	})
}
