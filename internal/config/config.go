package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config regroupe les options reconnues. Les clés fournisseur sont toutes
// optionnelles : leur absence active le mode démo correspondant.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	BusinessURL string `envconfig:"BUSINESS_URL" default:"http://localhost:3000"`

	// Paiement : une clé présente active la création de vraies sessions
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`

	// Persistance du panier : sans Redis, repli en mémoire
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// E-mail transactionnel : sans hôte SMTP, aucune dépêche (aperçu seul)
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	EmailFrom    string `envconfig:"EMAIL_FROM" default:"orders@shophub.com"`

	CheckoutTimeoutSeconds int `envconfig:"CHECKOUT_TIMEOUT_SECONDS" default:"15"`
}

// Load charge .env puis remplit la configuration depuis l'environnement
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) StripeConfigured() bool { return c.StripeSecretKey != "" }
func (c *Config) RedisConfigured() bool  { return c.RedisAddr != "" }
func (c *Config) SMTPConfigured() bool   { return c.SMTPHost != "" }

func (c *Config) CheckoutTimeout() time.Duration {
	return time.Duration(c.CheckoutTimeoutSeconds) * time.Second
}
