// Package payment crée les sessions de paiement Stripe, avec repli en mode
// démo quand aucune clé n'est configurée.
package payment

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"

	"shophub_back_end/internal/models"
)

// MockSessionPrefix préfixe les identifiants de session renvoyés en mode démo
const MockSessionPrefix = "mock_session_"

const (
	mockSuccessPath = "/checkout/success"
	demoMessage     = "Demo mode: Stripe keys not configured. Add STRIPE_SECRET_KEY to enable real payments."
)

var ErrNoItems = errors.New("no items")

// Session est le résultat d'une création de session, réelle ou factice
type Session struct {
	ID       string
	URL      string
	DemoMode bool
	Message  string
}

// Gateway encapsule l'appel au fournisseur de paiement externe
type Gateway struct {
	secretKey   string
	businessURL string
}

// NewGateway construit le gateway. Une clé vide active le mode démo.
func NewGateway(secretKey, businessURL string) *Gateway {
	return &Gateway{secretKey: secretKey, businessURL: businessURL}
}

// CreateSession crée une session de paiement pour les lignes données.
// Sans clé Stripe, retourne une session factice déterministe pointant vers
// la page de succès statique.
func (g *Gateway) CreateSession(ctx context.Context, items []models.SessionItem, customerEmail string) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	if g.secretKey == "" {
		log.Println("⚠️ Stripe non configuré — session factice renvoyée")
		return &Session{
			ID:       MockSessionPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10),
			URL:      mockSuccessPath,
			DemoMode: true,
			Message:  demoMessage,
		}, nil
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Name),
					Description: stripe.String(item.Description),
					Images:      stripe.StringSlice(item.Images),
				},
				// Conversion en cents
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(customerEmail),
		SuccessURL:         stripe.String(g.businessURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(g.businessURL + "/checkout/cancel"),
		Metadata: map[string]string{
			"customerEmail": customerEmail,
			"orderDate":     time.Now().UTC().Format(time.RFC3339),
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe : %v", err)
		return nil, err
	}

	log.Printf("💳 Session de paiement créée : %s pour %s", sess.ID, customerEmail)
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}
