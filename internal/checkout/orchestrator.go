// Package checkout orchestre la soumission d'une commande : validation du
// formulaire, appel au gateway de session de paiement, vidage du panier.
package checkout

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"shophub_back_end/internal/cart"
	"shophub_back_end/internal/models"
	"shophub_back_end/internal/payment"
	"shophub_back_end/internal/pricing"
)

// State est l'état courant d'une tentative de checkout
type State string

const (
	StateEmpty      State = "empty"
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// DefaultTimeout borne l'appel au fournisseur de paiement
const DefaultTimeout = 15 * time.Second

var (
	ErrEmptyCart      = &Error{"cart is empty"}
	ErrAlreadyRunning = &Error{"a submission is already in progress"}
	ErrGatewayTimeout = &Error{"payment gateway timed out"}
)

type Error struct{ msg string }

func (e *Error) Error() string { return e.msg }

// SessionCreator est le collaborateur externe qui crée la session de paiement
type SessionCreator interface {
	CreateSession(ctx context.Context, items []models.SessionItem, customerEmail string) (*payment.Session, error)
}

// Result est l'issue d'une soumission réussie
type Result struct {
	OrderID string           `json:"orderId"`
	Session *payment.Session `json:"-"`
	Summary pricing.Summary  `json:"summary"`
}

// Orchestrator pilote la machine à états Empty/Idle → Submitting →
// Completed|Failed. L'appel au gateway est un vrai point de suspension avec
// issues succès, échec et timeout distinctes ; un état Failed autorise une
// nouvelle soumission.
type Orchestrator struct {
	mu       sync.Mutex
	state    State
	sessions SessionCreator
	timeout  time.Duration
}

func NewOrchestrator(sessions SessionCreator, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Orchestrator{state: StateIdle, sessions: sessions, timeout: timeout}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// Submit tente de finaliser la commande. Retourne soit un Result, soit des
// erreurs de champ qui bloquent la soumission, soit une erreur de gateway.
// Sur succès, le panier est vidé et un identifiant de commande est émis.
func (o *Orchestrator) Submit(ctx context.Context, store *cart.Store, form models.CheckoutFormData) (*Result, map[string]string, error) {
	o.mu.Lock()
	if o.state == StateSubmitting {
		o.mu.Unlock()
		return nil, nil, ErrAlreadyRunning
	}
	o.mu.Unlock()

	items := store.Items()
	if len(items) == 0 {
		o.setState(StateEmpty)
		return nil, nil, ErrEmptyCart
	}

	if fieldErrs := ValidateForm(form); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	o.setState(StateSubmitting)

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	sess, err := o.sessions.CreateSession(callCtx, sessionItems(items), form.Email)
	if err != nil {
		o.setState(StateFailed)
		if callCtx.Err() == context.DeadlineExceeded {
			log.Printf("❌ Timeout du gateway de paiement : %v", err)
			return nil, nil, ErrGatewayTimeout
		}
		log.Printf("❌ Échec de la création de session : %v", err)
		return nil, nil, err
	}

	summary := pricing.Summarize(items)
	orderID := uuid.NewString()

	// Vidage avec le contexte parent : celui de l'appel peut déjà être expiré
	store.Clear(ctx)
	o.setState(StateCompleted)

	log.Printf("💳 Commande %s confirmée (session %s, total %.2f$) pour %s",
		orderID, sess.ID, summary.Total, form.Email)

	return &Result{OrderID: orderID, Session: sess, Summary: summary}, nil, nil
}

// sessionItems projette les lignes du panier vers le format du gateway
func sessionItems(items []models.CartItem) []models.SessionItem {
	out := make([]models.SessionItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.SessionItem{
			Name:        item.Product.Name,
			Description: item.Product.Description,
			Images:      item.Product.Images,
			Price:       item.Product.Price,
			Quantity:    item.Quantity,
		})
	}
	return out
}
