// Package cart est la source de vérité du panier. Le Store est un objet
// explicite injecté là où on en a besoin, pas un singleton ambiant.
package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/pricing"
)

const keyPrefix = "cart:"

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// Logger rend les échecs de persistance observables sans bloquer le panier
type Logger interface {
	Printf(format string, v ...any)
}

// Store tient les lignes du panier en mémoire et les sérialise intégralement
// vers le Persister après chaque mutation. La persistance est best-effort :
// un échec est loggé et le panier continue de fonctionner en mémoire.
type Store struct {
	mu        sync.Mutex
	key       string
	items     []models.CartItem
	persister Persister
	log       Logger
}

// Load restaure le panier depuis le Persister, ou repart d'un panier vide
// en cas d'absence ou d'échec de lecture (loggé, jamais remonté).
func Load(ctx context.Context, cartID string, p Persister, logger Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{key: keyPrefix + cartID, persister: p, log: logger}
	items, err := p.Load(ctx, s.key)
	if err != nil {
		s.log.Printf("⚠️ Lecture du panier %s impossible — on repart d'un panier vide : %v", s.key, err)
		return s
	}
	s.items = items
	return s
}

// Add ajoute quantity exemplaires du produit. Si une ligne porte déjà le même
// triplet (product id, size, color), sa quantité est incrémentée. La quantité
// cumulée est plafonnée par le stock du produit.
func (s *Store) Add(ctx context.Context, product models.Product, quantity int, variants *models.VariantSelection) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].SameLine(product.ID, variants) {
			if s.items[i].Quantity+quantity > product.Stock {
				return ErrInsufficientStock
			}
			s.items[i].Quantity += quantity
			s.persist(ctx)
			return nil
		}
	}

	if quantity > product.Stock {
		return ErrInsufficientStock
	}
	s.items = append(s.items, models.CartItem{
		Product:          product,
		Quantity:         quantity,
		SelectedVariants: variants,
	})
	s.persist(ctx)
	return nil
}

// Remove supprime toutes les lignes du produit, quelle que soit la déclinaison
// choisie. C'est le contrat de la boutique : le bouton "supprimer" retire le
// produit entier du panier.
func (s *Store) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID)
}

func (s *Store) removeLocked(ctx context.Context, productID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
}

// UpdateQuantity fixe la quantité des lignes du produit. Une quantité ≤ 0
// équivaut à Remove : aucune ligne à quantité nulle n'est conservée.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(ctx, productID)
		return
	}
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
		}
	}
	s.persist(ctx)
}

// Clear vide le panier et supprime la clé persistée
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	if err := s.persister.Delete(ctx, s.key); err != nil {
		s.log.Printf("⚠️ Suppression du panier %s échouée (on continue en mémoire) : %v", s.key, err)
	}
}

// Items retourne une copie des lignes du panier
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems est la somme des quantités, recalculée à chaque appel
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subtotal est la somme des (prix unitaire × quantité), recalculée à chaque appel
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Subtotal(s.items)
}

// persist écrit l'instantané complet du panier. Appelé verrou tenu.
func (s *Store) persist(ctx context.Context) {
	if err := s.persister.Save(ctx, s.key, s.items); err != nil {
		s.log.Printf("⚠️ Sauvegarde du panier %s échouée (on continue en mémoire) : %v", s.key, err)
	}
}
