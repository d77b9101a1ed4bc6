package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"shophub_back_end/internal/models"
)

// CartTTL : durée de vie d'un panier persisté
const CartTTL = 30 * 24 * time.Hour // 30 jours

// Persister stocke et recharge l'instantané complet d'un panier.
// Chaque écriture porte le panier entier, jamais un fragment.
type Persister interface {
	Load(ctx context.Context, key string) ([]models.CartItem, error)
	Save(ctx context.Context, key string, items []models.CartItem) error
	Delete(ctx context.Context, key string) error
}

// RedisPersister persiste les paniers dans Redis
type RedisPersister struct {
	client *redis.Client
}

func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client}
}

func (p *RedisPersister) Load(ctx context.Context, key string) ([]models.CartItem, error) {
	data, err := p.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // pas de panier sauvegardé
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *RedisPersister) Save(ctx context.Context, key string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return p.client.Set(ctx, key, data, CartTTL).Err()
}

func (p *RedisPersister) Delete(ctx context.Context, key string) error {
	return p.client.Del(ctx, key).Err()
}

// MemoryPersister garde les instantanés en mémoire. Utilisé quand Redis
// n'est pas configuré, et dans les tests.
type MemoryPersister struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]byte)}
}

func (p *MemoryPersister) Load(_ context.Context, key string) ([]models.CartItem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	data, ok := p.data[key]
	if !ok {
		return nil, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *MemoryPersister) Save(_ context.Context, key string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = data
	return nil
}

func (p *MemoryPersister) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.data, key)
	return nil
}
