package cartstore

import (
	"context"
	"errors"
	"sync"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/cart"
)

var ErrNotFound = errors.New("cart not found")

// Store persists session carts keyed by an opaque token. Writes are
// last-writer-wins; there is no merge, a cart belongs to one browsing
// session.
type Store interface {
	Get(ctx context.Context, token string) (*cart.Cart, error)
	Save(ctx context.Context, token string, c *cart.Cart) error
	Delete(ctx context.Context, token string) error
}

// MemoryStore keeps carts in-process. Used when no Redis address is
// configured and in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]cart.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]cart.Cart)}
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[token]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy out so callers never share the stored slice
	c := cart.Cart{Items: append([]cart.Item(nil), stored.Items...)}
	return &c, nil
}

func (s *MemoryStore) Save(ctx context.Context, token string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[token] = cart.Cart{Items: append([]cart.Item(nil), c.Items...)}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, token)
	return nil
}
