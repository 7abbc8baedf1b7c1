package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"telia-restaurant/models"
)

type cartEntry struct {
	cart     *models.Cart
	lastSeen time.Time
}

// CartService holds one in-memory cart per browsing session, keyed by an
// opaque session token. Carts are never persisted; an idle session's cart
// is swept after the configured TTL.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
	ttl   time.Duration
}

func NewCartService(ttl time.Duration) *CartService {
	return &CartService{
		carts: make(map[string]*cartEntry),
		ttl:   ttl,
	}
}

func (s *CartService) NewSessionID() string {
	return uuid.NewString()
}

// GetOrCreate returns the session's cart, creating an empty one on first
// touch, and refreshes the session's idle timer.
func (s *CartService) GetOrCreate(sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		entry = &cartEntry{cart: models.NewCart()}
		s.carts[sessionID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.cart
}

func (s *CartService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// StartJanitor sweeps expired carts every interval until ctx is cancelled.
func (s *CartService) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(time.Now())
			}
		}
	}()
}

func (s *CartService) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.carts {
		if now.Sub(entry.lastSeen) > s.ttl {
			delete(s.carts, id)
		}
	}
}
