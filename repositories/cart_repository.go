package repositories

import (
	"context"
	"errors"
	"sync"

	"valley-breezes/models"

	"github.com/google/uuid"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepository interface {
	List(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Add(ctx context.Context, item models.CartItem) (models.CartItem, error)
	Update(ctx context.Context, id string, quantity int) (models.CartItem, error)
	Remove(ctx context.Context, id string) (bool, error)
	ClearSession(ctx context.Context, sessionID string) (bool, error)
}

type cartSession struct {
	mu    sync.Mutex
	items []models.CartItem
}

// MemoryCartRepository keeps cart lines in process memory. Mutations on one
// session are serialised by that session's mutex; the outer lock only guards
// the session and item-owner indexes.
type MemoryCartRepository struct {
	mu       sync.RWMutex
	sessions map[string]*cartSession
	owners   map[string]string
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		sessions: make(map[string]*cartSession),
		owners:   make(map[string]string),
	}
}

func (r *MemoryCartRepository) session(sessionID string, create bool) *cartSession {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if ok || !create {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok = r.sessions[sessionID]; !ok {
		s = &cartSession{}
		r.sessions[sessionID] = s
	}
	return s
}

func (r *MemoryCartRepository) owner(itemID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sessionID, ok := r.owners[itemID]
	return sessionID, ok
}

func (r *MemoryCartRepository) List(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	s := r.session(sessionID, false)
	if s == nil {
		return []models.CartItem{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (r *MemoryCartRepository) Add(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	item.ID = uuid.NewString()
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	s := r.session(item.SessionID, true)
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	r.mu.Lock()
	r.owners[item.ID] = item.SessionID
	r.mu.Unlock()

	return item, nil
}

func (r *MemoryCartRepository) Update(ctx context.Context, id string, quantity int) (models.CartItem, error) {
	sessionID, ok := r.owner(id)
	if !ok {
		return models.CartItem{}, ErrCartItemNotFound
	}
	s := r.session(sessionID, false)
	if s == nil {
		return models.CartItem{}, ErrCartItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			return s.items[i], nil
		}
	}
	return models.CartItem{}, ErrCartItemNotFound
}

func (r *MemoryCartRepository) Remove(ctx context.Context, id string) (bool, error) {
	sessionID, ok := r.owner(id)
	if !ok {
		return false, nil
	}
	s := r.session(sessionID, false)
	if s == nil {
		return false, nil
	}

	s.mu.Lock()
	removed := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		r.mu.Lock()
		delete(r.owners, id)
		r.mu.Unlock()
	}
	return removed, nil
}

func (r *MemoryCartRepository) ClearSession(ctx context.Context, sessionID string) (bool, error) {
	s := r.session(sessionID, false)
	if s == nil {
		return false, nil
	}

	s.mu.Lock()
	cleared := s.items
	s.items = nil
	s.mu.Unlock()

	if len(cleared) == 0 {
		return false, nil
	}

	r.mu.Lock()
	for _, it := range cleared {
		delete(r.owners, it.ID)
	}
	r.mu.Unlock()
	return true, nil
}
