package repositories

import (
	"context"
	"errors"
	"sync"

	"valley-breezes/models"
)

var ErrQuizResultNotFound = errors.New("quiz result not found")

// QuizResultStore keeps the last completed quiz per session so the results
// view can read it back.
type QuizResultStore interface {
	Save(ctx context.Context, result models.QuizResult) error
	Get(ctx context.Context, sessionID string) (models.QuizResult, error)
}

type MemoryQuizResultStore struct {
	mu      sync.RWMutex
	results map[string]models.QuizResult
}

func NewMemoryQuizResultStore() *MemoryQuizResultStore {
	return &MemoryQuizResultStore{results: make(map[string]models.QuizResult)}
}

func (s *MemoryQuizResultStore) Save(ctx context.Context, result models.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.SessionID] = result.Clone()
	return nil
}

func (s *MemoryQuizResultStore) Get(ctx context.Context, sessionID string) (models.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[sessionID]
	if !ok {
		return models.QuizResult{}, ErrQuizResultNotFound
	}
	return res.Clone(), nil
}
