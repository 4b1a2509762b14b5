package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"valley-breezes/models"

	"github.com/redis/go-redis/v9"
)

const quizResultKeyPrefix = "quiz_result:"

type RedisQuizResultStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisQuizResultStore(client *redis.Client, ttl time.Duration) *RedisQuizResultStore {
	return &RedisQuizResultStore{client: client, ttl: ttl}
}

func quizResultKey(sessionID string) string {
	return quizResultKeyPrefix + sessionID
}

func (s *RedisQuizResultStore) Save(ctx context.Context, result models.QuizResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode quiz result: %w", err)
	}
	if err := s.client.Set(ctx, quizResultKey(result.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store quiz result: %w", err)
	}
	return nil
}

func (s *RedisQuizResultStore) Get(ctx context.Context, sessionID string) (models.QuizResult, error) {
	data, err := s.client.Get(ctx, quizResultKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.QuizResult{}, ErrQuizResultNotFound
	}
	if err != nil {
		return models.QuizResult{}, fmt.Errorf("load quiz result: %w", err)
	}

	var result models.QuizResult
	if err := json.Unmarshal(data, &result); err != nil {
		return models.QuizResult{}, fmt.Errorf("decode quiz result: %w", err)
	}
	return result, nil
}
