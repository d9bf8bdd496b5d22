// File: services/dialogue/store.go
package dialogue

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"driveline/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore maps session ids to dialogue sessions. Get returns
// (nil, nil) for an unknown id. Both backings evict sessions idle past
// their TTL.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.ChatSession, error)
	Put(ctx context.Context, session *models.ChatSession) error
	Delete(ctx context.Context, id string) error
	Keys(ctx context.Context) ([]string, error)
}

// MemoryStore is the single-process backing: a mutex-guarded map with a
// janitor goroutine sweeping out idle sessions.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ChatSession
	ttl      time.Duration
	stop     chan struct{}
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.ChatSession),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if s.ttl > 0 && time.Since(session.UpdatedAt) > s.ttl {
		delete(s.sessions, id)
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *MemoryStore) Put(ctx context.Context, session *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		keys = append(keys, id)
	}
	return keys, nil
}

// StartJanitor sweeps idle sessions until Close is called.
func (s *MemoryStore) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *MemoryStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if time.Since(session.UpdatedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *MemoryStore) Close() {
	close(s.stop)
}

const sessionKeyPrefix = "chat:session:"

// RedisStore is the multi-process backing; sessions are JSON blobs with a
// key TTL refreshed on every write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.ChatSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) Put(ctx context.Context, session *models.ChatSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, sessionKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, sessionKeyPrefix))
	}
	return ids, nil
}
