package pagecache

import (
	"fmt"
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"
)

// Store keeps rendered pages until their TTL runs out.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, val []byte, ttl time.Duration) error
	Clear() error
}

type memEntry struct {
	val     []byte
	expires time.Time
}

// MemoryStore is a process local Store, used for development and tests.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memEntry
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memEntry),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(e.expires) {
		delete(s.items, key)
		return nil, false, nil
	}
	return e.val, true, nil
}

func (s *MemoryStore) Set(key string, val []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = memEntry{val: val, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]memEntry)
	return nil
}

const redisPrefix = "page:"

// RedisStore shares cached pages between app instances.
type RedisStore struct {
	pool *redis.Pool
}

func NewRedisStore(pool *redis.Pool) *RedisStore {
	return &RedisStore{pool: pool}
}

func (s *RedisStore) Get(key string) ([]byte, bool, error) {
	conn := s.pool.Get()
	defer conn.Close()

	val, err := redis.Bytes(conn.Do("GET", redisPrefix+key))
	if err == redis.ErrNil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("pagecache: redis GET failed: %w", err)
	}
	return val, true, nil
}

func (s *RedisStore) Set(key string, val []byte, ttl time.Duration) error {
	conn := s.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("SET", redisPrefix+key, val, "PX", ttl.Milliseconds()); err != nil {
		return fmt.Errorf("pagecache: redis SET failed: %w", err)
	}
	return nil
}

// Clear drops every cached page, other keys in the database are left alone.
func (s *RedisStore) Clear() error {
	conn := s.pool.Get()
	defer conn.Close()

	cursor := 0
	for {
		values, err := redis.Values(conn.Do("SCAN", cursor, "MATCH", redisPrefix+"*", "COUNT", 100))
		if err != nil {
			return fmt.Errorf("pagecache: redis SCAN failed: %w", err)
		}
		var keys []string
		if _, err := redis.Scan(values, &cursor, &keys); err != nil {
			return fmt.Errorf("pagecache: bad SCAN reply: %w", err)
		}
		if len(keys) > 0 {
			args := redis.Args{}.AddFlat(keys)
			if _, err := conn.Do("DEL", args...); err != nil {
				return fmt.Errorf("pagecache: redis DEL failed: %w", err)
			}
		}
		if cursor == 0 {
			return nil
		}
	}
}
