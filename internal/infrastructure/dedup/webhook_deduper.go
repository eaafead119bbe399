package dedup

import (
	"context"
	"sync"
	"time"

	"mpbridge/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisDeduper marks notification keys with SET NX so that several service
// replicas agree on what was already processed.
type RedisDeduper struct {
	client redis.Cmdable
}

var _ interfaces.IWebhookDeduper = (*RedisDeduper)(nil)

func NewRedisDeduper(client redis.Cmdable) *RedisDeduper {
	return &RedisDeduper{client: client}
}

func (d *RedisDeduper) Seen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := d.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}
	// not set => key already there
	return !ok, nil
}

func (d *RedisDeduper) Forget(ctx context.Context, key string) error {
	return d.client.Del(ctx, key).Err()
}

// MemoryDeduper is the single-process fallback used when Redis is not configured.
type MemoryDeduper struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	nextGC time.Time
	now    func() time.Time
}

var _ interfaces.IWebhookDeduper = (*MemoryDeduper)(nil)

func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{seen: make(map[string]time.Time), now: time.Now}
}

func (d *MemoryDeduper) Seen(_ context.Context, key string, ttl time.Duration) (bool, error) {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if exp, ok := d.seen[key]; ok && exp.After(now) {
		return true, nil
	}
	d.seen[key] = now.Add(ttl)

	if now.After(d.nextGC) {
		for k, exp := range d.seen {
			if !exp.After(now) {
				delete(d.seen, k)
			}
		}
		d.nextGC = now.Add(ttl)
	}
	return false, nil
}

func (d *MemoryDeduper) Forget(_ context.Context, key string) error {
	d.mu.Lock()
	delete(d.seen, key)
	d.mu.Unlock()
	return nil
}

// NewWebhookDeduper connects to Redis when addr is set and falls back to the
// in-memory deduper when addr is empty or Redis does not answer a ping. The
// ping error is returned alongside the fallback so callers can log it.
func NewWebhookDeduper(ctx context.Context, addr, pass string, db int) (interfaces.IWebhookDeduper, error) {
	if addr == "" {
		return NewMemoryDeduper(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return NewMemoryDeduper(), err
	}
	return NewRedisDeduper(client), nil
}
