package idempotency

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Nonces are single-use, so a gateway-side retry always fails anyway; the
// store exists to absorb network-level retries of the same logical sale
// before they reach the gateway a second time.
const recordTTL = 24 * time.Hour

// Record is the replayable outcome of a completed sale.
type Record struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type Store struct {
	client *redis.Client
	prefix string
}

func NewStore(redisURL, prefix string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &Store{client: client, prefix: prefix}, nil
}

// Lookup returns the recorded response for key, or nil when unseen.
func (s *Store) Lookup(ctx context.Context, key string) (*Record, error) {
	val, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up idempotency key: %v", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode idempotency record: %v", err)
	}
	return &rec, nil
}

// Remember stores the response served for key so a retried request replays
// it instead of invoking the gateway again.
func (s *Store) Remember(ctx context.Context, key string, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode idempotency record: %v", err)
	}
	return s.client.Set(ctx, s.redisKey(key), payload, recordTTL).Err()
}

func (s *Store) redisKey(key string) string {
	return s.prefix + ":" + key
}

func (s *Store) Client() *redis.Client {
	return s.client
}

func (s *Store) Close() error {
	return s.client.Close()
}
