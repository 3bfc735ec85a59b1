package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	redisAccountPrefix = "authkit:account:"
	redisEmailIndex    = "authkit:accounts"
)

// RedisStore persists accounts as JSON values keyed by email, with a
// set maintaining the email index for List. Redis executes commands on
// a single thread, so the per-key SET in Upsert is already serialized.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already-connected client (see pkg/redis).
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) List(ctx context.Context) ([]Account, error) {
	emails, err := s.client.SMembers(ctx, redisEmailIndex).Result()
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	if len(emails) == 0 {
		return nil, nil
	}

	keys := make([]string, len(emails))
	for i, email := range emails {
		keys[i] = redisAccountPrefix + email
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]Account, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a value; skip rather than fail the
			// whole listing.
			continue
		}
		var acct Account
		if err := json.Unmarshal([]byte(raw), &acct); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

func (s *RedisStore) Upsert(ctx context.Context, acct Account) error {
	data, err := json.Marshal(acct)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisAccountPrefix+acct.Email, data, 0)
		pipe.SAdd(ctx, redisEmailIndex, acct.Email)
		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	return nil
}

func (s *RedisStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	raw, err := s.client.Get(ctx, redisAccountPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	var acct Account
	if err := json.Unmarshal([]byte(raw), &acct); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &acct, nil
}
