package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "smartbus:idempotency:"

type CheckoutReplayStore struct {
	rdb redis.Cmdable
}

var _ commands.CheckoutReplayStore = (*CheckoutReplayStore)(nil)

func NewCheckoutReplayStore(rdb redis.Cmdable) *CheckoutReplayStore {
	return &CheckoutReplayStore{rdb: rdb}
}

func (s *CheckoutReplayStore) Get(ctx context.Context, key string) (*commands.CheckoutRecord, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get")
	}

	var rec commands.CheckoutRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, errs.Wrap(err, "decode checkout record")
	}
	return &rec, nil
}

// Reserve uses SETNX so only one in-flight request owns the key.
func (s *CheckoutReplayStore) Reserve(ctx context.Context, key string, rec commands.CheckoutRecord, ttl time.Duration) (bool, error) {
	rec.Completed = false
	b, err := json.Marshal(rec)
	if err != nil {
		return false, errs.Wrap(err, "encode checkout record")
	}
	ok, err := s.rdb.SetNX(ctx, keyPrefix+key, b, ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "redis setnx")
	}
	return ok, nil
}

func (s *CheckoutReplayStore) Complete(ctx context.Context, key string, rec commands.CheckoutRecord, ttl time.Duration) error {
	rec.Completed = true
	b, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "encode checkout record")
	}
	if err := s.rdb.Set(ctx, keyPrefix+key, b, ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set")
	}
	return nil
}

func (s *CheckoutReplayStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}
