package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisStore keeps entries in Redis so every server process shares them.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps rdb. A zero ttl keeps entries until overwritten.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, slug string) (Entry, bool, error) {
	data, err := s.rdb.Get(ctx, Key(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, errors.Wrapf(err, "reading %s", Key(slug))
	}

	entry, err := decode(data)
	if err != nil {
		return Entry{}, false, err
	}

	return entry, true, nil
}

func (s *RedisStore) Set(ctx context.Context, slug string, entry Entry) error {
	data, err := encode(entry)
	if err != nil {
		return err
	}

	return errors.Wrapf(s.rdb.Set(ctx, Key(slug), data, s.ttl).Err(), "writing %s", Key(slug))
}

func (s *RedisStore) Delete(ctx context.Context, slug string) error {
	return errors.Wrapf(s.rdb.Del(ctx, Key(slug)).Err(), "deleting %s", Key(slug))
}
