package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// recordScript trims expired members, checks the limit and records the
// request in one atomic step. A sorted set per key holds one member per
// request, scored by its unix-nano timestamp.
//
// KEYS[1] window key
// ARGV[1] cutoff score (now - window, unix nanos)
// ARGV[2] limit
// ARGV[3] now score (unix nanos)
// ARGV[4] unique member
// ARGV[5] key TTL in milliseconds
var recordScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1])
local count = redis.call('ZCARD', KEYS[1])
if count >= tonumber(ARGV[2]) then
	return {0, count}
end
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return {1, count + 1}
`)

// RedisStore implements Store on a redis sorted set, giving all gateway
// replicas a shared view of the per-client window.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisStore creates a redis-backed sliding window store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: "ratelimit:",
	}
}

func (s *RedisStore) RecordIfAllowed(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (bool, int64, error) {
	cutoff := now.Add(-window).UnixNano()
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()

	res, err := recordScript.Run(ctx, s.client, []string{s.keyPrefix + key},
		cutoff,
		limit,
		now.UnixNano(),
		member,
		window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return false, 0, err
	}
	if len(res) != 2 {
		return false, 0, errors.New("ratelimit: unexpected script reply")
	}

	return res[0] == 1, res[1], nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.keyPrefix+key).Err()
}
