package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrNilClient  = errors.New("tracker: redis client is nil")
	ErrNotTracked = errors.New("tracker: no state recorded for key")
)

// Each endpoint's state is stored as a Redis hash in a single key, so the
// tracker works without modification in a Redis cluster environment.
const keyPrefix = "ratelimit:"

// defaultTTL covers the longest rate limit window used by the API (15
// minutes) with some slack, for responses that omit a reset time.
const defaultTTL = 16 * time.Minute

// Tracker records the most recently observed rate limit state per endpoint
// key. It is intended for caller-level backoff coordination: a process about
// to call an endpoint can look up the shared budget before spending a
// request on a guaranteed 429.
type Tracker struct {
	client redis.Cmdable
}

func NewTracker(client redis.Cmdable) (Tracker, error) {
	if client == nil {
		return Tracker{}, ErrNilClient
	}
	return Tracker{client: client}, nil
}

// Observe records the state reported for the named endpoint key. State with
// a known reset time expires one minute after the window resets; otherwise a
// default TTL applies. Observing an empty Info is a no-op.
func (t Tracker) Observe(ctx context.Context, key string, info Info) error {
	if info.Empty() {
		return nil
	}

	fields := make([]interface{}, 0, 6)
	if info.Limit != nil {
		fields = append(fields, "limit", *info.Limit)
	}
	if info.Remaining != nil {
		fields = append(fields, "remaining", *info.Remaining)
	}
	if info.Reset != nil {
		fields = append(fields, "reset", *info.Reset)
	}

	if err := t.client.HSet(ctx, keyPrefix+key, fields...).Err(); err != nil {
		return err
	}

	ttl := defaultTTL
	if reset, ok := info.ResetTime(); ok {
		if until := time.Until(reset) + time.Minute; until > 0 {
			ttl = until
		}
	}
	return t.client.Expire(ctx, keyPrefix+key, ttl).Err()
}

// Lookup returns the last observed state for the named endpoint key. It
// returns ErrNotTracked if nothing has been observed (or the state has
// expired).
func (t Tracker) Lookup(ctx context.Context, key string) (Info, error) {
	vals, err := t.client.HGetAll(ctx, keyPrefix+key).Result()
	if err != nil {
		return Info{}, err
	}
	if len(vals) == 0 {
		return Info{}, ErrNotTracked
	}

	var info Info
	info.Limit = parseField(vals, "limit")
	info.Remaining = parseField(vals, "remaining")
	info.Reset = parseField(vals, "reset")
	return info, nil
}

func parseField(vals map[string]string, name string) *int64 {
	v, ok := vals[name]
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
