package ratelimit

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackerNilClient(t *testing.T) {
	_, err := NewTracker(nil)
	assert.ErrorIs(t, err, ErrNilClient)
}

func TestTrackerObserve(t *testing.T) {
	db, mock := redismock.NewClientMock()
	tracker, err := NewTracker(db)
	require.NoError(t, err)

	limit := int64(15)
	remaining := int64(3)
	// A reset time in the past falls back to the default TTL, which keeps
	// the expectation deterministic.
	reset := int64(1)

	mock.ExpectHSet("ratelimit:GET /2/users", "limit", limit, "remaining", remaining, "reset", reset).SetVal(3)
	mock.ExpectExpire("ratelimit:GET /2/users", defaultTTL).SetVal(true)

	info := Info{Limit: &limit, Remaining: &remaining, Reset: &reset}
	require.NoError(t, tracker.Observe(context.Background(), "GET /2/users", info))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackerObservePartial(t *testing.T) {
	db, mock := redismock.NewClientMock()
	tracker, err := NewTracker(db)
	require.NoError(t, err)

	remaining := int64(10)
	mock.ExpectHSet("ratelimit:GET /2/tweets", "remaining", remaining).SetVal(1)
	mock.ExpectExpire("ratelimit:GET /2/tweets", defaultTTL).SetVal(true)

	require.NoError(t, tracker.Observe(context.Background(), "GET /2/tweets", Info{Remaining: &remaining}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackerObserveEmpty(t *testing.T) {
	db, mock := redismock.NewClientMock()
	tracker, err := NewTracker(db)
	require.NoError(t, err)

	// Observing empty state issues no commands at all.
	require.NoError(t, tracker.Observe(context.Background(), "GET /2/users", Info{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackerLookup(t *testing.T) {
	db, mock := redismock.NewClientMock()
	tracker, err := NewTracker(db)
	require.NoError(t, err)

	mock.ExpectHGetAll("ratelimit:GET /2/users").SetVal(map[string]string{
		"limit":     "900",
		"remaining": "42",
		"reset":     "1700000000",
	})

	info, err := tracker.Lookup(context.Background(), "GET /2/users")
	require.NoError(t, err)
	require.NotNil(t, info.Limit)
	require.NotNil(t, info.Remaining)
	require.NotNil(t, info.Reset)
	assert.Equal(t, int64(900), *info.Limit)
	assert.Equal(t, int64(42), *info.Remaining)
	assert.Equal(t, int64(1700000000), *info.Reset)
}

func TestTrackerLookupNotTracked(t *testing.T) {
	db, mock := redismock.NewClientMock()
	tracker, err := NewTracker(db)
	require.NoError(t, err)

	mock.ExpectHGetAll("ratelimit:GET /2/unknown").SetVal(map[string]string{})

	_, err = tracker.Lookup(context.Background(), "GET /2/unknown")
	assert.ErrorIs(t, err, ErrNotTracked)
}
