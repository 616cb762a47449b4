// Package ratelimit handles the rate limit metadata reported by the Twitter
// API.
//
// Every response from the API carries x-rate-limit-* headers describing the
// budget of the endpoint that served it. Info captures those headers, and
// Tracker records the most recent Info per endpoint key in a Redis server so
// that cooperating processes can share backoff decisions.
//
// The package performs no limiting itself: all retry and backoff policy
// belongs to the caller.
package ratelimit

import (
	"net/http"
	"strconv"
	"time"
)

const (
	headerLimit     = "x-rate-limit-limit"
	headerRemaining = "x-rate-limit-remaining"
	headerReset     = "x-rate-limit-reset"
)

// Info holds the rate limit state reported by an endpoint. A nil field means
// the corresponding header was absent from the response.
type Info struct {
	// Limit is the request ceiling for the endpoint within its reset window.
	Limit *int64
	// Remaining is the number of requests left before the window resets.
	Remaining *int64
	// Reset is the Unix time in seconds at which the window resets.
	Reset *int64
}

// FromHeaders extracts rate limit state from a set of response headers.
// Absent or unparseable headers leave the corresponding field nil.
func FromHeaders(h http.Header) Info {
	return Info{
		Limit:     parseIntHeader(h, headerLimit),
		Remaining: parseIntHeader(h, headerRemaining),
		Reset:     parseIntHeader(h, headerReset),
	}
}

// Empty reports whether no rate limit state was present at all.
func (i Info) Empty() bool {
	return i.Limit == nil && i.Remaining == nil && i.Reset == nil
}

// ResetTime returns the time at which the window resets, if reported.
func (i Info) ResetTime() (time.Time, bool) {
	if i.Reset == nil {
		return time.Time{}, false
	}
	return time.Unix(*i.Reset, 0), true
}

// Exhausted reports whether the endpoint has no remaining budget.
func (i Info) Exhausted() bool {
	return i.Remaining != nil && *i.Remaining == 0
}

func parseIntHeader(h http.Header, name string) *int64 {
	v := h.Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
