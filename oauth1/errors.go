package oauth1

import (
	"errors"
	"fmt"

	"github.com/warblr/go/ratelimit"
)

var (
	// ErrMissingToken and ErrMissingTokenSecret are returned when a token
	// exchange response omits the expected form field.
	ErrMissingToken       = errors.New("oauth1: response is missing oauth_token")
	ErrMissingTokenSecret = errors.New("oauth1: response is missing oauth_token_secret")

	// ErrBadAuthHeader is returned if an assembled Authorization header value
	// contains a byte that is not permitted in an HTTP header. This should
	// not occur with correct percent encoding, but is surfaced rather than
	// silently dropped if it does.
	ErrBadAuthHeader = errors.New("oauth1: computed authorization header is not a valid header value")

	// ErrCredentialsExchanged is returned when temporary credentials are
	// presented for exchange a second time. Each set of temporary
	// credentials is good for exactly one exchange.
	ErrCredentialsExchanged = errors.New("oauth1: temporary credentials have already been exchanged")
)

// StatusError reports a non-2xx response from a token exchange endpoint. It
// carries whatever rate limit state the response included, to aid
// caller-level backoff decisions; no retries are attempted here.
type StatusError struct {
	Status    int
	RateLimit ratelimit.Info
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("oauth1: token exchange failed with status %d", e.Status)
}

// validHeaderValue reports whether s may be used as an HTTP header value.
// This mirrors the checks the net/http transport applies before sending.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < ' ' || b == 0x7f {
			return false
		}
	}
	return true
}
