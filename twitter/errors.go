package twitter

import (
	"errors"
	"fmt"

	"github.com/warblr/go/ratelimit"
)

var (
	// ErrUserContextRequired is returned by endpoints that act on behalf of a
	// user when the client's credentials cannot sign user-context requests.
	ErrUserContextRequired = errors.New("twitter: endpoint requires user-context credentials")

	// ErrAppContextRequired is returned by app-context endpoints when the
	// client holds only temporary credentials from an unfinished
	// authorization handshake.
	ErrAppContextRequired = errors.New("twitter: endpoint requires app-context credentials")

	// ErrBadAuthHeader is returned when computed authorization header bytes
	// are not a valid HTTP header value.
	ErrBadAuthHeader = errors.New("twitter: authorization header contains invalid bytes")

	// ErrNoData is returned when a response decodes cleanly but carries no
	// data object.
	ErrNoData = errors.New("twitter: response contained no data")
)

// APIError is an error response from the API. Status is the HTTP status
// code; Title and Detail come from the problem body when one was present,
// and Errors lists any per-resource errors it carried.
type APIError struct {
	Status    int
	Title     string
	Detail    string
	Errors    []ResponseError
	RateLimit ratelimit.Info
}

func (e *APIError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("twitter: %s (status %d)", e.Title, e.Status)
	}
	return fmt.Sprintf("twitter: request failed (status %d)", e.Status)
}

func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return false
		}
	}
	return true
}
