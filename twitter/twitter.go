// Package twitter implements a client for the Twitter API, covering v2
// endpoints plus the v1 OAuth token-exchange endpoints.
//
// Requests are authenticated by an Authenticator, with a closed set of
// capabilities: app-context (bearer token), user-context (OAuth 1.0a user
// credentials) and temporary (mid-authorization credentials, good only for
// the token exchange). Endpoints check the capability they need explicitly
// and refuse credentials that cannot satisfy it.
package twitter

import (
	"github.com/warblr/go/logging"
	"github.com/warblr/go/telemetry"
)

var (
	logger = logging.New("twitter")
	tracer = telemetry.Tracer("go", "twitter")
)
