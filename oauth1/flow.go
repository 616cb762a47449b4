package oauth1

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/warblr/go/ratelimit"
)

// Endpoints locates the three URLs of the OAuth 1.0a authorization flow.
type Endpoints struct {
	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string
}

// TwitterEndpoints are the endpoints of the Twitter API's OAuth 1.0a flow.
var TwitterEndpoints = Endpoints{
	RequestTokenURL: "https://api.twitter.com/oauth/request_token",
	AuthorizeURL:    "https://api.twitter.com/oauth/authorize",
	AccessTokenURL:  "https://api.twitter.com/oauth/access_token",
}

// TemporaryCredentials wrap the short-lived token pair issued by the
// request-token exchange. They can sign only the remaining calls of the
// authorization flow, not arbitrary user-context requests, and are consumed
// by a single access-token exchange. Obtain them from Flow.RequestToken;
// there is no other constructor.
type TemporaryCredentials struct {
	creds *Credentials

	mu        sync.Mutex
	exchanged bool
}

// AuthorizationHeader signs a request with the temporary credentials. Only
// the token-exchange endpoints accept such signatures; the permanent
// credentials returned by Flow.AccessToken are needed for anything else.
func (t *TemporaryCredentials) AuthorizationHeader(method, baseURL string, params []Param) string {
	return t.creds.AuthorizationHeader(method, baseURL, params)
}

// consume marks the credentials as spent, returning them exactly once.
func (t *TemporaryCredentials) consume() (*Credentials, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.exchanged {
		return nil, ErrCredentialsExchanged
	}
	t.exchanged = true
	return t.creds, nil
}

// Flow runs the two-step exchange that upgrades consumer-only credentials
// into credentials for a specific user: a request-token call producing
// temporary credentials and a redirect URL for out-of-band authorization,
// then an access-token call exchanging the user's verifier code for the
// permanent token pair.
//
// A Flow does not retry; transport and HTTP failures surface directly. It is
// not safe to run both steps concurrently over one set of temporary
// credentials, matching their single-use lifecycle.
type Flow struct {
	// Client sends the exchange requests. http.DefaultClient is used if nil.
	Client *http.Client
	// Endpoints locate the token exchange URLs. The zero value is not
	// usable; most callers want TwitterEndpoints.
	Endpoints Endpoints
}

// RequestToken obtains temporary credentials using the consumer key pair in
// creds, whose token components must be empty. It returns the temporary
// credentials together with the URL to which the user should be redirected to
// authorize the application.
func (f *Flow) RequestToken(ctx context.Context, creds *Credentials, callbackURL string) (*TemporaryCredentials, string, error) {
	params := []Param{{Key: "oauth_callback", Value: callbackURL}}

	token, tokenSecret, err := f.exchange(ctx, creds, f.Endpoints.RequestTokenURL, params)
	if err != nil {
		return nil, "", err
	}

	redirectURL := f.Endpoints.AuthorizeURL + "?oauth_token=" + encode(token)

	tmp := &TemporaryCredentials{creds: creds.WithToken(token, tokenSecret)}
	return tmp, redirectURL, nil
}

// AccessToken exchanges temporary credentials plus the user-supplied verifier
// code for the permanent token pair, consuming the temporary credentials. It
// returns credentials carrying the same consumer key pair and the new token
// pair, ready for arbitrary user-context signing.
func (f *Flow) AccessToken(ctx context.Context, tmp *TemporaryCredentials, verifier string) (*Credentials, error) {
	creds, err := tmp.consume()
	if err != nil {
		return nil, err
	}

	params := []Param{{Key: "oauth_verifier", Value: verifier}}

	token, tokenSecret, err := f.exchange(ctx, creds, f.Endpoints.AccessTokenURL, params)
	if err != nil {
		return nil, err
	}
	return creds.WithToken(token, tokenSecret), nil
}

// exchange POSTs a signed form-encoded request to a token endpoint and
// extracts the oauth_token and oauth_token_secret fields from the
// form-encoded response body.
func (f *Flow) exchange(ctx context.Context, creds *Credentials, endpoint string, params []Param) (token, tokenSecret string, err error) {
	form := url.Values{}
	for _, p := range params {
		form.Set(p.Key, p.Value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	header := creds.AuthorizationHeader(http.MethodPost, endpoint, params)
	if !validHeaderValue(header) {
		return "", "", ErrBadAuthHeader
	}
	req.Header.Set("Authorization", header)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	info := ratelimit.FromHeaders(resp.Header)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", &StatusError{Status: resp.StatusCode, RateLimit: info}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}

	// The exchange endpoints respond with an x-www-form-urlencoded body.
	vals, err := url.ParseQuery(string(body))
	if err != nil {
		return "", "", err
	}

	token = vals.Get("oauth_token")
	if token == "" {
		return "", "", ErrMissingToken
	}
	tokenSecret = vals.Get("oauth_token_secret")
	if tokenSecret == "" {
		return "", "", ErrMissingTokenSecret
	}
	return token, tokenSecret, nil
}
