package twitter

import (
	"github.com/warblr/go/oauth1"
)

// Capability identifies the class of requests a set of credentials may
// authenticate.
type Capability int

const (
	// CapabilityApp credentials authenticate requests made on behalf of the
	// application itself.
	CapabilityApp Capability = iota
	// CapabilityUser credentials authenticate requests made on behalf of a
	// specific user, and can do anything app credentials can.
	CapabilityUser
	// CapabilityTemporary credentials authenticate only the remaining calls
	// of an in-flight authorization handshake.
	CapabilityTemporary
)

// Authenticator produces the Authorization header value for an outgoing
// request from its method, bare URL (no query string) and signable
// parameters.
type Authenticator interface {
	AuthorizationHeader(method, baseURL string, params []oauth1.Param) string
	Capability() Capability
}

// BearerToken authenticates app-context requests with an OAuth 2.0 bearer
// token. The header value is fixed at construction; it does not depend on
// the request being authenticated.
type BearerToken struct {
	header string
}

func NewBearerToken(token string) BearerToken {
	return BearerToken{header: "Bearer " + token}
}

func (b BearerToken) AuthorizationHeader(_, _ string, _ []oauth1.Param) string {
	return b.header
}

func (b BearerToken) Capability() Capability {
	return CapabilityApp
}

// UserAuth authenticates user-context requests by signing them with OAuth
// 1.0a user credentials.
type UserAuth struct {
	creds *oauth1.Credentials
}

func NewUserAuth(creds *oauth1.Credentials) UserAuth {
	return UserAuth{creds: creds}
}

func (u UserAuth) AuthorizationHeader(method, baseURL string, params []oauth1.Param) string {
	return u.creds.AuthorizationHeader(method, baseURL, params)
}

func (u UserAuth) Capability() Capability {
	return CapabilityUser
}

// TemporaryAuth wraps the temporary credentials issued during an
// authorization handshake. It signs like user credentials but is accepted
// only by the token-exchange endpoints, never by regular user-context
// endpoints.
type TemporaryAuth struct {
	tmp *oauth1.TemporaryCredentials
}

func NewTemporaryAuth(tmp *oauth1.TemporaryCredentials) TemporaryAuth {
	return TemporaryAuth{tmp: tmp}
}

func (t TemporaryAuth) AuthorizationHeader(method, baseURL string, params []oauth1.Param) string {
	return t.tmp.AuthorizationHeader(method, baseURL, params)
}

func (t TemporaryAuth) Capability() Capability {
	return CapabilityTemporary
}
