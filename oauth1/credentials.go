package oauth1

import "strings"

// Credentials is a set of OAuth 1.0a credentials that can be used to
// authenticate requests made on behalf of a specific user.
//
// The consumer key and token are stored percent-encoded, ready for direct
// reuse in every signature. The signing key is the percent-encoded consumer
// secret and the percent-encoded token secret joined by a single ampersand;
// neither secret is retained unencoded after construction. A Credentials
// value is never mutated, so it is safe for concurrent use without locking.
type Credentials struct {
	consumerKey string // percent-encoded
	token       string // percent-encoded; empty until a token is obtained
	signingKey  string
}

// NewCredentials returns Credentials for the given consumer key pair and
// token pair. Pass empty token and tokenSecret when no user token has been
// obtained yet, as during the request-token phase of the authorization flow.
func NewCredentials(consumerKey, consumerSecret, token, tokenSecret string) *Credentials {
	return &Credentials{
		consumerKey: encode(consumerKey),
		token:       encode(token),
		signingKey:  encode(consumerSecret) + "&" + encode(tokenSecret),
	}
}

// WithToken returns new Credentials with the same consumer key pair but a
// different token pair.
//
// The consumer secret is not recoverable in plaintext from the stored signing
// key, so the rotated key is assembled from the existing prefix: everything
// up to and including the ampersand separator, followed by the newly encoded
// token secret. WithToken panics if the stored signing key lacks its
// separator; NewCredentials always writes one and percent encoding escapes
// any ampersand inside a secret, so that state is unreachable and indicates a
// bug rather than bad input.
func (c *Credentials) WithToken(token, tokenSecret string) *Credentials {
	sep := strings.IndexByte(c.signingKey, '&')
	if sep < 0 {
		panic("oauth1: signing key is missing its ampersand separator")
	}
	return &Credentials{
		consumerKey: c.consumerKey,
		token:       encode(token),
		signingKey:  c.signingKey[:sep+1] + encode(tokenSecret),
	}
}
