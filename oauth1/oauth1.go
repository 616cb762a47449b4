// Package oauth1 signs outgoing HTTP requests on behalf of a specific user
// using the OAuth 1.0a protocol with the HMAC-SHA1 signature method, as
// defined in [RFC 5849].
//
// The package produces Authorization header values only; it never verifies
// signatures. Credentials are immutable once constructed and may be shared
// across any number of concurrent signing operations.
//
// [RFC 5849]: https://www.rfc-editor.org/rfc/rfc5849
package oauth1

const (
	signatureMethod = "HMAC-SHA1"
	oauthVersion    = "1.0"
)

// Param is a single request parameter that participates in request signing:
// a query string or form body key/value pair, supplied exactly as it will be
// transmitted. Parameters sent as a JSON body are never signed.
type Param struct {
	Key   string
	Value string
}
