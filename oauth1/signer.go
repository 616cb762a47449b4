package oauth1

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// parameterString merges the OAuth protocol parameters with the
// request-specific parameters into the single canonical string covered by the
// signature: every pair percent-encoded, sorted byte-wise by encoded key and
// then encoded value, joined as k=v with ampersands.
//
// The remote verifier recomputes this string independently, so any deviation
// from the canonical form (wrong sort key, double encoding, a skipped
// parameter) breaks every signature. Exact duplicate pairs collapse; pairs
// sharing a key but not a value are both retained.
func (c *Credentials) parameterString(nonce string, timestamp int64, params []Param) string {
	// The protocol parameters are stored pre-encoded; the timestamp is ASCII
	// digits and so self-encoding.
	pairs := make([]Param, 0, len(params)+6)
	pairs = append(pairs,
		Param{"oauth_consumer_key", c.consumerKey},
		Param{"oauth_nonce", nonce},
		Param{"oauth_signature_method", signatureMethod},
		Param{"oauth_timestamp", strconv.FormatInt(timestamp, 10)},
		Param{"oauth_token", c.token},
		Param{"oauth_version", oauthVersion},
	)
	for _, p := range params {
		pairs = append(pairs, Param{encode(p.Key), encode(p.Value)})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Key != pairs[j].Key {
			return pairs[i].Key < pairs[j].Key
		}
		return pairs[i].Value < pairs[j].Value
	})

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 && p == pairs[i-1] {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// signatureBase builds the signature base string:
// UPPERCASE(method) & encode(baseURL) & encode(parameterString). baseURL must
// exclude any query string; the verifier derives the same value from the bare
// endpoint URL.
func (c *Credentials) signatureBase(method, baseURL, nonce string, timestamp int64, params []Param) string {
	paramString := c.parameterString(nonce, timestamp, params)

	var b strings.Builder
	b.Grow(len(method) + len(baseURL) + len(paramString) + 2)
	b.WriteString(strings.ToUpper(method))
	b.WriteByte('&')
	b.WriteString(encode(baseURL))
	b.WriteByte('&')
	b.WriteString(encode(paramString))
	return b.String()
}

// Signature computes the base64-encoded HMAC-SHA1 request signature over the
// given request components. It is pure: fixed inputs always produce identical
// output. HMAC-SHA1 places no restriction on key length, so any signing key
// built by NewCredentials is usable.
func (c *Credentials) Signature(method, baseURL, nonce string, timestamp int64, params []Param) string {
	mac := hmac.New(sha1.New, []byte(c.signingKey))
	mac.Write([]byte(c.signatureBase(method, baseURL, nonce, timestamp, params)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// AuthorizationHeader returns an Authorization header value authenticating a
// request with the given method, bare URL and signable parameters. A fresh
// nonce and timestamp are generated on every call; headers are never cached
// across requests.
//
// The emitted field order is fixed for testability and debugging. The
// signature is percent-encoded before insertion, since base64 output may
// contain '+', '/' and '='.
func (c *Credentials) AuthorizationHeader(method, baseURL string, params []Param) string {
	n := nonce()
	ts := time.Now().Unix()
	signature := c.Signature(method, baseURL, n, ts, params)

	return fmt.Sprintf(
		`OAuth oauth_consumer_key="%s", oauth_nonce="%s", oauth_signature="%s", oauth_signature_method="HMAC-SHA1", oauth_timestamp="%d", oauth_token="%s", oauth_version="1.0"`,
		c.consumerKey, n, encode(signature), ts, c.token,
	)
}
