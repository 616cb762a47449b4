package oauth1

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// Transport is an implementation of http.RoundTripper that adds an OAuth
// 1.0a Authorization header to outgoing requests.
//
// Query string parameters always participate in the signature. Form body
// parameters participate when the request carries an
// application/x-www-form-urlencoded body, which the transport buffers in
// order to read. Bodies of any other content type (JSON in particular) are
// not signed, as the protocol requires.
type Transport struct {
	http.RoundTripper
	Credentials *Credentials
}

func NewTransport(t http.RoundTripper, creds *Credentials) *Transport {
	return &Transport{
		RoundTripper: t,
		Credentials:  creds,
	}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrip must not modify the original request.
	req = req.Clone(req.Context())

	params, err := signableParams(req)
	if err != nil {
		return nil, err
	}

	baseURL := *req.URL
	baseURL.RawQuery = ""
	baseURL.Fragment = ""

	header := t.Credentials.AuthorizationHeader(req.Method, baseURL.String(), params)
	if !validHeaderValue(header) {
		return nil, ErrBadAuthHeader
	}
	req.Header.Set("Authorization", header)

	rt := t.RoundTripper
	if rt == nil {
		rt = http.DefaultTransport
	}
	return rt.RoundTrip(req)
}

// signableParams collects the request parameters covered by the signature:
// the query string, plus the form body when present. Reading the form body
// consumes it, so a buffered replacement is installed on the request.
func signableParams(req *http.Request) ([]Param, error) {
	var params []Param
	for key, vals := range req.URL.Query() {
		for _, val := range vals {
			params = append(params, Param{Key: key, Value: val})
		}
	}

	if req.Body == nil || !isFormEncoded(req.Header.Get("Content-Type")) {
		return params, nil
	}

	defer req.Body.Close()
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, req.Body); err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(buf)

	form, err := url.ParseQuery(buf.String())
	if err != nil {
		return nil, err
	}
	for key, vals := range form {
		for _, val := range vals {
			params = append(params, Param{Key: key, Value: val})
		}
	}
	return params, nil
}

func isFormEncoded(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}
