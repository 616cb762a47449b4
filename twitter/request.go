package twitter

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/warblr/go/oauth1"
)

// RequestData describes the parameters or body attached to an API request.
//
// The split between SignableParams and Apply reflects the signing rules:
// query string and form body parameters are covered by the OAuth signature
// exactly as transmitted, while JSON bodies are excluded from signing
// entirely.
type RequestData interface {
	// SignableParams returns the parameters that participate in request
	// signing.
	SignableParams() []oauth1.Param
	// Apply attaches the data to an outgoing request as a query string or
	// body.
	Apply(req *http.Request) error
}

// QueryData attaches parameters as the request's query string.
type QueryData []oauth1.Param

func (d QueryData) SignableParams() []oauth1.Param {
	return d
}

func (d QueryData) Apply(req *http.Request) error {
	q := url.Values{}
	for _, p := range d {
		q.Add(p.Key, p.Value)
	}
	req.URL.RawQuery = q.Encode()
	return nil
}

// FormData attaches parameters as an application/x-www-form-urlencoded body.
type FormData []oauth1.Param

func (d FormData) SignableParams() []oauth1.Param {
	return d
}

func (d FormData) Apply(req *http.Request) error {
	form := url.Values{}
	for _, p := range d {
		form.Add(p.Key, p.Value)
	}
	body := form.Encode()
	req.Body = io.NopCloser(strings.NewReader(body))
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return nil
}

// JSONData attaches a value as a JSON body. JSON bodies contribute no
// signable parameters.
type JSONData struct {
	Value any
}

func (d JSONData) SignableParams() []oauth1.Param {
	return nil
}

func (d JSONData) Apply(req *http.Request) error {
	b, err := json.Marshal(d.Value)
	if err != nil {
		return err
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.ContentLength = int64(len(b))
	req.Header.Set("Content-Type", "application/json")
	return nil
}
