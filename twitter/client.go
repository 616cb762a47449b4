package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/segmentio/ksuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/warblr/go/flags"
	"github.com/warblr/go/httpclient"
	"github.com/warblr/go/oauth1"
	"github.com/warblr/go/ratelimit"
)

const defaultBaseURL = "https://api.twitter.com"

// Client calls the Twitter API. Construct one with NewClient; the zero value
// is not usable.
//
// A Client is safe for concurrent use.
type Client struct {
	auth    Authenticator
	http    *http.Client
	baseURL string
	tracker *ratelimit.Tracker
}

type Option func(*Client)

// WithHTTPClient replaces the default retrying pooled HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// WithBaseURL points the client at a different API host, mainly for tests.
func WithBaseURL(u string) Option {
	return func(client *Client) {
		client.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithRateLimitTracker records the rate limit headers of each response under
// the endpoint's path.
func WithRateLimitTracker(t *ratelimit.Tracker) Option {
	return func(client *Client) {
		client.tracker = t
	}
}

func NewClient(auth Authenticator, opts ...Option) *Client {
	c := &Client{
		auth:    auth,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.ApplyRetryPolicy(httpclient.DefaultPooledClient())
	}
	return c
}

// require checks that the client's credentials can satisfy the capability an
// endpoint needs. User credentials satisfy app-context endpoints; nothing
// but user credentials satisfies user-context endpoints, and temporary
// credentials satisfy neither.
func (c *Client) require(capability Capability) error {
	have := c.auth.Capability()
	switch capability {
	case CapabilityUser:
		if have != CapabilityUser {
			return ErrUserContextRequired
		}
	case CapabilityApp:
		if have != CapabilityApp && have != CapabilityUser {
			return ErrAppContextRequired
		}
	}
	return nil
}

// raw sends one signed request and returns the response along with its rate
// limit headers. The caller owns the response body.
func (c *Client) raw(ctx context.Context, method, path string, data RequestData) (*http.Response, ratelimit.Info, error) {
	baseURL := c.baseURL + path

	ctx, span := tracer.Start(ctx, "twitter.request", trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("twitter.path", path),
	))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, baseURL, nil)
	if err != nil {
		return nil, ratelimit.Info{}, err
	}

	var params []oauth1.Param
	if data != nil {
		params = data.SignableParams()
		if err := data.Apply(req); err != nil {
			return nil, ratelimit.Info{}, err
		}
	}

	// The signature covers the bare URL, never the query string.
	header := c.auth.AuthorizationHeader(method, baseURL, params)
	if !validHeaderValue(header) {
		return nil, ratelimit.Info{}, ErrBadAuthHeader
	}
	req.Header.Set("Authorization", header)

	requestID := ksuid.New().String()
	log := logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)
	if flags.FlagSystem("twitter-verbose-requests") {
		log.Info("sending request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return nil, ratelimit.Info{}, err
	}

	info := ratelimit.FromHeaders(resp.Header)
	if c.tracker != nil && !info.Empty() {
		if err := c.tracker.Observe(ctx, path, info); err != nil {
			log.Warn("failed to record rate limit", zap.Error(err))
		}
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if flags.FlagSystem("twitter-verbose-requests") {
		log.Info("received response", zap.Int("status", resp.StatusCode))
	}

	return resp, info, nil
}

// call sends a request and decodes the enveloped response into T.
func call[T any](ctx context.Context, c *Client, method, path string, data RequestData) (*T, *Includes, ratelimit.Info, error) {
	resp, info, err := c.raw(ctx, method, path, data)
	if err != nil {
		return nil, nil, info, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, info, err
	}

	var envelope apiResponse[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, nil, info, &APIError{Status: resp.StatusCode, RateLimit: info}
		}
		return nil, nil, info, fmt.Errorf("twitter: decoding response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, info, &APIError{
			Status:    resp.StatusCode,
			Title:     envelope.Title,
			Detail:    envelope.Detail,
			Errors:    envelope.Errors,
			RateLimit: info,
		}
	}

	if envelope.Data == nil {
		if len(envelope.Errors) > 0 {
			return nil, nil, info, &APIError{
				Status:    resp.StatusCode,
				Title:     envelope.Title,
				Detail:    envelope.Detail,
				Errors:    envelope.Errors,
				RateLimit: info,
			}
		}
		return nil, nil, info, ErrNoData
	}

	return envelope.Data, envelope.Includes, info, nil
}
