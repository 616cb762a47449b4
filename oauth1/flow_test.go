package oauth1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlow(t *testing.T, handler http.HandlerFunc) *Flow {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Flow{
		Client: server.Client(),
		Endpoints: Endpoints{
			RequestTokenURL: server.URL + "/oauth/request_token",
			AuthorizeURL:    server.URL + "/oauth/authorize",
			AccessTokenURL:  server.URL + "/oauth/access_token",
		},
	}
}

func TestFlowRequestToken(t *testing.T) {
	var gotAuth string
	var gotBody url.Values

	flow := testFlow(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/oauth/request_token", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotBody = r.PostForm

		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=tmp+token&oauth_token_secret=tmp+secret&oauth_callback_confirmed=true"))
	})

	creds := NewCredentials("consumer", "consumer secret", "", "")

	tmp, redirectURL, err := flow.RequestToken(context.Background(), creds, "https://example.com/callback")
	require.NoError(t, err)

	// The request was signed with the empty-token credentials and carried
	// the callback as a form field.
	assert.True(t, strings.HasPrefix(gotAuth, "OAuth "))
	assert.Contains(t, gotAuth, `oauth_token=""`)
	assert.Equal(t, "https://example.com/callback", gotBody.Get("oauth_callback"))

	// Form decoding turns '+' into a space; the temporary token is
	// percent-encoded into the redirect URL.
	assert.Equal(t, flow.Endpoints.AuthorizeURL+"?oauth_token=tmp%20token", redirectURL)

	require.NotNil(t, tmp)
	assert.Equal(t, "tmp%20token", tmp.creds.token)
	assert.True(t, strings.HasSuffix(tmp.creds.signingKey, "&tmp%20secret"))
}

func TestFlowRequestTokenMissingFields(t *testing.T) {
	testcases := []struct {
		Name string
		Body string
		Err  error
	}{
		{
			Name: "missing token",
			Body: "oauth_token_secret=secret",
			Err:  ErrMissingToken,
		},
		{
			Name: "missing token secret",
			Body: "oauth_token=token",
			Err:  ErrMissingTokenSecret,
		},
		{
			Name: "empty body",
			Body: "",
			Err:  ErrMissingToken,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.Name, func(t *testing.T) {
			body := tc.Body
			flow := testFlow(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			creds := NewCredentials("consumer", "secret", "", "")
			_, _, err := flow.RequestToken(context.Background(), creds, "oob")
			assert.ErrorIs(t, err, tc.Err)
		})
	}
}

func TestFlowRequestTokenErrorStatus(t *testing.T) {
	flow := testFlow(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-rate-limit-limit", "15")
		w.Header().Set("x-rate-limit-remaining", "0")
		w.Header().Set("x-rate-limit-reset", "1700000000")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	creds := NewCredentials("consumer", "secret", "", "")
	_, _, err := flow.RequestToken(context.Background(), creds, "oob")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Status)
	require.NotNil(t, statusErr.RateLimit.Remaining)
	assert.Equal(t, int64(0), *statusErr.RateLimit.Remaining)
	assert.True(t, statusErr.RateLimit.Exhausted())
}

func TestFlowAccessToken(t *testing.T) {
	var gotVerifier string

	flow := testFlow(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/access_token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotVerifier = r.PostForm.Get("oauth_verifier")

		_, _ = w.Write([]byte("oauth_token=permanent&oauth_token_secret=permanentsecret"))
	})

	tmp := &TemporaryCredentials{
		creds: NewCredentials("consumer", "secret", "tmp", "tmpsecret"),
	}

	creds, err := flow.AccessToken(context.Background(), tmp, "verifier123")
	require.NoError(t, err)
	assert.Equal(t, "verifier123", gotVerifier)
	assert.Equal(t, "permanent", creds.token)
	assert.Equal(t, "secret&permanentsecret", creds.signingKey)
}

func TestFlowAccessTokenSingleUse(t *testing.T) {
	flow := testFlow(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("oauth_token=permanent&oauth_token_secret=permanentsecret"))
	})

	tmp := &TemporaryCredentials{
		creds: NewCredentials("consumer", "secret", "tmp", "tmpsecret"),
	}

	_, err := flow.AccessToken(context.Background(), tmp, "verifier")
	require.NoError(t, err)

	// A second exchange over the same temporary credentials must fail.
	_, err = flow.AccessToken(context.Background(), tmp, "verifier")
	assert.ErrorIs(t, err, ErrCredentialsExchanged)
}
