package twitter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblr/go/oauth1"
	"github.com/warblr/go/test"
)

func testClient(t *testing.T, auth Authenticator, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(auth,
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
	)
}

func testUserAuth() UserAuth {
	return NewUserAuth(oauth1.NewCredentials("ck", "cs", "tk", "ts"))
}

func TestLookupUsers(t *testing.T) {
	client := testClient(t, NewBearerToken("apptoken"), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/2/users", r.URL.Path)
		assert.Equal(t, "2244994945,6253282", r.URL.Query().Get("ids"))
		assert.Equal(t, "pinned_tweet_id", r.URL.Query().Get("expansions"))
		assert.Equal(t, "Bearer apptoken", r.Header.Get("Authorization"))

		w.Header().Set("x-rate-limit-limit", "300")
		w.Header().Set("x-rate-limit-remaining", "299")
		w.Header().Set("x-rate-limit-reset", "1700000000")
		w.Write([]byte(`{
			"data": [
				{"id": "2244994945", "name": "X Dev", "username": "XDevelopers"},
				{"id": "6253282", "name": "API", "username": "API"}
			],
			"includes": {
				"tweets": [{"id": "1", "text": "pinned"}]
			}
		}`))
	})

	users, includes, info, err := client.LookupUsers(test.Context(t),
		[]ID{2244994945, 6253282},
		&LookupUsersOptions{Expansions: []string{"pinned_tweet_id"}},
	)
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, ID(2244994945), users[0].ID)
	assert.Equal(t, "XDevelopers", users[0].Username)

	require.NotNil(t, includes)
	require.Len(t, includes.Tweets, 1)
	assert.Equal(t, "pinned", includes.Tweets[0].Text)

	require.NotNil(t, info.Remaining)
	assert.Equal(t, int64(299), *info.Remaining)
}

func TestLookupUsersWithUserAuth(t *testing.T) {
	client := testClient(t, testUserAuth(), func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		assert.True(t, strings.HasPrefix(auth, "OAuth "), "unexpected authorization header: %s", auth)
		assert.Contains(t, auth, `oauth_consumer_key="ck"`)

		w.Write([]byte(`{"data": [{"id": "1", "name": "n", "username": "u"}]}`))
	})

	users, _, _, err := client.LookupUsers(test.Context(t), []ID{1}, nil)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestPostTweet(t *testing.T) {
	client := testClient(t, testUserAuth(), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2/tweets", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "OAuth "))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Hello!", body["text"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"id": "1445880548472328192", "text": "Hello!"}}`))
	})

	tweet, _, err := client.PostTweet(test.Context(t), PostTweetParams{Text: "Hello!"})
	require.NoError(t, err)
	assert.Equal(t, ID(1445880548472328192), tweet.ID)
	assert.Equal(t, "Hello!", tweet.Text)
}

func TestDeleteTweet(t *testing.T) {
	client := testClient(t, testUserAuth(), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/2/tweets/123", r.URL.Path)

		w.Write([]byte(`{"data": {"deleted": true}}`))
	})

	deleted, _, err := client.DeleteTweet(test.Context(t), 123)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCapabilityGating(t *testing.T) {
	refuse := func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not have been sent")
	}

	t.Run("bearer token cannot post", func(t *testing.T) {
		client := testClient(t, NewBearerToken("apptoken"), refuse)
		_, _, err := client.PostTweet(test.Context(t), PostTweetParams{Text: "nope"})
		assert.ErrorIs(t, err, ErrUserContextRequired)
	})

	t.Run("bearer token cannot delete", func(t *testing.T) {
		client := testClient(t, NewBearerToken("apptoken"), refuse)
		_, _, err := client.DeleteTweet(test.Context(t), 123)
		assert.ErrorIs(t, err, ErrUserContextRequired)
	})

	t.Run("user auth can look up users", func(t *testing.T) {
		client := testClient(t, testUserAuth(), func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": [{"id": "1", "name": "n", "username": "u"}]}`))
		})
		_, _, _, err := client.LookupUsers(test.Context(t), []ID{1}, nil)
		assert.NoError(t, err)
	})
}

func TestAPIError(t *testing.T) {
	client := testClient(t, NewBearerToken("apptoken"), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-rate-limit-limit", "300")
		w.Header().Set("x-rate-limit-remaining", "0")
		w.Header().Set("x-rate-limit-reset", "1700000000")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"title": "Too Many Requests", "detail": "Too Many Requests", "status": 429}`))
	})

	_, _, _, err := client.LookupUsers(test.Context(t), []ID{1}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "Too Many Requests", apiErr.Title)
	require.NotNil(t, apiErr.RateLimit.Remaining)
	assert.Equal(t, int64(0), *apiErr.RateLimit.Remaining)
	assert.True(t, apiErr.RateLimit.Exhausted())
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	client := testClient(t, NewBearerToken("apptoken"), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream error"))
	})

	_, _, _, err := client.LookupUsers(test.Context(t), []ID{1}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestResourceErrorsWithoutData(t *testing.T) {
	client := testClient(t, NewBearerToken("apptoken"), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"title": "Not Found Error", "resource_type": "user", "resource_id": "99"}]}`))
	})

	_, _, _, err := client.LookupUsers(test.Context(t), []ID{99}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "Not Found Error", apiErr.Errors[0].Title)
}

func TestNoData(t *testing.T) {
	client := testClient(t, NewBearerToken("apptoken"), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, _, _, err := client.LookupUsers(test.Context(t), []ID{1}, nil)
	assert.True(t, errors.Is(err, ErrNoData))
}
