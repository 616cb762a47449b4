package twitter

import (
	"context"
	"net/http"
	"strings"

	"github.com/warblr/go/oauth1"
	"github.com/warblr/go/ratelimit"
)

// PostTweetParams is the JSON body of a tweet creation request. Zero-valued
// fields are omitted.
type PostTweetParams struct {
	Text          string          `json:"text,omitempty"`
	QuoteTweetID  *ID             `json:"quote_tweet_id,omitempty"`
	ReplySettings string          `json:"reply_settings,omitempty"`
	Reply         *PostTweetReply `json:"reply,omitempty"`
}

type PostTweetReply struct {
	InReplyToTweetID    ID   `json:"in_reply_to_tweet_id"`
	ExcludeReplyUserIDs []ID `json:"exclude_reply_user_ids,omitempty"`
}

// PostTweet creates a tweet on behalf of the authenticated user. Requires
// user-context credentials.
func (c *Client) PostTweet(ctx context.Context, params PostTweetParams) (*Tweet, ratelimit.Info, error) {
	if err := c.require(CapabilityUser); err != nil {
		return nil, ratelimit.Info{}, err
	}

	tweet, _, info, err := call[Tweet](ctx, c, http.MethodPost, "/2/tweets", JSONData{Value: params})
	if err != nil {
		return nil, info, err
	}
	return tweet, info, nil
}

// LookupTweetsOptions selects the optional fields and expansions returned by
// tweet lookups.
type LookupTweetsOptions struct {
	Expansions  []string
	TweetFields []string
	UserFields  []string
	MediaFields []string
}

func (o *LookupTweetsOptions) params() []oauth1.Param {
	if o == nil {
		return nil
	}
	var params []oauth1.Param
	if len(o.Expansions) > 0 {
		params = append(params, oauth1.Param{Key: "expansions", Value: strings.Join(o.Expansions, ",")})
	}
	if len(o.TweetFields) > 0 {
		params = append(params, oauth1.Param{Key: "tweet.fields", Value: strings.Join(o.TweetFields, ",")})
	}
	if len(o.UserFields) > 0 {
		params = append(params, oauth1.Param{Key: "user.fields", Value: strings.Join(o.UserFields, ",")})
	}
	if len(o.MediaFields) > 0 {
		params = append(params, oauth1.Param{Key: "media.fields", Value: strings.Join(o.MediaFields, ",")})
	}
	return params
}

// LookupTweets fetches up to 100 tweets by id. Requires app-context or
// user-context credentials.
func (c *Client) LookupTweets(ctx context.Context, ids []ID, opts *LookupTweetsOptions) ([]Tweet, *Includes, ratelimit.Info, error) {
	if err := c.require(CapabilityApp); err != nil {
		return nil, nil, ratelimit.Info{}, err
	}

	data := QueryData{{Key: "ids", Value: joinIDs(ids)}}
	data = append(data, opts.params()...)

	tweets, includes, info, err := call[[]Tweet](ctx, c, http.MethodGet, "/2/tweets", data)
	if err != nil {
		return nil, nil, info, err
	}
	return *tweets, includes, info, nil
}

type deleteTweetResult struct {
	Deleted bool `json:"deleted"`
}

// DeleteTweet deletes a tweet owned by the authenticated user. Requires
// user-context credentials.
func (c *Client) DeleteTweet(ctx context.Context, id ID) (bool, ratelimit.Info, error) {
	if err := c.require(CapabilityUser); err != nil {
		return false, ratelimit.Info{}, err
	}

	result, _, info, err := call[deleteTweetResult](ctx, c, http.MethodDelete, "/2/tweets/"+id.String(), nil)
	if err != nil {
		return false, info, err
	}
	return result.Deleted, info, nil
}
