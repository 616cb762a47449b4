package twitter

import (
	"context"
	"net/http"
	"strings"

	"github.com/warblr/go/oauth1"
	"github.com/warblr/go/ratelimit"
)

// LookupUsersOptions selects the optional fields and expansions returned by
// user lookups. Zero-valued fields are omitted from the request.
type LookupUsersOptions struct {
	Expansions  []string
	TweetFields []string
	UserFields  []string
}

func (o *LookupUsersOptions) params() []oauth1.Param {
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
	return params
}

// LookupUsers fetches up to 100 users by id. Requires app-context or
// user-context credentials.
func (c *Client) LookupUsers(ctx context.Context, ids []ID, opts *LookupUsersOptions) ([]User, *Includes, ratelimit.Info, error) {
	if err := c.require(CapabilityApp); err != nil {
		return nil, nil, ratelimit.Info{}, err
	}

	data := QueryData{{Key: "ids", Value: joinIDs(ids)}}
	data = append(data, opts.params()...)

	users, includes, info, err := call[[]User](ctx, c, http.MethodGet, "/2/users", data)
	if err != nil {
		return nil, nil, info, err
	}
	return *users, includes, info, nil
}
