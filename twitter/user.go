package twitter

import "time"

type User struct {
	ID              ID                 `json:"id"`
	Name            string             `json:"name"`
	Username        string             `json:"username"`
	CreatedAt       *time.Time         `json:"created_at,omitempty"`
	Description     string             `json:"description,omitempty"`
	Location        string             `json:"location,omitempty"`
	PinnedTweetID   *ID                `json:"pinned_tweet_id,omitempty"`
	ProfileImageURL string             `json:"profile_image_url,omitempty"`
	Protected       *bool              `json:"protected,omitempty"`
	PublicMetrics   *UserPublicMetrics `json:"public_metrics,omitempty"`
	URL             string             `json:"url,omitempty"`
	Verified        *bool              `json:"verified,omitempty"`
	Entities        *UserEntities      `json:"entities,omitempty"`
}

type UserPublicMetrics struct {
	FollowersCount uint64 `json:"followers_count"`
	FollowingCount uint64 `json:"following_count"`
	TweetCount     uint64 `json:"tweet_count"`
	ListedCount    uint64 `json:"listed_count"`
}

// UserEntities covers the entity spans of a user's profile url and
// description fields.
type UserEntities struct {
	URL         *UserURLEntities         `json:"url,omitempty"`
	Description *UserDescriptionEntities `json:"description,omitempty"`
}

type UserURLEntities struct {
	URLs []URLEntity `json:"urls,omitempty"`
}

type UserDescriptionEntities struct {
	Cashtags []Tag       `json:"cashtags,omitempty"`
	Hashtags []Tag       `json:"hashtags,omitempty"`
	Mentions []Mention   `json:"mentions,omitempty"`
	URLs     []URLEntity `json:"urls,omitempty"`
}
