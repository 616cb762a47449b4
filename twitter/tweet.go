package twitter

import "time"

type Tweet struct {
	ID                ID                  `json:"id"`
	Text              string              `json:"text"`
	AuthorID          *ID                 `json:"author_id,omitempty"`
	ConversationID    *ID                 `json:"conversation_id,omitempty"`
	CreatedAt         *time.Time          `json:"created_at,omitempty"`
	InReplyToUserID   *ID                 `json:"in_reply_to_user_id,omitempty"`
	Lang              string              `json:"lang,omitempty"`
	PossiblySensitive *bool               `json:"possibly_sensitive,omitempty"`
	PublicMetrics     *TweetPublicMetrics `json:"public_metrics,omitempty"`
	ReferencedTweets  []ReferencedTweet   `json:"referenced_tweets,omitempty"`
	ReplySettings     string              `json:"reply_settings,omitempty"`
	Source            string              `json:"source,omitempty"`
	Entities          *TweetEntities      `json:"entities,omitempty"`
	Attachments       *TweetAttachments   `json:"attachments,omitempty"`
}

type TweetPublicMetrics struct {
	RetweetCount uint64 `json:"retweet_count"`
	ReplyCount   uint64 `json:"reply_count"`
	LikeCount    uint64 `json:"like_count"`
	QuoteCount   uint64 `json:"quote_count"`
}

// ReferencedTweet links a tweet to one it replies to, quotes or retweets.
// Type is one of "replied_to", "quoted" or "retweeted".
type ReferencedTweet struct {
	Type string `json:"type"`
	ID   ID     `json:"id"`
}

type TweetEntities struct {
	Annotations []Annotation `json:"annotations,omitempty"`
	Cashtags    []Tag        `json:"cashtags,omitempty"`
	Hashtags    []Tag        `json:"hashtags,omitempty"`
	Mentions    []Mention    `json:"mentions,omitempty"`
	URLs        []URLEntity  `json:"urls,omitempty"`
}

type TweetAttachments struct {
	PollIDs   []string `json:"poll_ids,omitempty"`
	MediaKeys []string `json:"media_keys,omitempty"`
}

// Entity spans are character offsets into the tweet text.

type Tag struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Tag   string `json:"tag"`
}

type Mention struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Username string `json:"username"`
	ID       *ID    `json:"id,omitempty"`
}

type URLEntity struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url,omitempty"`
	DisplayURL  string `json:"display_url,omitempty"`
}

type Annotation struct {
	Start          int     `json:"start"`
	End            int     `json:"end"`
	Probability    float64 `json:"probability"`
	Type           string  `json:"type"`
	NormalizedText string  `json:"normalized_text"`
}
