package twitter

// apiResponse is the envelope common to v2 endpoints. Successful responses
// carry data and, when expansions were requested, includes; error responses
// carry a problem title/detail/type/status and may list per-resource errors.
// Partial failures carry both.
type apiResponse[T any] struct {
	Data     *T              `json:"data,omitempty"`
	Includes *Includes       `json:"includes,omitempty"`
	Errors   []ResponseError `json:"errors,omitempty"`
	Title    string          `json:"title,omitempty"`
	Detail   string          `json:"detail,omitempty"`
	Type     string          `json:"type,omitempty"`
	Status   int             `json:"status,omitempty"`
}

// Includes holds the expanded objects referenced by the primary data of a
// response.
type Includes struct {
	Tweets []Tweet `json:"tweets,omitempty"`
	Users  []User  `json:"users,omitempty"`
	Media  []Media `json:"media,omitempty"`
}

// ResponseError is a per-resource error reported inside an otherwise
// well-formed response, such as a requested id that does not exist or is not
// visible to the caller.
type ResponseError struct {
	Title        string `json:"title,omitempty"`
	Detail       string `json:"detail,omitempty"`
	Type         string `json:"type,omitempty"`
	ResourceType string `json:"resource_type,omitempty"`
	ResourceID   string `json:"resource_id,omitempty"`
	Parameter    string `json:"parameter,omitempty"`
	Value        string `json:"value,omitempty"`
}

type Media struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url,omitempty"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
	DurationMS      int    `json:"duration_ms,omitempty"`
	Height          int    `json:"height,omitempty"`
	Width           int    `json:"width,omitempty"`
	AltText         string `json:"alt_text,omitempty"`
}
