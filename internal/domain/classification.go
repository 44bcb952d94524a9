// Package domain contains the core business entities and rules.
package domain

// Platform identifies which social network a piece of content belongs to.
type Platform string

const (
	PlatformX       Platform = "x"
	PlatformYouTube Platform = "youtube"
	PlatformUnknown Platform = "unknown"
)

// ContentType is the platform-specific subtype of a classified item.
type ContentType string

const (
	// X subtypes.
	TypePost    ContentType = "post"
	TypeReply   ContentType = "reply"
	TypeRetweet ContentType = "retweet"
	TypeQuote   ContentType = "quote"
	TypeProfile ContentType = "profile"

	// YouTube subtypes.
	TypeVideo      ContentType = "video"
	TypeShort      ContentType = "short"
	TypeLivestream ContentType = "livestream"
	TypeUpcoming   ContentType = "upcoming"

	// TypeStatus tags an extracted X status identifier.
	TypeStatus ContentType = "status"

	TypeUnknown ContentType = "unknown"
)

// Result is the universal classification output record.
// Error is set only when classification could not proceed; in that case
// Confidence is 0 and Type holds a safe default.
type Result struct {
	Platform   Platform          `json:"platform"`
	Type       ContentType       `json:"type"`
	Confidence float64           `json:"confidence"`
	Details    map[string]string `json:"details,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// ContentID is a platform-specific identifier extracted from a URL.
type ContentID struct {
	Platform Platform    `json:"platform"`
	Type     ContentType `json:"type"`
	ID       string      `json:"id"`
}

// XMetadata carries the optional signals reported by the X collector
// alongside the raw text. A nil XMetadata means text-only analysis.
type XMetadata struct {
	IsReply       bool   `json:"isReply,omitempty"`
	IsRetweet     bool   `json:"isRetweet,omitempty"`
	IsQuote       bool   `json:"isQuote,omitempty"`
	InReplyTo     string `json:"inReplyTo,omitempty"`
	QuotedStatus  string `json:"quotedStatus,omitempty"`
	Author        string `json:"author,omitempty"`
	MonitoredUser string `json:"monitoredUser,omitempty"`
}

// YouTubeVideo mirrors the YouTube Data API video resource, limited to
// the fields the classifier reads. Nested sections may be absent.
type YouTubeVideo struct {
	ID                   string                `json:"id"`
	Snippet              *Snippet              `json:"snippet,omitempty"`
	ContentDetails       *ContentDetails       `json:"contentDetails,omitempty"`
	LiveStreamingDetails *LiveStreamingDetails `json:"liveStreamingDetails,omitempty"`
}

// Snippet is the snippet section of a video resource.
type Snippet struct {
	Title                string `json:"title,omitempty"`
	ChannelID            string `json:"channelId,omitempty"`
	PublishedAt          string `json:"publishedAt,omitempty"`
	LiveBroadcastContent string `json:"liveBroadcastContent,omitempty"`
}

// ContentDetails is the contentDetails section of a video resource.
type ContentDetails struct {
	Duration string `json:"duration,omitempty"`
}

// LiveStreamingDetails is the liveStreamingDetails section of a video resource.
type LiveStreamingDetails struct {
	ActualStartTime    string `json:"actualStartTime,omitempty"`
	ScheduledStartTime string `json:"scheduledStartTime,omitempty"`
}

// Stats describes the classifier's static capabilities.
type Stats struct {
	SupportedPlatforms  []Platform    `json:"supportedPlatforms"`
	XContentTypes       []ContentType `json:"xContentTypes"`
	YouTubeContentTypes []ContentType `json:"youtubeContentTypes"`
}
