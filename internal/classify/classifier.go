// Package classify implements the content classification engine for
// X/Twitter posts and YouTube videos. Every operation is a pure function
// of its arguments: no I/O, no state between calls, and no panics on
// malformed input — failures are reported through the Error field of
// the returned result.
package classify

import "contentsift/internal/domain"

// Confidence constants for every classification outcome. Explicit
// metadata flags outrank text heuristics, and the `RT @` marker outranks
// the other text rules.
const (
	confMetadataRetweet  = 0.95
	confMetadataQuote    = 0.85
	confMetadataReply    = 0.85
	confAuthorDivergence = 0.95
	confTextRetweet      = 0.95
	confTextReply        = 0.8
	confTextQuote        = 0.8
	confPost             = 0.7
	confProfile          = 0.8
	confLivestream       = 0.95
	confUpcoming         = 0.85
	confShort            = 0.85
	confVideo            = 0.85

	// confOnPlatformUnknown covers URLs that are on a supported domain
	// but match no known content shape.
	confOnPlatformUnknown = 0.3
)

// Stats returns the classifier's static capability metadata. It does not
// depend on call history.
func Stats() domain.Stats {
	return domain.Stats{
		SupportedPlatforms: []domain.Platform{
			domain.PlatformX,
			domain.PlatformYouTube,
		},
		XContentTypes: []domain.ContentType{
			domain.TypePost,
			domain.TypeReply,
			domain.TypeRetweet,
			domain.TypeQuote,
			domain.TypeProfile,
		},
		YouTubeContentTypes: []domain.ContentType{
			domain.TypeVideo,
			domain.TypeShort,
			domain.TypeLivestream,
			domain.TypeUpcoming,
		},
	}
}
