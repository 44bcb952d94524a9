// Package fixtures provides shared input fixtures for classifier tests.
package fixtures

import "contentsift/internal/domain"

// StatusURL builds an X status URL for the given user and id.
func StatusURL(username, statusID string) string {
	return "https://x.com/" + username + "/status/" + statusID
}

// RetweetMetadata returns collector metadata flagged as a retweet.
func RetweetMetadata() *domain.XMetadata {
	return &domain.XMetadata{
		IsRetweet:     true,
		Author:        "someoneelse",
		MonitoredUser: "watched",
	}
}

// ReplyMetadata returns collector metadata flagged as a reply.
func ReplyMetadata() *domain.XMetadata {
	return &domain.XMetadata{
		IsReply:   true,
		InReplyTo: "1844001",
	}
}

// PlainVideo returns a regular mid-length video resource.
func PlainVideo(id string) *domain.YouTubeVideo {
	return &domain.YouTubeVideo{
		ID: id,
		Snippet: &domain.Snippet{
			Title:                "Weekly devlog",
			ChannelID:            "UCchannel",
			PublishedAt:          "2026-08-20T10:00:00Z",
			LiveBroadcastContent: "none",
		},
		ContentDetails: &domain.ContentDetails{Duration: "PT12M34S"},
	}
}

// ShortVideo returns a video resource under the short threshold.
func ShortVideo(id string) *domain.YouTubeVideo {
	return &domain.YouTubeVideo{
		ID:             id,
		Snippet:        &domain.Snippet{Title: "clip"},
		ContentDetails: &domain.ContentDetails{Duration: "PT45S"},
	}
}

// LiveVideo returns a video resource that is currently broadcasting.
func LiveVideo(id string) *domain.YouTubeVideo {
	return &domain.YouTubeVideo{
		ID: id,
		Snippet: &domain.Snippet{
			Title:                "Launch stream",
			LiveBroadcastContent: "live",
		},
		LiveStreamingDetails: &domain.LiveStreamingDetails{
			ActualStartTime: "2026-08-29T18:00:00Z",
		},
	}
}

// UpcomingVideo returns a scheduled-but-not-started video resource.
func UpcomingVideo(id string) *domain.YouTubeVideo {
	return &domain.YouTubeVideo{
		ID: id,
		Snippet: &domain.Snippet{
			Title:                "Premiere",
			LiveBroadcastContent: "upcoming",
		},
		LiveStreamingDetails: &domain.LiveStreamingDetails{
			ScheduledStartTime: "2026-09-01T20:00:00Z",
		},
	}
}
