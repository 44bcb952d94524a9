package classify

import "contentsift/internal/domain"

// shortMaxSeconds is the duration ceiling for classifying a video as a
// Short.
const shortMaxSeconds = 60

const (
	broadcastLive     = "live"
	broadcastUpcoming = "upcoming"
)

// IsYouTubeLivestream reports whether a video is currently broadcasting:
// either streaming has an actual start time or the snippet flags the
// broadcast as live. Tolerates missing nested sections and nil input.
func IsYouTubeLivestream(v *domain.YouTubeVideo) bool {
	if v == nil {
		return false
	}
	if v.LiveStreamingDetails != nil && v.LiveStreamingDetails.ActualStartTime != "" {
		return true
	}
	return v.Snippet != nil && v.Snippet.LiveBroadcastContent == broadcastLive
}

// ClassifyYouTubeContent classifies a YouTube video resource into
// livestream, upcoming, short, or video, in that strict priority order.
// Missing nested sections are tolerated; only a nil video is an error.
func ClassifyYouTubeContent(v *domain.YouTubeVideo) domain.Result {
	if v == nil {
		return domain.Result{
			Platform: domain.PlatformYouTube,
			Type:     domain.TypeUnknown,
			Error:    "Invalid video object: expected a non-nil video resource",
		}
	}

	details := map[string]string{"videoId": v.ID}

	if IsYouTubeLivestream(v) {
		if v.LiveStreamingDetails != nil && v.LiveStreamingDetails.ActualStartTime != "" {
			details["actualStartTime"] = v.LiveStreamingDetails.ActualStartTime
		}
		return domain.Result{
			Platform:   domain.PlatformYouTube,
			Type:       domain.TypeLivestream,
			Confidence: confLivestream,
			Details:    details,
		}
	}

	if v.Snippet != nil && v.Snippet.LiveBroadcastContent == broadcastUpcoming {
		if v.LiveStreamingDetails != nil && v.LiveStreamingDetails.ScheduledStartTime != "" {
			details["scheduledStartTime"] = v.LiveStreamingDetails.ScheduledStartTime
		}
		return domain.Result{
			Platform:   domain.PlatformYouTube,
			Type:       domain.TypeUpcoming,
			Confidence: confUpcoming,
			Details:    details,
		}
	}

	if v.ContentDetails != nil && v.ContentDetails.Duration != "" &&
		ParseYouTubeDuration(v.ContentDetails.Duration) <= shortMaxSeconds {
		return domain.Result{
			Platform:   domain.PlatformYouTube,
			Type:       domain.TypeShort,
			Confidence: confShort,
			Details:    details,
		}
	}

	return domain.Result{
		Platform:   domain.PlatformYouTube,
		Type:       domain.TypeVideo,
		Confidence: confVideo,
		Details:    details,
	}
}
