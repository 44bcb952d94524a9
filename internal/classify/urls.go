package classify

import (
	"net/url"
	"regexp"
	"strings"

	"contentsift/internal/domain"
)

// statusPathRegex matches the /status/<id> segment of an X URL.
// Matching on the path (not the full URL) keeps query params out of the id.
var statusPathRegex = regexp.MustCompile(`/status/(\d+)`)

// videoIDRegex validates a YouTube video id taken from a path segment.
var videoIDRegex = regexp.MustCompile(`^[\w-]+$`)

// parseHost extracts a normalized (lowercase, www-stripped) host from a
// raw URL. Scheme-less input like "x.com/user/status/1" is tolerated.
// Returns "" for anything unparsable.
func parseHost(raw string) string {
	u := parseURL(raw)
	if u == nil {
		return ""
	}
	return normalizeHost(u)
}

// parseURL parses a raw URL, retrying with an https prefix when the
// input has no scheme. Returns nil if the input cannot be parsed into
// a URL with a host.
func parseURL(raw string) *url.URL {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		u, err = url.Parse("https://" + raw)
		if err != nil || u.Host == "" {
			return nil
		}
	}
	return u
}

func normalizeHost(u *url.URL) string {
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

func isXHost(host string) bool {
	return host == "x.com" || host == "twitter.com" || host == "mobile.twitter.com"
}

func isYouTubeHost(host string) bool {
	return host == "youtube.com" || host == "youtu.be"
}

// IsXURL reports whether the URL belongs to the X/Twitter domain family.
// Unparsable input is never an error, just false.
func IsXURL(raw string) bool {
	return isXHost(parseHost(raw))
}

// IsYouTubeURL reports whether the URL belongs to the YouTube domain
// family, including the youtu.be short-link domain.
func IsYouTubeURL(raw string) bool {
	return isYouTubeHost(parseHost(raw))
}

// ExtractContentID extracts the platform-specific content identifier
// from a recognized URL. Unrecognized hosts and recognized-but-
// unparseable paths yield the unknown ContentID; it never panics.
func ExtractContentID(raw string) domain.ContentID {
	unknown := domain.ContentID{
		Platform: domain.PlatformUnknown,
		Type:     domain.TypeUnknown,
	}

	u := parseURL(raw)
	if u == nil {
		return unknown
	}

	host := normalizeHost(u)
	switch {
	case isYouTubeHost(host):
		if id := youtubeVideoID(u, host); id != "" {
			return domain.ContentID{
				Platform: domain.PlatformYouTube,
				Type:     domain.TypeVideo,
				ID:       id,
			}
		}
	case isXHost(host):
		if m := statusPathRegex.FindStringSubmatch(u.Path); m != nil {
			return domain.ContentID{
				Platform: domain.PlatformX,
				Type:     domain.TypeStatus,
				ID:       m[1],
			}
		}
	}

	return unknown
}

// youtubeVideoID resolves a video id from the URL shapes YouTube uses,
// in priority order: watch?v= query param, youtu.be path segment,
// /embed/ path segment, /shorts/ path segment.
func youtubeVideoID(u *url.URL, host string) string {
	if v := u.Query().Get("v"); validVideoID(v) {
		return v
	}

	segments := pathSegments(u)
	if host == "youtu.be" {
		if len(segments) > 0 && validVideoID(segments[0]) {
			return segments[0]
		}
		return ""
	}

	if len(segments) >= 2 && (segments[0] == "embed" || segments[0] == "shorts") {
		if validVideoID(segments[1]) {
			return segments[1]
		}
	}

	return ""
}

func validVideoID(id string) bool {
	return id != "" && videoIDRegex.MatchString(id)
}

func pathSegments(u *url.URL) []string {
	trimmed := strings.Trim(u.Path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
