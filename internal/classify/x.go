package classify

import (
	"regexp"
	"strings"

	"contentsift/internal/domain"
)

// authorUnknown is the sentinel the X collector reports when it could
// not resolve an author handle.
const authorUnknown = "Unknown"

// embeddedURLRegex finds URLs inside free tweet text, for quote detection.
var embeddedURLRegex = regexp.MustCompile(`https?://\S+`)

// profilePathRegex matches a bare-username path like /jack or /jack/.
var profilePathRegex = regexp.MustCompile(`^/(\w+)/?$`)

// reservedXPaths are single-segment X paths that are app surfaces, not
// user profiles.
var reservedXPaths = map[string]bool{
	"home":     true,
	"explore":  true,
	"search":   true,
	"settings": true,
	"i":        true,
}

// xRule is one step of the X subtype decision chain. Rules are evaluated
// in declaration order and the first one that fires wins, which keeps
// the priority contract (metadata flags > author divergence > text
// heuristics) auditable per rule.
type xRule struct {
	name  string
	apply func(text string, md *domain.XMetadata) (domain.ContentType, float64, bool)
}

var xRules = []xRule{
	{
		name: "metadata-retweet",
		apply: func(_ string, md *domain.XMetadata) (domain.ContentType, float64, bool) {
			if md != nil && md.IsRetweet {
				return domain.TypeRetweet, confMetadataRetweet, true
			}
			return "", 0, false
		},
	},
	{
		name: "metadata-quote",
		apply: func(_ string, md *domain.XMetadata) (domain.ContentType, float64, bool) {
			if md != nil && (md.IsQuote || md.QuotedStatus != "") {
				return domain.TypeQuote, confMetadataQuote, true
			}
			return "", 0, false
		},
	},
	{
		name: "metadata-reply",
		apply: func(_ string, md *domain.XMetadata) (domain.ContentType, float64, bool) {
			if md != nil && (md.IsReply || md.InReplyTo != "") {
				return domain.TypeReply, confMetadataReply, true
			}
			return "", 0, false
		},
	},
	{
		name: "author-divergence",
		apply: func(_ string, md *domain.XMetadata) (domain.ContentType, float64, bool) {
			if md == nil || md.Author == "" || md.MonitoredUser == "" {
				return "", 0, false
			}
			if md.Author == authorUnknown || md.MonitoredUser == authorUnknown {
				return "", 0, false
			}
			// Content authored by someone other than the monitored
			// account is a repost surfaced on their timeline.
			if stripHandle(md.Author) != stripHandle(md.MonitoredUser) {
				return domain.TypeRetweet, confAuthorDivergence, true
			}
			return "", 0, false
		},
	},
	{
		name: "text-reply",
		apply: func(text string, _ *domain.XMetadata) (domain.ContentType, float64, bool) {
			if strings.HasPrefix(text, "@") || strings.Contains(text, "Replying to") {
				return domain.TypeReply, confTextReply, true
			}
			return "", 0, false
		},
	},
	{
		name: "text-retweet",
		apply: func(text string, _ *domain.XMetadata) (domain.ContentType, float64, bool) {
			if strings.HasPrefix(text, "RT @") {
				return domain.TypeRetweet, confTextRetweet, true
			}
			return "", 0, false
		},
	},
	{
		name: "text-quote",
		apply: func(text string, _ *domain.XMetadata) (domain.ContentType, float64, bool) {
			if containsXLink(text) {
				return domain.TypeQuote, confTextQuote, true
			}
			return "", 0, false
		},
	},
}

// AnalyzeXContentType decides the X subtype for a piece of text plus its
// optional collector metadata. A nil metadata object means text-only
// analysis. Anything no rule claims is a plain post.
func AnalyzeXContentType(text string, md *domain.XMetadata) (domain.ContentType, float64) {
	trimmed := strings.TrimSpace(text)
	for _, rule := range xRules {
		if contentType, confidence, ok := rule.apply(trimmed, md); ok {
			return contentType, confidence
		}
	}
	return domain.TypePost, confPost
}

// ClassifyXContent classifies a single X item from its URL, text, and
// optional collector metadata.
func ClassifyXContent(rawURL, text string, md *domain.XMetadata) domain.Result {
	if strings.TrimSpace(rawURL) == "" {
		return domain.Result{
			Platform: domain.PlatformUnknown,
			Type:     domain.TypeUnknown,
			Error:    "Invalid URL: expected a non-empty string",
		}
	}
	if !IsXURL(rawURL) {
		return domain.Result{
			Platform: domain.PlatformUnknown,
			Type:     domain.TypeUnknown,
			Error:    "URL is not from X: " + rawURL,
		}
	}

	cid := ExtractContentID(rawURL)
	if cid.ID == "" {
		if username := profileUsername(rawURL); username != "" {
			return domain.Result{
				Platform:   domain.PlatformX,
				Type:       domain.TypeProfile,
				Confidence: confProfile,
				Details:    map[string]string{"username": username},
			}
		}
		// On-domain but neither a status nor a bare profile path.
		return domain.Result{
			Platform:   domain.PlatformX,
			Type:       domain.TypeUnknown,
			Confidence: confOnPlatformUnknown,
		}
	}

	contentType, confidence := AnalyzeXContentType(text, md)
	return domain.Result{
		Platform:   domain.PlatformX,
		Type:       contentType,
		Confidence: confidence,
		Details:    map[string]string{"statusId": cid.ID},
	}
}

// profileUsername returns the username when the URL path is a bare
// profile like x.com/jack, or "" otherwise.
func profileUsername(rawURL string) string {
	u := parseURL(rawURL)
	if u == nil {
		return ""
	}
	m := profilePathRegex.FindStringSubmatch(u.Path)
	if m == nil || reservedXPaths[strings.ToLower(m[1])] {
		return ""
	}
	return m[1]
}

// containsXLink reports whether the text embeds a URL pointing back at
// X/Twitter, the text-level signal for a quote post.
func containsXLink(text string) bool {
	for _, candidate := range embeddedURLRegex.FindAllString(text, -1) {
		if IsXURL(strings.TrimRight(candidate, ".,!?'\");:")) {
			return true
		}
	}
	return false
}

// stripHandle removes a leading @ so handles compare equal regardless of
// how the collector formatted them.
func stripHandle(handle string) string {
	return strings.TrimPrefix(handle, "@")
}
