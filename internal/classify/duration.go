package classify

import (
	"regexp"
	"strconv"
)

// durationRegex matches the compact PT#H#M#S duration notation used by
// the YouTube Data API. Each component is optional; day-based durations
// (P1D) are outside the grammar and parse to zero.
var durationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseYouTubeDuration converts a PT#H#M#S duration into total seconds.
// Any input outside the grammar — empty string, missing PT prefix,
// unsupported components — returns 0. The result is never negative.
func ParseYouTubeDuration(duration string) int {
	m := durationRegex.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}

	hours := componentValue(m[1])
	minutes := componentValue(m[2])
	seconds := componentValue(m[3])

	return hours*3600 + minutes*60 + seconds
}

// componentValue parses a captured numeric component, treating an
// absent capture as zero.
func componentValue(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
