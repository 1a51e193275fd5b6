package social

import "strings"

// TrendingTopics returns the static trend table for a platform.
// The table stands in for a real trends API; the rewriter only needs
// plausible topical hashtags to suggest alongside its own.
func TrendingTopics(platform string) []string {
	switch strings.ToLower(platform) {
	case "twitter":
		return []string{"#TechNews", "#AI", "#Breaking", "#Startups"}
	case "linkedin":
		return []string{"#Leadership", "#CareerGrowth", "#Innovation", "#FutureOfWork"}
	case "instagram":
		return []string{"#InstaDaily", "#PhotoOfTheDay", "#Trending", "#Explore"}
	case "reddit":
		return nil
	default:
		return []string{"#Trending"}
	}
}

// MatchTrends returns the trending hashtags whose stem appears in the
// comment text, preserving table order.
func MatchTrends(platform, comment string) []string {
	lowered := strings.ToLower(comment)

	var matched []string
	for _, tag := range TrendingTopics(platform) {
		stem := strings.ToLower(strings.TrimPrefix(tag, "#"))
		if strings.Contains(lowered, stem) {
			matched = append(matched, tag)
		}
	}
	return matched
}
