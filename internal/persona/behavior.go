package persona

import (
	"fmt"
	"strings"

	"github.com/redditpersona/persona-bot/internal/models"
)

var techSubreddits = []string{"technology", "programming", "coding", "apple", "android", "windows", "linux"}
var techKeywords = []string{"app", "software", "computer", "phone", "device", "tech", "digital"}

// analyzeTechUsage classifies the share of tech-related records into three
// tiers. A record qualifies by subreddit membership or by keyword hit.
func analyzeTechUsage(records []models.Record) (string, []models.Citation) {
	techCount := 0
	for _, rec := range records {
		if isTechSubreddit(rec.Subreddit) || containsAny(normalize(rec), techKeywords) {
			techCount++
		}
	}

	ratio := float64(techCount) / float64(len(records))
	var usage string
	switch {
	case ratio > 0.3:
		usage = "Tech-savvy and engaged"
	case ratio > 0.1:
		usage = "Moderate technology user"
	default:
		usage = "Basic technology user"
	}

	cites := []models.Citation{{
		Characteristic: "Technology Usage",
		Value:          usage,
		Source:         "Content analysis",
		Context:        fmt.Sprintf("%d/%d posts are tech-related", techCount, len(records)),
	}}

	return usage, cites
}

func isTechSubreddit(subreddit string) bool {
	lower := strings.ToLower(subreddit)
	for _, tech := range techSubreddits {
		if lower == tech {
			return true
		}
	}
	return false
}

var socialHelpKeywords = []string{"help", "advice", "support"}
var discussionKeywords = []string{"discuss", "opinion", "think", "thoughts"}

// analyzeSocialBehavior picks a single label by fixed priority: help share
// first, then discussion share, then question share, else the default.
func analyzeSocialBehavior(records []models.Record) (string, []models.Citation) {
	total := len(records)
	helpCount := 0
	discussionCount := 0
	questionCount := 0

	for _, rec := range records {
		content := normalize(rec)
		if containsAny(content, socialHelpKeywords) {
			helpCount++
		}
		if containsAny(content, discussionKeywords) {
			discussionCount++
		}
		if strings.Contains(content, "?") {
			questionCount++
		}
	}

	var behavior string
	switch {
	case float64(helpCount)/float64(total) > 0.3:
		behavior = "Help-seeking and community-oriented"
	case float64(discussionCount)/float64(total) > 0.3:
		behavior = "Discussion-focused and opinionated"
	case float64(questionCount)/float64(total) > 0.4:
		behavior = "Curious and inquisitive"
	default:
		behavior = "Selective participant"
	}

	cites := []models.Citation{{
		Characteristic: "Social Behavior",
		Value:          behavior,
		Source:         "Interaction pattern analysis",
		Context:        fmt.Sprintf("Help: %d, Discussion: %d, Questions: %d out of %d", helpCount, discussionCount, questionCount, total),
	}}

	return behavior, cites
}
