package persona

import (
	"fmt"
	"sort"
	"strings"

	"github.com/redditpersona/persona-bot/internal/models"
)

var hobbyKeywords = []string{
	"hobby", "love", "enjoy", "passionate", "interested", "collect",
	"gaming", "reading", "music", "sports", "cooking", "art", "travel",
	"fitness", "photography", "programming", "writing", "movies",
}

// extractInterests derives interests from two independent signals: repeated
// participation in a subreddit, and hobby keywords in the text. The returned
// list is deduplicated in first-seen order; citations are not deduplicated,
// so one interest may carry several keyword-hit citations.
func extractInterests(records []models.Record) ([]string, []models.Citation) {
	interests := []string{}
	seen := make(map[string]bool)
	var cites []models.Citation

	add := func(value string) {
		if !seen[value] {
			seen[value] = true
			interests = append(interests, value)
		}
	}

	// Subreddits with repeated activity, top 10 by count. Counts tie-break
	// on first appearance in the record sequence.
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		if rec.Subreddit == "" {
			continue
		}
		if counts[rec.Subreddit] == 0 {
			order = append(order, rec.Subreddit)
		}
		counts[rec.Subreddit]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 10 {
		order = order[:10]
	}
	for _, subreddit := range order {
		if counts[subreddit] < 2 {
			continue
		}
		add(subreddit)
		cites = append(cites, models.Citation{
			Characteristic: "Interest",
			Value:          subreddit,
			Source:         fmt.Sprintf("Multiple posts in r/%s", subreddit),
			Context:        fmt.Sprintf("Posted %d times in r/%s", counts[subreddit], subreddit),
		})
	}

	for _, rec := range records {
		content := normalize(rec)
		for _, keyword := range hobbyKeywords {
			if !strings.Contains(content, keyword) {
				continue
			}
			value := strings.Title(keyword)
			add(value)
			cites = append(cites, models.Citation{
				Characteristic: "Interest",
				Value:          value,
				Source:         rec.Permalink,
				Context:        excerpt(content),
			})
		}
	}

	return interests, cites
}
