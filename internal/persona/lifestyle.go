package persona

import (
	"fmt"
	"strings"

	"github.com/redditpersona/persona-bot/internal/models"
)

var lifestyleCategories = []keywordCategory{
	{"active", []string{"gym", "exercise", "run", "sport", "active", "fitness"}},
	{"social", []string{"friends", "party", "social", "hangout", "meet"}},
	{"homebody", []string{"home", "indoor", "staying in", "cozy", "quiet"}},
	{"busy", []string{"busy", "schedule", "time", "rushed", "deadline"}},
	{"relaxed", []string{"relax", "chill", "calm", "peaceful", "easy"}},
}

// analyzeLifestyle scores each lifestyle bucket by counting keyword
// occurrences across all records (every keyword hit counts, not mere
// presence) and reports the highest-scoring bucket. Ties go to the earlier
// bucket in table order; an all-zero board yields the balanced default.
func analyzeLifestyle(records []models.Record) (string, []models.Citation) {
	scores := make([]int, len(lifestyleCategories))

	for _, rec := range records {
		content := normalize(rec)
		for i, category := range lifestyleCategories {
			for _, keyword := range category.keywords {
				if strings.Contains(content, keyword) {
					scores[i]++
				}
			}
		}
	}

	best := -1
	for i, score := range scores {
		if score > 0 && (best == -1 || score > scores[best]) {
			best = i
		}
	}

	lifestyle := "Balanced lifestyle"
	if best >= 0 {
		lifestyle = strings.Title(lifestyleCategories[best].name) + " lifestyle"
	}

	var board strings.Builder
	for i, category := range lifestyleCategories {
		if i > 0 {
			board.WriteString(", ")
		}
		fmt.Fprintf(&board, "%s: %d", category.name, scores[i])
	}

	cites := []models.Citation{{
		Characteristic: "Lifestyle",
		Value:          lifestyle,
		Source:         "Content analysis",
		Context:        fmt.Sprintf("Lifestyle indicators: %s", board.String()),
	}}

	return lifestyle, cites
}
