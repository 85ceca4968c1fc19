package persona

import (
	"fmt"
	"strings"

	"github.com/redditpersona/persona-bot/internal/models"
)

var helpSeekingKeywords = []string{"help", "advice", "question", "how to"}

var positiveWords = []string{"great", "awesome", "love", "amazing", "excellent", "fantastic"}
var negativeWords = []string{"hate", "terrible", "awful", "worst", "horrible", "annoying"}

// extractPersonalityTraits applies ratio rules over the whole record set.
// Each rule fires at most once and contributes a single aggregate citation
// carrying the computed counts. Thresholds are strictly greater-than.
func extractPersonalityTraits(records []models.Record) ([]string, []models.Citation) {
	traits := []string{}
	var cites []models.Citation
	total := len(records)

	longCount := 0
	questionCount := 0
	helpCount := 0
	positiveCount := 0
	negativeCount := 0

	for _, rec := range records {
		content := normalize(rec)
		if len(rec.Body) > 200 {
			longCount++
		}
		if strings.Contains(content, "?") {
			questionCount++
		}
		if containsAny(content, helpSeekingKeywords) {
			helpCount++
		}
		for _, word := range positiveWords {
			if strings.Contains(content, word) {
				positiveCount++
			}
		}
		for _, word := range negativeWords {
			if strings.Contains(content, word) {
				negativeCount++
			}
		}
	}

	if float64(longCount)/float64(total) > 0.3 {
		traits = append(traits, "Detailed/Thorough")
		cites = append(cites, models.Citation{
			Characteristic: "Detailed/Thorough",
			Value:          "True",
			Source:         "Writing pattern analysis",
			Context:        fmt.Sprintf("%d/%d posts are detailed (>200 chars)", longCount, total),
		})
	}

	if float64(questionCount)/float64(total) > 0.4 {
		traits = append(traits, "Curious/Inquisitive")
		cites = append(cites, models.Citation{
			Characteristic: "Curious/Inquisitive",
			Value:          "True",
			Source:         "Content analysis",
			Context:        fmt.Sprintf("%d/%d posts contain questions", questionCount, total),
		})
	}

	if float64(helpCount)/float64(total) > 0.3 {
		traits = append(traits, "Help-seeking")
		cites = append(cites, models.Citation{
			Characteristic: "Help-seeking",
			Value:          "True",
			Source:         "Content analysis",
			Context:        fmt.Sprintf("%d/%d posts seek help or advice", helpCount, total),
		})
	}

	if positiveCount > negativeCount*2 {
		traits = append(traits, "Optimistic")
		cites = append(cites, models.Citation{
			Characteristic: "Optimistic",
			Value:          "True",
			Source:         "Language analysis",
			Context:        fmt.Sprintf("Uses positive language more frequently (%d vs %d)", positiveCount, negativeCount),
		})
	}

	return traits, cites
}
