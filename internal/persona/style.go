package persona

import (
	"fmt"
	"strings"

	"github.com/redditpersona/persona-bot/internal/models"
)

var formalIndicators = []string{"however", "therefore", "furthermore", "moreover", "consequently"}
var informalIndicators = []string{"lol", "omg", "wtf", "tbh", "imo", "btw", "basically", "like"}

const avgLengthThreshold = 150

// analyzeCommunicationStyle classifies the user on two axes: average body
// length vs the 150-char threshold, and formal vs informal vocabulary counts.
// The 2x2 decision table yields one of four fixed labels.
func analyzeCommunicationStyle(records []models.Record) (string, []models.Citation) {
	totalLength := 0
	formalCount := 0
	informalCount := 0

	for _, rec := range records {
		totalLength += len(rec.Body)
		content := normalize(rec)
		for _, word := range formalIndicators {
			if strings.Contains(content, word) {
				formalCount++
			}
		}
		for _, word := range informalIndicators {
			if strings.Contains(content, word) {
				informalCount++
			}
		}
	}

	avgLength := float64(totalLength) / float64(len(records))

	var style string
	if avgLength > avgLengthThreshold {
		if formalCount > informalCount {
			style = "Formal and detailed"
		} else {
			style = "Conversational and detailed"
		}
	} else {
		if informalCount > formalCount {
			style = "Casual and concise"
		} else {
			style = "Direct and concise"
		}
	}

	cites := []models.Citation{{
		Characteristic: "Communication Style",
		Value:          style,
		Source:         "Language pattern analysis",
		Context:        fmt.Sprintf("Average post length: %.0f chars, Formal: %d, Informal: %d", avgLength, formalCount, informalCount),
	}}

	return style, cites
}
