package report

import (
	"strings"
	"testing"
	"time"

	"github.com/redditpersona/persona-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func samplePersona() *models.Persona {
	p := &models.Persona{
		Username:        "kojied",
		GeneratedAt:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		RecordsAnalyzed: 12,
		BasicInfo: models.BasicInfo{
			AgeRange:   "18-25",
			Gender:     "Unknown",
			Location:   "Unknown",
			Occupation: "Professional/Working",
		},
		Interests:          []string{"Programming", "Gaming"},
		PersonalityTraits:  []string{"Curious/Inquisitive"},
		CommunicationStyle: "Casual and concise",
		ValuesAndBeliefs:   []string{"technology"},
		TechnologyUsage:    "Tech-savvy and engaged",
		SocialBehavior:     "Help-seeking and community-oriented",
		Goals:              []string{"personal growth"},
		Challenges:         []string{"work stress"},
		Lifestyle:          "Homebody lifestyle",
		Citations:          make(map[string][]models.Citation),
	}
	for _, category := range models.Categories {
		p.Citations[category] = []models.Citation{}
	}
	p.Citations[models.CategoryBasicInfo] = []models.Citation{
		{
			Characteristic: "Occupation",
			Value:          "Professional/Working",
			Source:         "https://www.reddit.com/r/cscareerquestions/comments/abc/",
			Context:        "i work as a developer",
		},
	}
	return p
}

func TestRenderText(t *testing.T) {
	text := RenderText(samplePersona())

	assert.True(t, strings.HasPrefix(text, "USER PERSONA: kojied\n"))
	assert.Contains(t, text, "Analysis Date: 2024-06-01 10:00:00 UTC")
	assert.Contains(t, text, "Total Records Analyzed: 12")

	// All ten categories appear as section headers.
	for _, category := range models.Categories {
		assert.Contains(t, text, strings.ToUpper(category)+":")
	}

	assert.Contains(t, text, "  Age Range: 18-25")
	assert.Contains(t, text, "  Occupation: Professional/Working")
	assert.Contains(t, text, "  - Programming")
	assert.Contains(t, text, "  Casual and concise")

	// The citations section carries the provenance entries.
	assert.Contains(t, text, "CITATIONS:")
	assert.Contains(t, text, "  Characteristic: Occupation")
	assert.Contains(t, text, "  Source: https://www.reddit.com/r/cscareerquestions/comments/abc/")
	assert.Contains(t, text, "  Context: i work as a developer")
}

func TestRenderText_EmptyCitationCategoriesOmitted(t *testing.T) {
	p := samplePersona()
	text := RenderText(p)

	// Only Basic Information has citations; the citations section must not
	// list empty categories.
	citationsIdx := strings.Index(text, "CITATIONS:")
	citationsPart := text[citationsIdx:]
	assert.Contains(t, citationsPart, models.CategoryBasicInfo+":")
	assert.NotContains(t, citationsPart, models.CategoryLifestyle+":")
}
