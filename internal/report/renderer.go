package report

import (
	"fmt"
	"strings"

	"github.com/redditpersona/persona-bot/internal/models"
)

const (
	headerRule  = "=================================================="
	sectionRule = "------------------------------"
)

// RenderText renders a persona as the plain-text report handed to users and
// attached to notification emails.
func RenderText(p *models.Persona) string {
	var text strings.Builder

	text.WriteString(fmt.Sprintf("USER PERSONA: %s\n", p.Username))
	text.WriteString(headerRule + "\n\n")

	text.WriteString(fmt.Sprintf("Analysis Date: %s\n", p.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))
	text.WriteString(fmt.Sprintf("Total Records Analyzed: %d\n\n", p.RecordsAnalyzed))

	for _, category := range models.Categories {
		text.WriteString(strings.ToUpper(category) + ":\n")
		text.WriteString(sectionRule + "\n")
		writeCategory(&text, p, category)
		text.WriteString("\n")
	}

	text.WriteString("CITATIONS:\n")
	text.WriteString(headerRule + "\n\n")

	for _, category := range models.Categories {
		citations := p.Citations[category]
		if len(citations) == 0 {
			continue
		}

		text.WriteString(category + ":\n")
		text.WriteString(sectionRule + "\n")

		for _, citation := range citations {
			text.WriteString(fmt.Sprintf("  Characteristic: %s\n", citation.Characteristic))
			text.WriteString(fmt.Sprintf("  Value: %s\n", citation.Value))
			text.WriteString(fmt.Sprintf("  Source: %s\n", citation.Source))
			text.WriteString(fmt.Sprintf("  Context: %s\n", citation.Context))
			text.WriteString("\n")
		}
	}

	return text.String()
}

func writeCategory(text *strings.Builder, p *models.Persona, category string) {
	switch category {
	case models.CategoryBasicInfo:
		text.WriteString(fmt.Sprintf("  Age Range: %s\n", p.BasicInfo.AgeRange))
		text.WriteString(fmt.Sprintf("  Gender: %s\n", p.BasicInfo.Gender))
		text.WriteString(fmt.Sprintf("  Location: %s\n", p.BasicInfo.Location))
		text.WriteString(fmt.Sprintf("  Occupation: %s\n", p.BasicInfo.Occupation))
	case models.CategoryInterests:
		writeList(text, p.Interests)
	case models.CategoryTraits:
		writeList(text, p.PersonalityTraits)
	case models.CategoryCommunication:
		text.WriteString(fmt.Sprintf("  %s\n", p.CommunicationStyle))
	case models.CategoryValues:
		writeList(text, p.ValuesAndBeliefs)
	case models.CategoryTechUsage:
		text.WriteString(fmt.Sprintf("  %s\n", p.TechnologyUsage))
	case models.CategorySocial:
		text.WriteString(fmt.Sprintf("  %s\n", p.SocialBehavior))
	case models.CategoryGoals:
		writeList(text, p.Goals)
	case models.CategoryChallenges:
		writeList(text, p.Challenges)
	case models.CategoryLifestyle:
		text.WriteString(fmt.Sprintf("  %s\n", p.Lifestyle))
	}
}

func writeList(text *strings.Builder, items []string) {
	for _, item := range items {
		text.WriteString(fmt.Sprintf("  - %s\n", item))
	}
}
