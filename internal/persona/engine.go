package persona

import (
	"errors"
	"strings"
	"time"

	"github.com/redditpersona/persona-bot/internal/models"
)

// ErrNoRecords is returned by Infer when there is no content to analyze.
// This is the expected outcome for empty or fully-filtered profiles, not a
// fault; callers surface it as "no records to analyze".
var ErrNoRecords = errors.New("no records to analyze")

// Engine builds personas from a user's records. All inference is
// deterministic keyword matching; the clock only feeds the GeneratedAt
// metadata field.
type Engine struct {
	now func() time.Time
}

// NewEngine creates a persona inference engine.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Infer runs every extractor against the full record sequence and assembles
// their outputs into a Persona. Records must already be filtered of deleted
// and removed content. The input is never modified.
func (e *Engine) Infer(records []models.Record, username string) (*models.Persona, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	p := &models.Persona{
		Username:        username,
		GeneratedAt:     e.now(),
		RecordsAnalyzed: len(records),
		Citations:       make(map[string][]models.Citation, len(models.Categories)),
	}

	// Every category key is present even when no signal fired.
	for _, category := range models.Categories {
		p.Citations[category] = []models.Citation{}
	}

	var cites []models.Citation

	p.BasicInfo, cites = extractBasicInfo(records)
	p.Citations[models.CategoryBasicInfo] = append(p.Citations[models.CategoryBasicInfo], cites...)

	p.Interests, cites = extractInterests(records)
	p.Citations[models.CategoryInterests] = append(p.Citations[models.CategoryInterests], cites...)

	p.PersonalityTraits, cites = extractPersonalityTraits(records)
	p.Citations[models.CategoryTraits] = append(p.Citations[models.CategoryTraits], cites...)

	p.CommunicationStyle, cites = analyzeCommunicationStyle(records)
	p.Citations[models.CategoryCommunication] = append(p.Citations[models.CategoryCommunication], cites...)

	p.ValuesAndBeliefs, cites = extractValues(records)
	p.Citations[models.CategoryValues] = append(p.Citations[models.CategoryValues], cites...)

	p.TechnologyUsage, cites = analyzeTechUsage(records)
	p.Citations[models.CategoryTechUsage] = append(p.Citations[models.CategoryTechUsage], cites...)

	p.SocialBehavior, cites = analyzeSocialBehavior(records)
	p.Citations[models.CategorySocial] = append(p.Citations[models.CategorySocial], cites...)

	p.Goals, cites = extractGoals(records)
	p.Citations[models.CategoryGoals] = append(p.Citations[models.CategoryGoals], cites...)

	p.Challenges, cites = extractChallenges(records)
	p.Citations[models.CategoryChallenges] = append(p.Citations[models.CategoryChallenges], cites...)

	p.Lifestyle, cites = analyzeLifestyle(records)
	p.Citations[models.CategoryLifestyle] = append(p.Citations[models.CategoryLifestyle], cites...)

	return p, nil
}

// normalize is the shared text form every extractor matches against.
// Matching is plain substring containment over this string, so triggers can
// fire inside larger words; that over-matching is accepted behavior.
func normalize(r models.Record) string {
	return strings.ToLower(r.Title + " " + r.Body)
}

const excerptLimit = 200

// excerpt bounds citation context to excerptLimit characters.
func excerpt(s string) string {
	if len(s) <= excerptLimit {
		return s
	}
	return s[:excerptLimit] + "..."
}

func containsAny(content string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
