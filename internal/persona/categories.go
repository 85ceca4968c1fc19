package persona

import (
	"strings"

	"github.com/redditpersona/persona-bot/internal/models"
)

// keywordCategory is one named category of an ordered category table.
type keywordCategory struct {
	name     string
	keywords []string
}

var valueCategories = []keywordCategory{
	{"family", []string{"family", "parents", "siblings", "relatives"}},
	{"education", []string{"learning", "education", "school", "knowledge"}},
	{"health", []string{"health", "fitness", "exercise", "wellness"}},
	{"career", []string{"career", "job", "profession", "work"}},
	{"relationships", []string{"friends", "friendship", "dating", "relationship"}},
	{"creativity", []string{"art", "creative", "music", "writing"}},
	{"technology", []string{"tech", "programming", "coding", "innovation"}},
	{"environment", []string{"environment", "climate", "sustainability", "green"}},
	{"social justice", []string{"justice", "equality", "rights", "fair"}},
}

var goalCategories = []keywordCategory{
	{"career advancement", []string{"promotion", "career", "job", "professional", "advance"}},
	{"education", []string{"degree", "study", "learn", "education", "course"}},
	{"health and fitness", []string{"lose weight", "fitness", "healthy", "exercise", "gym"}},
	{"relationships", []string{"relationship", "dating", "marriage", "family"}},
	{"financial", []string{"money", "save", "invest", "financial", "budget"}},
	{"personal growth", []string{"improve", "better", "growth", "develop", "skills"}},
	{"travel", []string{"travel", "trip", "vacation", "visit", "explore"}},
	{"hobbies", []string{"hobby", "passion", "interest", "enjoy", "fun"}},
}

var challengeCategories = []keywordCategory{
	{"work stress", []string{"stress", "work", "job", "pressure", "overwhelmed"}},
	{"financial concerns", []string{"money", "expensive", "afford", "budget", "financial"}},
	{"health issues", []string{"pain", "sick", "health", "doctor", "medical"}},
	{"relationship problems", []string{"relationship", "breakup", "argument", "conflict"}},
	{"time management", []string{"time", "busy", "schedule", "rushed", "deadline"}},
	{"social anxiety", []string{"anxiety", "social", "nervous", "awkward", "uncomfortable"}},
	{"decision making", []string{"decision", "choice", "confused", "unsure", "help"}},
}

func extractValues(records []models.Record) ([]string, []models.Citation) {
	return scanCategories(records, "Value", valueCategories)
}

func extractGoals(records []models.Record) ([]string, []models.Citation) {
	return scanCategories(records, "Goal", goalCategories)
}

func extractChallenges(records []models.Record) ([]string, []models.Citation) {
	return scanCategories(records, "Challenge", challengeCategories)
}

// scanCategories adds each category once, citing the first record where any
// of its keywords appears. Categories are independent: one record can add
// several, but a category never fires twice.
func scanCategories(records []models.Record, characteristic string, categories []keywordCategory) ([]string, []models.Citation) {
	found := []string{}
	seen := make(map[string]bool)
	var cites []models.Citation

	for _, rec := range records {
		content := normalize(rec)
		for _, category := range categories {
			if seen[category.name] {
				continue
			}
			for _, keyword := range category.keywords {
				if strings.Contains(content, keyword) {
					seen[category.name] = true
					found = append(found, category.name)
					cites = append(cites, models.Citation{
						Characteristic: characteristic,
						Value:          category.name,
						Source:         rec.Permalink,
						Context:        excerpt(content),
					})
					break
				}
			}
		}
	}

	return found, cites
}
