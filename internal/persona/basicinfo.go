package persona

import (
	"regexp"
	"strings"

	"github.com/redditpersona/persona-bot/internal/models"
)

// keywordLabel is one entry of an ordered keyword table. Tables are slices,
// not maps, so first-match-wins scans are reproducible.
type keywordLabel struct {
	keyword string
	label   string
}

var ageKeywords = []keywordLabel{
	{"teen", "13-19"},
	{"college", "18-25"},
	{"university", "18-25"},
	{"student", "18-25"},
	{"graduated", "22-30"},
	{"career", "25-40"},
	{"retirement", "60+"},
	{"kids", "25-45"},
	{"children", "25-45"},
}

var genderKeywords = []keywordLabel{
	{"boyfriend", "female"},
	{"girlfriend", "male"},
	{"husband", "female"},
	{"wife", "male"},
	{"m/", "male"},
	{"f/", "female"},
}

var locationTriggers = []string{"live in", "from", "in my city", "my state", "my country"}

// locationPatterns capture one or two capitalized words right after each
// trigger phrase. The scanned text is already lowercased, so a trigger with
// no matching capture produces neither a value nor a citation.
var locationPatterns = compileLocationPatterns()

func compileLocationPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(locationTriggers))
	for i, trigger := range locationTriggers {
		patterns[i] = regexp.MustCompile(regexp.QuoteMeta(trigger) + `\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	}
	return patterns
}

var occupationKeywords = []string{
	"work as", "job", "profession", "career", "employed",
	"developer", "teacher", "nurse", "engineer",
}

const unknown = "Unknown"

// extractBasicInfo scans records in order for demographic signals. Each of
// the four fields is first-match-wins: once set it is never overwritten.
func extractBasicInfo(records []models.Record) (models.BasicInfo, []models.Citation) {
	info := models.BasicInfo{
		AgeRange:   unknown,
		Gender:     unknown,
		Location:   unknown,
		Occupation: unknown,
	}
	var cites []models.Citation

	cite := func(characteristic, value, permalink, content string) {
		cites = append(cites, models.Citation{
			Characteristic: characteristic,
			Value:          value,
			Source:         permalink,
			Context:        excerpt(content),
		})
	}

	for _, rec := range records {
		content := normalize(rec)

		for _, kw := range ageKeywords {
			if info.AgeRange != unknown {
				break
			}
			if strings.Contains(content, kw.keyword) {
				info.AgeRange = kw.label
				cite("Age Range", kw.label, rec.Permalink, content)
			}
		}

		for _, kw := range genderKeywords {
			if info.Gender != unknown {
				break
			}
			if strings.Contains(content, kw.keyword) {
				info.Gender = kw.label
				cite("Gender", kw.label, rec.Permalink, content)
			}
		}

		for i, trigger := range locationTriggers {
			if info.Location != unknown {
				break
			}
			if !strings.Contains(content, trigger) {
				continue
			}
			if m := locationPatterns[i].FindStringSubmatch(content); m != nil {
				info.Location = m[1]
				cite("Location", m[1], rec.Permalink, content)
			}
		}

		for _, kw := range occupationKeywords {
			if info.Occupation != unknown {
				break
			}
			if strings.Contains(content, kw) {
				info.Occupation = "Professional/Working"
				cite("Occupation", "Professional/Working", rec.Permalink, content)
			}
		}
	}

	return info, cites
}
