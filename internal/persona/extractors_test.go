package persona

import (
	"fmt"
	"strings"
	"testing"

	"github.com/redditpersona/persona-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractBasicInfo_FirstMatchWins(t *testing.T) {
	records := []models.Record{
		record("college life", "starting college next month", ""),
		record("planning ahead", "thinking about retirement already", ""),
	}

	info, cites := extractBasicInfo(records)

	assert.Equal(t, "18-25", info.AgeRange)
	assert.Len(t, cites, 1)
	assert.Equal(t, "Age Range", cites[0].Characteristic)
	assert.Equal(t, "18-25", cites[0].Value)
}

func TestExtractBasicInfo_Gender(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"boyfriend implies female", "my boyfriend and I went hiking", "female"},
		{"wife implies male", "my wife made dinner", "male"},
		{"f/ shorthand", "27 f/ looking for running partners", "female"},
		{"no signal", "nothing demographic here", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, _ := extractBasicInfo([]models.Record{record("", tt.body, "")})
			assert.Equal(t, tt.expected, info.Gender)
		})
	}
}

func TestExtractBasicInfo_LocationCaptureNeverFiresOnLowercasedText(t *testing.T) {
	// The capture pattern requires a capitalized word, but extractors match
	// against lowercased text, so the trigger alone produces nothing.
	records := []models.Record{
		record("moving", "I live in Paris and love it", ""),
	}

	info, cites := extractBasicInfo(records)

	assert.Equal(t, "Unknown", info.Location)
	for _, cite := range cites {
		assert.NotEqual(t, "Location", cite.Characteristic)
	}
}

func TestExtractBasicInfo_Occupation(t *testing.T) {
	records := []models.Record{
		record("intro", "I work as a nurse downtown", ""),
	}

	info, cites := extractBasicInfo(records)

	assert.Equal(t, "Professional/Working", info.Occupation)
	assert.Len(t, cites, 1)
	assert.Equal(t, "Occupation", cites[0].Characteristic)
}

func TestExtractInterests_CommunityDeduplication(t *testing.T) {
	var records []models.Record
	for i := 0; i < 5; i++ {
		records = append(records, record(fmt.Sprintf("post %d", i), "plain text", "chess"))
	}

	interests, cites := extractInterests(records)

	assert.Equal(t, []string{"chess"}, interests)
	assert.Len(t, cites, 1)
	assert.Equal(t, "Multiple posts in r/chess", cites[0].Source)
	assert.Equal(t, "Posted 5 times in r/chess", cites[0].Context)
}

func TestExtractInterests_SingleVisitCommunityIgnored(t *testing.T) {
	records := []models.Record{
		record("one off", "plain text", "woodworking"),
	}

	interests, cites := extractInterests(records)

	assert.Empty(t, interests)
	assert.Empty(t, cites)
}

func TestExtractInterests_KeywordHitsRepeatCitations(t *testing.T) {
	records := []models.Record{
		record("setup", "gaming all weekend", ""),
		record("more", "gaming again tonight", ""),
	}

	interests, cites := extractInterests(records)

	// One deduplicated interest, but one citation per hit.
	assert.Equal(t, []string{"Gaming"}, interests)
	assert.Len(t, cites, 2)
	for _, cite := range cites {
		assert.Equal(t, "Gaming", cite.Value)
	}
}

func TestExtractInterests_TopCommunitiesCapped(t *testing.T) {
	var records []models.Record
	for i := 0; i < 12; i++ {
		sub := fmt.Sprintf("sub%02d", i)
		records = append(records, record("a", "zzz", sub), record("b", "zzz", sub))
	}

	interests, _ := extractInterests(records)
	assert.Len(t, interests, 10)
}

func TestExtractPersonalityTraits_DetailedThresholdIsStrict(t *testing.T) {
	longBody := strings.Repeat("x", 201)

	build := func(longCount int) []models.Record {
		var records []models.Record
		for i := 0; i < longCount; i++ {
			records = append(records, record("", longBody, ""))
		}
		for i := longCount; i < 10; i++ {
			records = append(records, record("", "zzz", ""))
		}
		return records
	}

	// Exactly 3 of 10: ratio 0.3 is not strictly greater than 0.3.
	traits, _ := extractPersonalityTraits(build(3))
	assert.NotContains(t, traits, "Detailed/Thorough")

	traits, cites := extractPersonalityTraits(build(4))
	assert.Contains(t, traits, "Detailed/Thorough")

	found := false
	for _, cite := range cites {
		if cite.Characteristic == "Detailed/Thorough" {
			found = true
			assert.Equal(t, "Writing pattern analysis", cite.Source)
			assert.Equal(t, "4/10 posts are detailed (>200 chars)", cite.Context)
		}
	}
	assert.True(t, found)
}

func TestExtractPersonalityTraits_Optimistic(t *testing.T) {
	records := []models.Record{
		record("", "this is great and awesome and amazing", ""),
		record("", "kind of annoying though", ""),
	}

	// 3 positive hits vs 1 negative: 3 > 2*1.
	traits, _ := extractPersonalityTraits(records)
	assert.Contains(t, traits, "Optimistic")

	// 2 positive vs 1 negative is not enough.
	records[0].Body = "this is great and awesome"
	traits, _ = extractPersonalityTraits(records)
	assert.NotContains(t, traits, "Optimistic")
}

func TestAnalyzeCommunicationStyle(t *testing.T) {
	longBody := strings.Repeat("y", 200)

	tests := []struct {
		name     string
		records  []models.Record
		expected string
	}{
		{
			name: "formal and detailed",
			records: []models.Record{
				record("", longBody+" however therefore", ""),
			},
			expected: "Formal and detailed",
		},
		{
			name: "conversational and detailed",
			records: []models.Record{
				record("", longBody+" lol", ""),
			},
			expected: "Conversational and detailed",
		},
		{
			name: "casual and concise",
			records: []models.Record{
				record("", "lol omg short", ""),
			},
			expected: "Casual and concise",
		},
		{
			name: "direct and concise",
			records: []models.Record{
				record("", "short and plain", ""),
			},
			expected: "Direct and concise",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, cites := analyzeCommunicationStyle(tt.records)
			assert.Equal(t, tt.expected, style)
			assert.Len(t, cites, 1)
			assert.Equal(t, "Language pattern analysis", cites[0].Source)
		})
	}
}

func TestScanCategories_OncePerCategory(t *testing.T) {
	records := []models.Record{
		record("", "my family and my parents", ""),
		record("", "family again, plus learning new things", ""),
	}

	values, cites := extractValues(records)

	// family fires once (first record), education fires on the second.
	assert.Equal(t, []string{"family", "education"}, values)
	assert.Len(t, cites, 2)
	assert.Equal(t, "family", cites[0].Value)
	assert.Equal(t, "education", cites[1].Value)
}

func TestAnalyzeTechUsage_Tiers(t *testing.T) {
	techRecord := record("", "installed a new app", "")
	plainRecord := record("", "zzz", "")

	tests := []struct {
		name     string
		records  []models.Record
		expected string
	}{
		{
			name:     "tech savvy",
			records:  []models.Record{techRecord, techRecord, plainRecord},
			expected: "Tech-savvy and engaged",
		},
		{
			name: "moderate",
			records: []models.Record{
				techRecord, plainRecord, plainRecord, plainRecord,
				plainRecord, plainRecord, plainRecord, plainRecord,
			},
			expected: "Moderate technology user",
		},
		{
			name:     "basic",
			records:  []models.Record{plainRecord, plainRecord, plainRecord, plainRecord, plainRecord, plainRecord, plainRecord, plainRecord, plainRecord, plainRecord},
			expected: "Basic technology user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage, cites := analyzeTechUsage(tt.records)
			assert.Equal(t, tt.expected, usage)
			assert.Len(t, cites, 1)
		})
	}
}

func TestAnalyzeTechUsage_SubredditMembership(t *testing.T) {
	records := []models.Record{
		record("weekly thread", "nothing matching a keyword", "linux"),
	}

	usage, _ := analyzeTechUsage(records)
	assert.Equal(t, "Tech-savvy and engaged", usage)
}

func TestAnalyzeSocialBehavior_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"help wins over discussion", "help me discuss this opinion", "Help-seeking and community-oriented"},
		{"discussion", "what is your opinion on this", "Discussion-focused and opinionated"},
		{"questions", "is this right?", "Curious and inquisitive"},
		{"default", "plain statement", "Selective participant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			behavior, cites := analyzeSocialBehavior([]models.Record{record("", tt.body, "")})
			assert.Equal(t, tt.expected, behavior)
			assert.Len(t, cites, 1)
			assert.Equal(t, "Interaction pattern analysis", cites[0].Source)
		})
	}
}

func TestAnalyzeLifestyle_HighestCountWins(t *testing.T) {
	records := []models.Record{
		record("", "gym and exercise every day", ""), // active: 2
		record("", "staying home tonight", ""),       // homebody: 1
	}

	lifestyle, cites := analyzeLifestyle(records)

	assert.Equal(t, "Active lifestyle", lifestyle)
	assert.Len(t, cites, 1)
	assert.Contains(t, cites[0].Context, "active: 2")
	assert.Contains(t, cites[0].Context, "homebody: 1")
}

func TestAnalyzeLifestyle_TieGoesToEarlierCategory(t *testing.T) {
	records := []models.Record{
		record("", "hitting the gym then staying home", ""), // active: 1, homebody: 1
	}

	lifestyle, _ := analyzeLifestyle(records)
	assert.Equal(t, "Active lifestyle", lifestyle)
}

func TestAnalyzeLifestyle_AllZeroIsBalanced(t *testing.T) {
	records := []models.Record{
		record("", "zzz", ""),
	}

	lifestyle, cites := analyzeLifestyle(records)

	assert.Equal(t, "Balanced lifestyle", lifestyle)
	assert.Len(t, cites, 1)
	assert.Equal(t, "Lifestyle indicators: active: 0, social: 0, homebody: 0, busy: 0, relaxed: 0", cites[0].Context)
}
