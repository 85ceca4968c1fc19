package models

import "time"

// RecordKind distinguishes a user's own submissions from their comments.
type RecordKind string

const (
	KindPost    RecordKind = "post"
	KindComment RecordKind = "comment"
)

// Record is one unit of evidence attributed to the profiled user: a single
// post or comment, already filtered of deleted/removed content by the source.
type Record struct {
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Subreddit string     `json:"subreddit"`
	Score     int        `json:"score"`
	CreatedAt time.Time  `json:"created_at"`
	Kind      RecordKind `json:"kind"`
	Permalink string     `json:"permalink"`
}

// Citation links an inferred persona value back to the record or aggregate
// analysis that justified it.
type Citation struct {
	Characteristic string `json:"characteristic"`
	Value          string `json:"value"`
	Source         string `json:"source"` // permalink or a synthetic descriptor
	Context        string `json:"context"`
}

// BasicInfo holds the four demographic fields of the persona. Each defaults
// to "Unknown" until a record provides a signal.
type BasicInfo struct {
	AgeRange   string `json:"age_range"`
	Gender     string `json:"gender"`
	Location   string `json:"location"`
	Occupation string `json:"occupation"`
}

// Persona category names. Citations are keyed by these; every persona carries
// all ten keys.
const (
	CategoryBasicInfo     = "Basic Information"
	CategoryInterests     = "Interests and Hobbies"
	CategoryTraits        = "Personality Traits"
	CategoryCommunication = "Communication Style"
	CategoryValues        = "Values and Beliefs"
	CategoryTechUsage     = "Technology Usage"
	CategorySocial        = "Social Behavior"
	CategoryGoals         = "Goals and Aspirations"
	CategoryChallenges    = "Challenges and Pain Points"
	CategoryLifestyle     = "Lifestyle"
)

// Categories lists the ten persona categories in report order.
var Categories = []string{
	CategoryBasicInfo,
	CategoryInterests,
	CategoryTraits,
	CategoryCommunication,
	CategoryValues,
	CategoryTechUsage,
	CategorySocial,
	CategoryGoals,
	CategoryChallenges,
	CategoryLifestyle,
}

// Persona is the complete inference result for one user. It is built once by
// the engine and never mutated afterwards.
type Persona struct {
	Username        string    `json:"username"`
	GeneratedAt     time.Time `json:"generated_at"`
	RecordsAnalyzed int       `json:"records_analyzed"`

	BasicInfo          BasicInfo `json:"basic_information"`
	Interests          []string  `json:"interests_and_hobbies"`
	PersonalityTraits  []string  `json:"personality_traits"`
	CommunicationStyle string    `json:"communication_style"`
	ValuesAndBeliefs   []string  `json:"values_and_beliefs"`
	TechnologyUsage    string    `json:"technology_usage"`
	SocialBehavior     string    `json:"social_behavior"`
	Goals              []string  `json:"goals_and_aspirations"`
	Challenges         []string  `json:"challenges_and_pain_points"`
	Lifestyle          string    `json:"lifestyle"`

	// Citations holds the provenance ledger, one list per category. All ten
	// category keys are always present, possibly with empty lists.
	Citations map[string][]Citation `json:"citations"`
}
