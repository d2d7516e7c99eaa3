package engine

// Category groups related screening questions. Declaration order is
// meaningful: category-triggered recommendations and result listings follow
// this order.
type Category string

const (
	CategoryPain       Category = "pain"
	CategoryFunction   Category = "function"
	CategorySounds     Category = "sounds"
	CategoryAssociated Category = "associated"
	CategoryHistory    Category = "history"
)

func Categories() []Category {
	return []Category{
		CategoryPain,
		CategoryFunction,
		CategorySounds,
		CategoryAssociated,
		CategoryHistory,
	}
}

type DomainKind string

const (
	DomainBoolean DomainKind = "boolean"
	DomainScale   DomainKind = "scale"
	DomainEnum    DomainKind = "enum"
)

type EnumOption struct {
	Value  string  `json:"value"`
	Points float64 `json:"points"`
}

// AnswerDomain declares the value space of a question. Scale bounds and enum
// options are fixed at build time; answers outside the domain are rejected
// before scoring.
type AnswerDomain struct {
	Kind     DomainKind   `json:"kind"`
	ScaleMin int          `json:"scale_min,omitempty"`
	ScaleMax int          `json:"scale_max,omitempty"`
	Options  []EnumOption `json:"options,omitempty"`
}

func (d AnswerDomain) optionPoints(value string) (float64, bool) {
	for _, opt := range d.Options {
		if opt.Value == value {
			return opt.Points, true
		}
	}
	return 0, false
}

func (d AnswerDomain) maxOptionPoints() float64 {
	var max float64
	for _, opt := range d.Options {
		if opt.Points > max {
			max = opt.Points
		}
	}
	return max
}

// Question is a single catalog entry. Tag names the symptom contributed to
// the clinical profile when the question is answered positively; empty means
// the question never contributes a tag.
type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Category    Category     `json:"category"`
	Domain      AnswerDomain `json:"domain"`
	PointWeight float64      `json:"point_weight"`
	Tag         string       `json:"tag,omitempty"`
}

// maxPoints is the denominator contribution of an answered question.
func (q Question) maxPoints() float64 {
	if q.Domain.Kind == DomainEnum {
		return q.Domain.maxOptionPoints()
	}
	return q.PointWeight
}

const (
	painScaleMin = 0
	painScaleMax = 4
)

const (
	LateralityNone       = "none"
	LateralityUnilateral = "unilateral"
	LateralityBilateral  = "bilateral"
)

func boolDomain() AnswerDomain {
	return AnswerDomain{Kind: DomainBoolean}
}

func scaleDomain() AnswerDomain {
	return AnswerDomain{Kind: DomainScale, ScaleMin: painScaleMin, ScaleMax: painScaleMax}
}

func lateralityDomain() AnswerDomain {
	return AnswerDomain{
		Kind: DomainEnum,
		Options: []EnumOption{
			{Value: LateralityNone, Points: 0},
			{Value: LateralityUnilateral, Points: 2},
			{Value: LateralityBilateral, Points: 3},
		},
	}
}

// questionCatalog is the closed battery of 26 TMD screening questions.
// Declaration order within a category fixes the order of contributing
// factors and coverage checks.
var questionCatalog = []Question{
	// Pain
	{ID: "pain_jaw", Text: "Pain in the jaw or temple in the last 30 days", Category: CategoryPain, Domain: boolDomain(), PointWeight: 2, Tag: "muscle_pain"},
	{ID: "pain_intensity", Text: "Current pain intensity", Category: CategoryPain, Domain: scaleDomain(), PointWeight: 4},
	{ID: "pain_worst", Text: "Worst pain intensity in the last week", Category: CategoryPain, Domain: scaleDomain(), PointWeight: 4},
	{ID: "pain_chewing", Text: "Pain when chewing hard food", Category: CategoryPain, Domain: boolDomain(), PointWeight: 2, Tag: "muscle_pain"},
	{ID: "pain_opening", Text: "Pain on wide mouth opening", Category: CategoryPain, Domain: boolDomain(), PointWeight: 2},
	{ID: "pain_location", Text: "Side of the pain", Category: CategoryPain, Domain: lateralityDomain(), PointWeight: 3},

	// Function
	{ID: "func_opening_limit", Text: "Limitation of mouth opening", Category: CategoryFunction, Domain: scaleDomain(), PointWeight: 4},
	{ID: "func_chewing_difficulty", Text: "Difficulty chewing", Category: CategoryFunction, Domain: scaleDomain(), PointWeight: 4},
	{ID: "func_jaw_stiffness", Text: "Jaw stiffness on waking", Category: CategoryFunction, Domain: boolDomain(), PointWeight: 2},
	{ID: "func_locking_closed", Text: "Jaw locking in a closed position", Category: CategoryFunction, Domain: boolDomain(), PointWeight: 3, Tag: "locking"},
	{ID: "func_locking_open", Text: "Jaw locking in an open position", Category: CategoryFunction, Domain: boolDomain(), PointWeight: 3, Tag: "locking"},
	{ID: "func_deviation", Text: "Jaw deviation on opening", Category: CategoryFunction, Domain: boolDomain(), PointWeight: 2},

	// Joint sounds: exactly four sound questions plus a location question.
	{ID: "sound_clicking", Text: "Clicking sound in the joint", Category: CategorySounds, Domain: boolDomain(), PointWeight: 2, Tag: "clicking"},
	{ID: "sound_popping", Text: "Popping sound on opening", Category: CategorySounds, Domain: boolDomain(), PointWeight: 2, Tag: "popping"},
	{ID: "sound_crepitus", Text: "Grinding or grating sound", Category: CategorySounds, Domain: boolDomain(), PointWeight: 2, Tag: "crepitus"},
	{ID: "sound_on_chewing", Text: "Joint sounds while chewing", Category: CategorySounds, Domain: boolDomain(), PointWeight: 2, Tag: "clicking"},
	{ID: "sound_location", Text: "Side of the joint sounds", Category: CategorySounds, Domain: lateralityDomain(), PointWeight: 3},

	// Associated symptoms
	{ID: "assoc_headache", Text: "Frequent temple headache", Category: CategoryAssociated, Domain: boolDomain(), PointWeight: 2, Tag: "headache"},
	{ID: "assoc_ear_pain", Text: "Ear pain without infection", Category: CategoryAssociated, Domain: boolDomain(), PointWeight: 2, Tag: "ear_pain"},
	{ID: "assoc_tinnitus", Text: "Ringing in the ears", Category: CategoryAssociated, Domain: boolDomain(), PointWeight: 2},
	{ID: "assoc_neck_pain", Text: "Neck or shoulder pain", Category: CategoryAssociated, Domain: boolDomain(), PointWeight: 2},
	{ID: "assoc_dizziness", Text: "Episodes of dizziness", Category: CategoryAssociated, Domain: boolDomain(), PointWeight: 1},

	// History
	{ID: "hist_trauma", Text: "History of jaw or facial trauma", Category: CategoryHistory, Domain: boolDomain(), PointWeight: 2, Tag: "trauma"},
	{ID: "hist_bruxism", Text: "Tooth grinding or clenching", Category: CategoryHistory, Domain: boolDomain(), PointWeight: 2, Tag: "bruxism"},
	{ID: "hist_orthodontic", Text: "Previous orthodontic treatment", Category: CategoryHistory, Domain: boolDomain(), PointWeight: 1},
	{ID: "hist_prior_treatment", Text: "Previous TMD treatment", Category: CategoryHistory, Domain: boolDomain(), PointWeight: 1},
}

var questionIndex = buildQuestionIndex()

func buildQuestionIndex() map[string]Question {
	index := make(map[string]Question, len(questionCatalog))
	for _, q := range questionCatalog {
		index[q.ID] = q
	}
	return index
}

// Questions returns the full catalog in declaration order.
func Questions() []Question {
	out := make([]Question, len(questionCatalog))
	copy(out, questionCatalog)
	return out
}

func QuestionByID(id string) (Question, bool) {
	q, ok := questionIndex[id]
	return q, ok
}

func QuestionsForCategory(category Category) []Question {
	var out []Question
	for _, q := range questionCatalog {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

func TotalQuestionCount() int {
	return len(questionCatalog)
}

var soundQuestionIDs = []string{"sound_clicking", "sound_popping", "sound_crepitus", "sound_on_chewing"}
