package engine

// CodeFamily groups catalog entries by the condition they encode. Exclusion
// rules and conflict checks operate on families.
type CodeFamily string

const (
	FamilyDisc     CodeFamily = "disc"
	FamilyJoint    CodeFamily = "joint"
	FamilyMuscle   CodeFamily = "muscle"
	FamilyHeadache CodeFamily = "headache"
	FamilyOther    CodeFamily = "other"
)

// MatchCriteria are the conditions a clinical profile is compared against.
// Nil thresholds mean the dimension is not part of the code's criteria.
// Excludes lists families incompatible with this code: when the primary
// diagnosis belongs to one of them, this code is excluded from the mapping.
type MatchCriteria struct {
	PainThreshold       *int
	FunctionalThreshold *float64
	RequiredTags        []string
	Excludes            []CodeFamily
	Laterality          string
}

// DiagnosticCode is one static catalog entry. The catalog is reference data,
// never mutated at runtime.
type DiagnosticCode struct {
	Code         string        `json:"code"`
	Description  string        `json:"description"`
	Family       CodeFamily    `json:"family"`
	SeverityBand Severity      `json:"severity_band"`
	Criteria     MatchCriteria `json:"-"`
	Billable     bool          `json:"billable"`
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// fallbackDiagnosticCode is selected when no catalog entry clears the match
// floor: an unspecific code beats a spuriously specific one.
const fallbackDiagnosticCode = "M26.69"

// codeCatalog is the ICD-10-CM TMJ disorder subset this service maps onto.
// Declaration order breaks match-score ties deterministically.
var codeCatalog = []DiagnosticCode{
	{
		Code:         "M26.633",
		Description:  "Articular disc disorder of temporomandibular joint, bilateral",
		Family:       FamilyDisc,
		SeverityBand: SeverityModerate,
		Criteria: MatchCriteria{
			FunctionalThreshold: floatPtr(40),
			RequiredTags:        []string{"clicking", "locking"},
			Excludes:            []CodeFamily{FamilyMuscle},
			Laterality:          LateralityBilateral,
		},
		Billable: true,
	},
	{
		Code:         "M26.631",
		Description:  "Articular disc disorder of temporomandibular joint, unilateral",
		Family:       FamilyDisc,
		SeverityBand: SeverityModerate,
		Criteria: MatchCriteria{
			FunctionalThreshold: floatPtr(40),
			RequiredTags:        []string{"clicking", "locking"},
			Excludes:            []CodeFamily{FamilyMuscle},
			Laterality:          LateralityUnilateral,
		},
		Billable: true,
	},
	{
		Code:         "M26.623",
		Description:  "Arthralgia of temporomandibular joint, bilateral",
		Family:       FamilyJoint,
		SeverityBand: SeverityModerate,
		Criteria: MatchCriteria{
			PainThreshold: intPtr(2),
			RequiredTags:  []string{"clicking"},
			Excludes:      []CodeFamily{FamilyMuscle},
			Laterality:    LateralityBilateral,
		},
		Billable: true,
	},
	{
		Code:         "M26.621",
		Description:  "Arthralgia of temporomandibular joint, unilateral",
		Family:       FamilyJoint,
		SeverityBand: SeverityMild,
		Criteria: MatchCriteria{
			PainThreshold: intPtr(2),
			RequiredTags:  []string{"clicking"},
			Excludes:      []CodeFamily{FamilyMuscle},
			Laterality:    LateralityUnilateral,
		},
		Billable: true,
	},
	{
		Code:         "M79.11",
		Description:  "Myalgia of mastication muscle",
		Family:       FamilyMuscle,
		SeverityBand: SeverityMild,
		Criteria: MatchCriteria{
			PainThreshold: intPtr(1),
			RequiredTags:  []string{"muscle_pain"},
			Excludes:      []CodeFamily{FamilyDisc, FamilyJoint},
		},
		Billable: true,
	},
	{
		Code:         "M79.1",
		Description:  "Myalgia",
		Family:       FamilyMuscle,
		SeverityBand: SeverityMild,
		Criteria: MatchCriteria{
			PainThreshold: intPtr(1),
			RequiredTags:  []string{"muscle_pain", "bruxism"},
		},
		Billable: true,
	},
	{
		Code:         "M26.601",
		Description:  "Temporomandibular joint disorder, unspecified, unilateral",
		Family:       FamilyOther,
		SeverityBand: SeverityMild,
		Criteria: MatchCriteria{
			Laterality: LateralityUnilateral,
		},
		Billable: true,
	},
	{
		Code:         "M26.603",
		Description:  "Temporomandibular joint disorder, unspecified, bilateral",
		Family:       FamilyOther,
		SeverityBand: SeverityMild,
		Criteria: MatchCriteria{
			Laterality: LateralityBilateral,
		},
		Billable: true,
	},
	{
		Code:         "M26.69",
		Description:  "Other specified disorder of temporomandibular joint",
		Family:       FamilyOther,
		SeverityBand: SeverityMild,
		Criteria:     MatchCriteria{},
		Billable:     true,
	},
	{
		Code:         "G44.89",
		Description:  "Other headache syndrome",
		Family:       FamilyHeadache,
		SeverityBand: SeverityMild,
		Criteria: MatchCriteria{
			RequiredTags: []string{"headache"},
		},
		Billable: true,
	},
}

var codeIndex = buildCodeIndex()

func buildCodeIndex() map[string]DiagnosticCode {
	index := make(map[string]DiagnosticCode, len(codeCatalog))
	for _, code := range codeCatalog {
		index[code.Code] = code
	}
	return index
}

// Codes returns the catalog in declaration order.
func Codes() []DiagnosticCode {
	out := make([]DiagnosticCode, len(codeCatalog))
	copy(out, codeCatalog)
	return out
}

func CodeByID(code string) (DiagnosticCode, bool) {
	c, ok := codeIndex[code]
	return c, ok
}
