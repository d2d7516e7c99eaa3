package engine

type DisorderCategory string

const (
	DisorderMuscle DisorderCategory = "muscle"
	DisorderJoint  DisorderCategory = "joint"
	DisorderMixed  DisorderCategory = "mixed"
)

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type Chronicity string

const (
	ChronicityAcute     Chronicity = "acute"
	ChronicityChronic   Chronicity = "chronic"
	ChronicityRecurrent Chronicity = "recurrent"
)

type ClinicalClassification struct {
	Category   DisorderCategory `json:"category"`
	Subtype    string           `json:"subtype"`
	Severity   Severity         `json:"severity"`
	Chronicity Chronicity       `json:"chronicity"`
}

// Classify derives the disorder label from category scores and specific
// answer patterns. Evaluation order is fixed: the joint-sound plus locking
// combination is checked first, then the pain-dominant pattern; a combined
// presentation overrides either single-category result.
func Classify(scores map[Category]CategoryScore, set *AnswerSet) ClinicalClassification {
	locking := boolPositive(set, "func_locking_closed") || boolPositive(set, "func_locking_open")
	crepitus := boolPositive(set, "sound_crepitus")
	soundsReported := anySoundReported(set)
	discPattern := soundsReported && locking
	painDominant := scores[CategoryPain].Percentage > 50

	var category DisorderCategory
	var subtype string
	switch {
	case discPattern && painDominant:
		category = DisorderMixed
		subtype = "combined myofascial pain and articular disc disorder"
	case discPattern:
		category = DisorderJoint
		if crepitus {
			subtype = "degenerative joint disorder"
		} else {
			subtype = "articular disc disorder"
		}
	case painDominant:
		category = DisorderMuscle
		if boolPositive(set, "assoc_headache") {
			subtype = "myofascial pain with headache referral"
		} else {
			subtype = "localized myalgia"
		}
	case soundsReported || scores[CategorySounds].Percentage > scores[CategoryPain].Percentage:
		category = DisorderJoint
		subtype = "arthralgia"
	default:
		category = DisorderMuscle
		subtype = "localized myalgia"
	}

	return ClinicalClassification{
		Category: category,
		Subtype:  subtype,
		Severity: severityFromFunction(scores[CategoryFunction].Percentage),
		// The current question battery carries no symptom-timeline data, so
		// chronicity is a documented constant rather than an inference.
		Chronicity: ChronicityChronic,
	}
}

// severityFromFunction applies the shared 4-band mapping to the functional
// percentage; the normal band collapses into mild since a classification
// always carries a severity.
func severityFromFunction(pct float64) Severity {
	switch interpretPercentage(pct) {
	case InterpretationNormal, InterpretationMild:
		return SeverityMild
	case InterpretationModerate:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

func boolPositive(set *AnswerSet, questionID string) bool {
	v, ok := set.Bool(questionID)
	return ok && v
}

func anySoundReported(set *AnswerSet) bool {
	for _, id := range soundQuestionIDs {
		if boolPositive(set, id) {
			return true
		}
	}
	return false
}
