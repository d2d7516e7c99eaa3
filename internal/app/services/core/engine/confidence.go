package engine

// consistencyRule is one internal-consistency check over the raw answers.
// The same detection logic backs two different reports: the confidence
// estimator applies the numeric penalty, the protocol validator surfaces the
// rule as a warning.
type consistencyRule struct {
	id          string
	description string
	penalty     float64
	detect      func(*AnswerSet) bool
}

var consistencyRules = []consistencyRule{
	{
		id:          "severe_pain_without_dysfunction",
		description: "severe pain reported with zero functional limitation",
		penalty:     15,
		detect: func(set *AnswerSet) bool {
			pain, ok := set.Scale("pain_intensity")
			if !ok || pain < 3 {
				return false
			}
			opening, openingOK := set.Scale("func_opening_limit")
			chewing, chewingOK := set.Scale("func_chewing_difficulty")
			return openingOK && chewingOK && opening == 0 && chewing == 0
		},
	},
	{
		id:          "sound_location_conflict",
		description: "joint sounds reported but sound location answered none",
		penalty:     10,
		detect: func(set *AnswerSet) bool {
			location, ok := set.Option("sound_location")
			if !ok || location != LateralityNone {
				return false
			}
			for _, id := range soundQuestionIDs {
				if v, answered := set.Bool(id); answered && v {
					return true
				}
			}
			return false
		},
	},
	{
		id:          "pain_location_conflict",
		description: "jaw pain reported but pain location answered none",
		penalty:     10,
		detect: func(set *AnswerSet) bool {
			location, ok := set.Option("pain_location")
			if !ok || location != LateralityNone {
				return false
			}
			v, answered := set.Bool("pain_jaw")
			return answered && v
		},
	},
	{
		id:          "intensity_without_pain",
		description: "pain intensity of 3 or more with jaw pain answered no",
		penalty:     10,
		detect: func(set *AnswerSet) bool {
			pain, ok := set.Scale("pain_intensity")
			if !ok || pain < 3 {
				return false
			}
			v, answered := set.Bool("pain_jaw")
			return answered && !v
		},
	},
}

// detectContradictions returns the consistency rules triggered by the answer
// set, in rule declaration order.
func detectContradictions(set *AnswerSet) []consistencyRule {
	var triggered []consistencyRule
	for _, rule := range consistencyRules {
		if rule.detect(set) {
			triggered = append(triggered, rule)
		}
	}
	return triggered
}

// ConfidenceConfig tunes the advisory confidence blend. Consistency starts at
// Baseline and each contradiction subtracts its penalty, floored at 0.
type ConfidenceConfig struct {
	Baseline           float64
	CompletenessWeight float64
	ConsistencyWeight  float64
}

func DefaultConfidenceConfig() ConfidenceConfig {
	return ConfidenceConfig{Baseline: 85, CompletenessWeight: 0.6, ConsistencyWeight: 0.4}
}

// EstimateConfidence derives the 0-100 advisory confidence from response
// completeness and the consistency checks. It never blocks computation; the
// orchestrator only compares it against the configured minimum.
func EstimateConfidence(set *AnswerSet, cfg ConfidenceConfig) (confidence, completeness, consistency float64) {
	completeness = float64(set.AnsweredCount()) / float64(TotalQuestionCount()) * 100

	consistency = cfg.Baseline
	for _, rule := range detectContradictions(set) {
		consistency -= rule.penalty
	}
	if consistency < 0 {
		consistency = 0
	}

	confidence = clampPercentage(completeness*cfg.CompletenessWeight + consistency*cfg.ConsistencyWeight)
	return confidence, completeness, consistency
}
