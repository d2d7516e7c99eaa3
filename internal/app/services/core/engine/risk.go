package engine

import "fmt"

type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
)

// RiskThresholds are the ordinal cut points for the composite score:
// low <= LowMax < moderate <= ModerateMax < high. They are configuration,
// not business logic; behavioural variants are configuration choices.
type RiskThresholds struct {
	LowMax      float64
	ModerateMax float64
}

func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{LowMax: 30, ModerateMax: 65}
}

type RiskResult struct {
	Tier                       RiskTier `json:"tier"`
	RequiresImmediateAttention bool     `json:"requires_immediate_attention"`
	RedFlags                   []string `json:"red_flags,omitempty"`
}

// ClassifyRisk maps the composite score onto a tier, then evaluates the
// red-flag predicates over the raw answers. Red flags can only escalate the
// tier, never de-escalate it.
func ClassifyRisk(composite float64, set *AnswerSet, thresholds RiskThresholds) RiskResult {
	result := RiskResult{Tier: tierForScore(composite, thresholds)}

	for _, flag := range redFlagRules {
		if flag.detect(set) {
			result.RedFlags = append(result.RedFlags, flag.description)
		}
	}
	if len(result.RedFlags) > 0 {
		result.Tier = RiskHigh
		result.RequiresImmediateAttention = true
	}
	return result
}

func tierForScore(composite float64, thresholds RiskThresholds) RiskTier {
	switch {
	case composite <= thresholds.LowMax:
		return RiskLow
	case composite <= thresholds.ModerateMax:
		return RiskModerate
	default:
		return RiskHigh
	}
}

type redFlagRule struct {
	id          string
	description string
	detect      func(*AnswerSet) bool
}

var redFlagRules = []redFlagRule{
	{
		id:          "pain_at_scale_max",
		description: fmt.Sprintf("pain intensity reported at the scale maximum (%d)", painScaleMax),
		detect: func(set *AnswerSet) bool {
			v, ok := set.Scale("pain_intensity")
			return ok && v == painScaleMax
		},
	},
	{
		id:          "closed_lock",
		description: "jaw locking in a closed position",
		detect: func(set *AnswerSet) bool {
			v, ok := set.Bool("func_locking_closed")
			return ok && v
		},
	},
	{
		id:          "open_lock",
		description: "jaw locking in an open position",
		detect: func(set *AnswerSet) bool {
			v, ok := set.Bool("func_locking_open")
			return ok && v
		},
	},
}
