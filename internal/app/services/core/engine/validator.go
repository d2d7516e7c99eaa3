package engine

import (
	"fmt"
	"strings"
)

// ProtocolVariant selects which questions a submission must answer.
type ProtocolVariant string

const (
	// VariantScreening is the short intake form: only the four anchor
	// questions are mandatory.
	VariantScreening ProtocolVariant = "screening"
	// VariantFull is the complete battery: every catalog question is
	// mandatory and axis 2 compliance is reported.
	VariantFull ProtocolVariant = "full"
)

func KnownProtocolVariant(variant ProtocolVariant) bool {
	return variant == VariantScreening || variant == VariantFull
}

type RuleSeverity string

const (
	SeverityError   RuleSeverity = "error"
	SeverityWarning RuleSeverity = "warning"
	SeverityInfo    RuleSeverity = "info"
)

type RuleKind string

const (
	RuleRequired    RuleKind = "required"
	RuleConditional RuleKind = "conditional"
	RuleRecommended RuleKind = "recommended"
)

type RuleResult struct {
	RuleID   string       `json:"rule_id"`
	Kind     RuleKind     `json:"kind"`
	Severity RuleSeverity `json:"severity"`
	Passed   bool         `json:"passed"`
	Detail   string       `json:"detail,omitempty"`
}

// AxisCompliance holds the aggregate compliance percentage per protocol
// axis. Axis2 is only reported for the full variant.
type AxisCompliance struct {
	Axis1 float64  `json:"axis1"`
	Axis2 *float64 `json:"axis2,omitempty"`
}

type ValidationReport struct {
	IsValid bool           `json:"is_valid"`
	Results []RuleResult   `json:"results"`
	Axis    AxisCompliance `json:"axis_compliance"`
}

var screeningRequiredQuestions = []string{
	"pain_jaw", "pain_intensity", "sound_clicking", "func_locking_closed",
}

const (
	axisPhysical     = 1
	axisPsychosocial = 2
)

func questionAxis(q Question) int {
	switch q.Category {
	case CategoryAssociated, CategoryHistory:
		return axisPsychosocial
	default:
		return axisPhysical
	}
}

type axisRuleResult struct {
	RuleResult
	axis int
}

// Validate runs the fixed, ordered compliance rule battery against the raw
// answers. It is independent of scoring and shares only the contradiction
// detection with the confidence estimator, surfaced here as warnings instead
// of a numeric penalty.
func Validate(set *AnswerSet, variant ProtocolVariant) *ValidationReport {
	var results []axisRuleResult

	results = append(results, completenessRules(set, variant)...)
	results = append(results, rangeRule(set))
	results = append(results, soundCoverageRule(set))
	results = append(results, painCoverageRule(set))
	for _, rule := range consistencyRules {
		results = append(results, axisRuleResult{
			axis: axisPhysical,
			RuleResult: RuleResult{
				RuleID:   "consistency_" + rule.id,
				Kind:     RuleConditional,
				Severity: SeverityWarning,
				Passed:   !rule.detect(set),
				Detail:   rule.description,
			},
		})
	}
	results = append(results, axis2CoverageRule(set))

	report := &ValidationReport{IsValid: true}
	errorsPerAxis := map[int]int{}
	rulesPerAxis := map[int]int{}
	for _, r := range results {
		report.Results = append(report.Results, r.RuleResult)
		rulesPerAxis[r.axis]++
		if !r.Passed && r.Severity == SeverityError {
			report.IsValid = false
			errorsPerAxis[r.axis]++
		}
	}

	report.Axis.Axis1 = axisCompliance(errorsPerAxis[axisPhysical], rulesPerAxis[axisPhysical])
	if variant == VariantFull {
		axis2 := axisCompliance(errorsPerAxis[axisPsychosocial], rulesPerAxis[axisPsychosocial])
		report.Axis.Axis2 = &axis2
	}
	return report
}

func axisCompliance(errors, rules int) float64 {
	if rules == 0 {
		return 100
	}
	compliance := 100 - float64(errors)/float64(rules)*100
	if compliance < 0 {
		return 0
	}
	return compliance
}

func completenessRules(set *AnswerSet, variant ProtocolVariant) []axisRuleResult {
	var axis1Missing, axis2Missing []string
	switch variant {
	case VariantFull:
		for _, q := range questionCatalog {
			if !set.Answered(q.ID) {
				if questionAxis(q) == axisPhysical {
					axis1Missing = append(axis1Missing, q.ID)
				} else {
					axis2Missing = append(axis2Missing, q.ID)
				}
			}
		}
	default:
		for _, id := range screeningRequiredQuestions {
			if !set.Answered(id) {
				axis1Missing = append(axis1Missing, id)
			}
		}
	}

	rules := []axisRuleResult{{
		axis: axisPhysical,
		RuleResult: RuleResult{
			RuleID:   "axis1_completeness",
			Kind:     RuleRequired,
			Severity: SeverityError,
			Passed:   len(axis1Missing) == 0,
			Detail:   missingDetail(axis1Missing),
		},
	}}
	if variant == VariantFull {
		rules = append(rules, axisRuleResult{
			axis: axisPsychosocial,
			RuleResult: RuleResult{
				RuleID:   "axis2_completeness",
				Kind:     RuleRequired,
				Severity: SeverityError,
				Passed:   len(axis2Missing) == 0,
				Detail:   missingDetail(axis2Missing),
			},
		})
	}
	return rules
}

func missingDetail(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("unanswered required questions: %s", strings.Join(missing, ", "))
}

// rangeRule re-checks every answered value against its declared domain. A
// 0-10 intensity submitted against the 0-4 scale fails here instead of being
// silently clamped. AnswerSets built through ParseAnswerSet always pass, but
// sets constructed elsewhere are not trusted.
func rangeRule(set *AnswerSet) axisRuleResult {
	var violations []string
	for _, answer := range set.Answers() {
		question, _ := QuestionByID(answer.QuestionID)
		switch answer.Kind {
		case DomainScale:
			if answer.Scale < question.Domain.ScaleMin || answer.Scale > question.Domain.ScaleMax {
				violations = append(violations, fmt.Sprintf("%s=%d outside %d-%d",
					answer.QuestionID, answer.Scale, question.Domain.ScaleMin, question.Domain.ScaleMax))
			}
		case DomainEnum:
			if _, known := question.Domain.optionPoints(answer.Option); !known {
				violations = append(violations, fmt.Sprintf("%s=%q is not a declared option", answer.QuestionID, answer.Option))
			}
		}
	}

	detail := ""
	if len(violations) > 0 {
		detail = strings.Join(violations, "; ")
	}
	return axisRuleResult{
		axis: axisPhysical,
		RuleResult: RuleResult{
			RuleID:   "value_range",
			Kind:     RuleRequired,
			Severity: SeverityError,
			Passed:   len(violations) == 0,
			Detail:   detail,
		},
	}
}

// soundCoverageRule warns when joint sounds are reported positive but fewer
// than three of the four sound questions were answered.
func soundCoverageRule(set *AnswerSet) axisRuleResult {
	answered := 0
	reported := false
	for _, id := range soundQuestionIDs {
		if v, ok := set.Bool(id); ok {
			answered++
			if v {
				reported = true
			}
		}
	}

	passed := !reported || answered >= 3
	detail := ""
	if !passed {
		detail = fmt.Sprintf("joint sounds reported but only %d of %d sound questions answered", answered, len(soundQuestionIDs))
	}
	return axisRuleResult{
		axis: axisPhysical,
		RuleResult: RuleResult{
			RuleID:   "sound_category_coverage",
			Kind:     RuleConditional,
			Severity: SeverityWarning,
			Passed:   passed,
			Detail:   detail,
		},
	}
}

func painCoverageRule(set *AnswerSet) axisRuleResult {
	painReported, _ := set.Bool("pain_jaw")
	passed := !painReported || set.Answered("pain_intensity")
	detail := ""
	if !passed {
		detail = "jaw pain reported but pain intensity not answered"
	}
	return axisRuleResult{
		axis: axisPhysical,
		RuleResult: RuleResult{
			RuleID:   "pain_category_coverage",
			Kind:     RuleConditional,
			Severity: SeverityWarning,
			Passed:   passed,
			Detail:   detail,
		},
	}
}

func axis2CoverageRule(set *AnswerSet) axisRuleResult {
	answered, total := 0, 0
	for _, q := range questionCatalog {
		if questionAxis(q) == axisPsychosocial {
			total++
			if set.Answered(q.ID) {
				answered++
			}
		}
	}

	passed := answered*2 >= total
	detail := ""
	if !passed {
		detail = fmt.Sprintf("%d of %d associated-symptom and history questions answered", answered, total)
	}
	return axisRuleResult{
		axis: axisPsychosocial,
		RuleResult: RuleResult{
			RuleID:   "axis2_coverage",
			Kind:     RuleRecommended,
			Severity: SeverityInfo,
			Passed:   passed,
			Detail:   detail,
		},
	}
}
