package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleByID(t *testing.T, report *ValidationReport, ruleID string) RuleResult {
	t.Helper()
	for _, r := range report.Results {
		if r.RuleID == ruleID {
			return r
		}
	}
	t.Fatalf("rule %s not found in report", ruleID)
	return RuleResult{}
}

func TestValidateScreeningRequiresAnchorQuestions(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{"pain_jaw": true})

	report := Validate(set, VariantScreening)

	rule := ruleByID(t, report, "axis1_completeness")
	assert.False(t, rule.Passed)
	assert.Contains(t, rule.Detail, "pain_intensity")
	assert.False(t, report.IsValid)
}

func TestValidateScreeningPassesWithAnchors(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_jaw":            false,
		"pain_intensity":      0,
		"sound_clicking":      false,
		"func_locking_closed": false,
	})

	report := Validate(set, VariantScreening)

	assert.True(t, report.IsValid)
	assert.Nil(t, report.Axis.Axis2)
}

func TestValidateFullVariantRequiresEveryQuestion(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_jaw":       true,
		"pain_intensity": 2,
		"assoc_headache": true,
	})

	report := Validate(set, VariantFull)

	assert.False(t, ruleByID(t, report, "axis1_completeness").Passed)
	assert.False(t, ruleByID(t, report, "axis2_completeness").Passed)
	assert.False(t, report.IsValid)
	require.NotNil(t, report.Axis.Axis2)
	assert.Less(t, *report.Axis.Axis2, 100.0)
}

func TestValidateFullVariantCompleteSetIsValid(t *testing.T) {
	report := Validate(allNegativeAnswers(t), VariantFull)

	assert.True(t, report.IsValid)
	assert.Equal(t, 100.0, report.Axis.Axis1)
	require.NotNil(t, report.Axis.Axis2)
	assert.Equal(t, 100.0, *report.Axis.Axis2)
}

func TestValidateSoundCoverageWarning(t *testing.T) {
	// Sounds reported positive with only one of four sound questions
	// answered.
	set := mustAnswerSet(t, map[string]interface{}{"sound_clicking": true})

	report := Validate(set, VariantScreening)

	rule := ruleByID(t, report, "sound_category_coverage")
	assert.False(t, rule.Passed)
	assert.Equal(t, SeverityWarning, rule.Severity)
}

func TestValidateSoundCoveragePassesWithThreeAnswered(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"sound_clicking": true,
		"sound_popping":  false,
		"sound_crepitus": false,
	})

	report := Validate(set, VariantScreening)
	assert.True(t, ruleByID(t, report, "sound_category_coverage").Passed)
}

func TestValidatePainCoverageWarning(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{"pain_jaw": true})

	report := Validate(set, VariantScreening)

	rule := ruleByID(t, report, "pain_category_coverage")
	assert.False(t, rule.Passed)
	assert.Equal(t, SeverityWarning, rule.Severity)
}

func TestValidateSurfacesContradictionsAsWarnings(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_jaw":      true,
		"pain_location": LateralityNone,
	})

	report := Validate(set, VariantScreening)

	rule := ruleByID(t, report, "consistency_pain_location_conflict")
	assert.False(t, rule.Passed)
	assert.Equal(t, SeverityWarning, rule.Severity)
	assert.Equal(t, RuleConditional, rule.Kind)
}

// isValid must hold exactly when no error-severity rule failed; warnings and
// info never flip it.
func TestValidateSoundnessInvariant(t *testing.T) {
	sets := []*AnswerSet{
		allNegativeAnswers(t),
		mustAnswerSet(t, map[string]interface{}{"pain_jaw": true}),
		mustAnswerSet(t, map[string]interface{}{"sound_clicking": true, "pain_intensity": 0, "pain_jaw": false, "func_locking_closed": false}),
	}
	for _, set := range sets {
		for _, variant := range []ProtocolVariant{VariantScreening, VariantFull} {
			report := Validate(set, variant)
			errorFailed := false
			for _, r := range report.Results {
				if !r.Passed && r.Severity == SeverityError {
					errorFailed = true
				}
			}
			assert.Equal(t, !errorFailed, report.IsValid)
		}
	}
}

func TestValidateRuleOrderIsStable(t *testing.T) {
	report := Validate(allNegativeAnswers(t), VariantFull)

	var ids []string
	for _, r := range report.Results {
		ids = append(ids, r.RuleID)
	}
	assert.Equal(t, []string{
		"axis1_completeness",
		"axis2_completeness",
		"value_range",
		"sound_category_coverage",
		"pain_category_coverage",
		"consistency_severe_pain_without_dysfunction",
		"consistency_sound_location_conflict",
		"consistency_pain_location_conflict",
		"consistency_intensity_without_pain",
		"axis2_coverage",
	}, ids)
}
