package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classifyAnswers(t *testing.T, values map[string]interface{}) ClinicalClassification {
	t.Helper()
	set := mustAnswerSet(t, values)
	return Classify(ScoreAllCategories(set), set)
}

func TestClassifySoundsWithLockingIsJoint(t *testing.T) {
	classification := classifyAnswers(t, map[string]interface{}{
		"sound_clicking":      true,
		"func_locking_closed": true,
	})

	assert.Equal(t, DisorderJoint, classification.Category)
	assert.Equal(t, "articular disc disorder", classification.Subtype)
}

func TestClassifyCrepitusRefinesJointSubtype(t *testing.T) {
	classification := classifyAnswers(t, map[string]interface{}{
		"sound_crepitus":      true,
		"func_locking_closed": true,
	})

	assert.Equal(t, DisorderJoint, classification.Category)
	assert.Equal(t, "degenerative joint disorder", classification.Subtype)
}

func TestClassifyPainDominantIsMuscle(t *testing.T) {
	classification := classifyAnswers(t, map[string]interface{}{
		"pain_jaw":       true,
		"pain_intensity": 3,
		"pain_chewing":   true,
	})

	assert.Equal(t, DisorderMuscle, classification.Category)
	assert.Equal(t, "localized myalgia", classification.Subtype)
}

func TestClassifyCombinedPresentationIsMixed(t *testing.T) {
	classification := classifyAnswers(t, map[string]interface{}{
		"pain_jaw":            true,
		"pain_intensity":      4,
		"pain_chewing":        true,
		"sound_clicking":      true,
		"func_locking_closed": true,
	})

	assert.Equal(t, DisorderMixed, classification.Category)
}

func TestClassifyHeadacheRefinesMuscleSubtype(t *testing.T) {
	classification := classifyAnswers(t, map[string]interface{}{
		"pain_jaw":       true,
		"pain_intensity": 3,
		"assoc_headache": true,
	})

	assert.Equal(t, DisorderMuscle, classification.Category)
	assert.Equal(t, "myofascial pain with headache referral", classification.Subtype)
}

func TestClassifySoundsWithoutLockingIsArthralgia(t *testing.T) {
	classification := classifyAnswers(t, map[string]interface{}{
		"sound_clicking": true,
		"sound_popping":  true,
	})

	assert.Equal(t, DisorderJoint, classification.Category)
	assert.Equal(t, "arthralgia", classification.Subtype)
}

func TestClassifySeverityFollowsFunctionalPercentage(t *testing.T) {
	mild := classifyAnswers(t, map[string]interface{}{
		"func_opening_limit": 0,
		"pain_jaw":           true,
	})
	severe := classifyAnswers(t, map[string]interface{}{
		"func_opening_limit":      4,
		"func_chewing_difficulty": 4,
		"pain_jaw":                true,
	})

	assert.Equal(t, SeverityMild, mild.Severity)
	assert.Equal(t, SeveritySevere, severe.Severity)
}

func TestClassifyChronicityIsConstantChronic(t *testing.T) {
	classification := classifyAnswers(t, map[string]interface{}{"pain_jaw": true})
	assert.Equal(t, ChronicityChronic, classification.Chronicity)
}
