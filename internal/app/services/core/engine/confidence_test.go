package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateConfidenceCompleteConsistentSet(t *testing.T) {
	set := allNegativeAnswers(t)

	confidence, completeness, consistency := EstimateConfidence(set, DefaultConfidenceConfig())

	assert.Equal(t, 100.0, completeness)
	assert.Equal(t, 85.0, consistency)
	assert.InDelta(t, 100*0.6+85*0.4, confidence, 1e-9)
}

func TestEstimateConfidencePartialCompletion(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_jaw":       true,
		"pain_intensity": 2,
		"sound_clicking": false,
	})

	confidence, completeness, consistency := EstimateConfidence(set, DefaultConfidenceConfig())

	assert.InDelta(t, 3.0/26.0*100, completeness, 1e-9)
	assert.Equal(t, 85.0, consistency)
	assert.InDelta(t, completeness*0.6+85*0.4, confidence, 1e-9)
}

func TestEstimateConfidencePenalizesContradictions(t *testing.T) {
	// Severe pain with zero functional limitation plus sounds reported while
	// the sound location says none: two independent penalties.
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_intensity":          4,
		"pain_jaw":                true,
		"func_opening_limit":      0,
		"func_chewing_difficulty": 0,
		"sound_clicking":          true,
		"sound_location":          LateralityNone,
	})

	_, _, consistency := EstimateConfidence(set, DefaultConfidenceConfig())
	assert.Equal(t, 85.0-15-10, consistency)
}

func TestEstimateConfidenceConsistencyFloorsAtZero(t *testing.T) {
	set := allNegativeAnswers(t)
	cfg := DefaultConfidenceConfig()
	cfg.Baseline = 0

	_, _, consistency := EstimateConfidence(set, cfg)
	assert.Zero(t, consistency)
}

func TestDetectContradictionsRuleIndependence(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_jaw":      true,
		"pain_location": LateralityNone,
	})

	triggered := detectContradictions(set)

	assert.Len(t, triggered, 1)
	assert.Equal(t, "pain_location_conflict", triggered[0].id)
}

func TestDetectContradictionsIntensityWithoutPain(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_jaw":       false,
		"pain_intensity": 3,
	})

	triggered := detectContradictions(set)

	assert.Len(t, triggered, 1)
	assert.Equal(t, "intensity_without_pain", triggered[0].id)
}
