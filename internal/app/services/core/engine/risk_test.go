package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForScoreThresholds(t *testing.T) {
	thresholds := DefaultRiskThresholds()
	cases := []struct {
		composite float64
		want      RiskTier
	}{
		{0, RiskLow},
		{30, RiskLow},
		{30.5, RiskModerate},
		{65, RiskModerate},
		{65.5, RiskHigh},
		{100, RiskHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tierForScore(tc.composite, thresholds), "composite=%v", tc.composite)
	}
}

func TestClassifyRiskRedFlagEscalatesOnly(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_intensity":      4,
		"func_locking_closed": true,
	})

	// Composite score would put this in the low tier; both red flags force
	// high and the immediate-attention flag.
	result := ClassifyRisk(5, set, DefaultRiskThresholds())

	assert.Equal(t, RiskHigh, result.Tier)
	assert.True(t, result.RequiresImmediateAttention)
	assert.Len(t, result.RedFlags, 2)
}

func TestClassifyRiskNeverDeescalates(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{"pain_intensity": 0})

	result := ClassifyRisk(90, set, DefaultRiskThresholds())

	assert.Equal(t, RiskHigh, result.Tier)
	assert.False(t, result.RequiresImmediateAttention)
	assert.Empty(t, result.RedFlags)
}

func TestClassifyRiskDegenerateInput(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{"hist_orthodontic": false})

	result := ClassifyRisk(0, set, DefaultRiskThresholds())

	assert.Equal(t, RiskLow, result.Tier)
	assert.False(t, result.RequiresImmediateAttention)
}

func TestClassifyRiskOpenLockIsRedFlag(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{"func_locking_open": true})

	result := ClassifyRisk(0, set, DefaultRiskThresholds())

	assert.Equal(t, RiskHigh, result.Tier)
	assert.True(t, result.RequiresImmediateAttention)
}

func TestClassifyRiskPainBelowMaxIsNotRedFlag(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{"pain_intensity": 3})

	result := ClassifyRisk(10, set, DefaultRiskThresholds())

	assert.Equal(t, RiskLow, result.Tier)
	assert.Empty(t, result.RedFlags)
}
