package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMapperOptions() MapperOptions {
	cfg := DefaultScoringConfig()
	return MapperOptions{
		MatchScoreFloor:       cfg.MatchScoreFloor,
		FallbackCode:          cfg.FallbackCode,
		IncludeSecondaryCodes: true,
	}
}

func mapAnswers(t *testing.T, values map[string]interface{}, opts MapperOptions) MappingResult {
	t.Helper()
	set := mustAnswerSet(t, values)
	scores := ScoreAllCategories(set)
	classification := Classify(scores, set)
	return MapCodes(classification, set, scores, opts)
}

func TestMapCodesBilateralDiscPresentation(t *testing.T) {
	result := mapAnswers(t, map[string]interface{}{
		"sound_clicking":      true,
		"sound_popping":       true,
		"sound_crepitus":      true,
		"sound_on_chewing":    true,
		"sound_location":      LateralityBilateral,
		"func_locking_closed": true,
	}, defaultMapperOptions())

	// Bilateral disc family, not the unilateral sibling.
	assert.Equal(t, "M26.633", result.PrimaryCode.Code)
	assert.Equal(t, FamilyDisc, result.PrimaryCode.Family)
}

func TestMapCodesAllNegativeFallsToUnspecified(t *testing.T) {
	set := allNegativeAnswers(t)
	scores := ScoreAllCategories(set)
	result := MapCodes(Classify(scores, set), set, scores, defaultMapperOptions())

	assert.Equal(t, "M26.69", result.PrimaryCode.Code)
}

func TestMapCodesPrimaryNeverExcluded(t *testing.T) {
	presentations := []map[string]interface{}{
		{"pain_jaw": true, "pain_intensity": 3, "pain_chewing": true},
		{"sound_clicking": true, "func_locking_closed": true, "sound_location": LateralityBilateral, "func_opening_limit": 3},
		{"pain_intensity": 0},
	}
	for _, values := range presentations {
		result := mapAnswers(t, values, defaultMapperOptions())
		for _, excluded := range result.ExcludedCodes {
			assert.NotEqual(t, result.PrimaryCode.Code, excluded.Code)
		}
	}
}

func TestMapCodesJointPrimaryExcludesPureMuscleCode(t *testing.T) {
	result := mapAnswers(t, map[string]interface{}{
		"sound_clicking":      true,
		"func_locking_closed": true,
		"func_opening_limit":  3,
		"sound_location":      LateralityBilateral,
	}, defaultMapperOptions())

	require.Equal(t, FamilyDisc, result.PrimaryCode.Family)

	var excludedCodes []string
	for _, e := range result.ExcludedCodes {
		excludedCodes = append(excludedCodes, e.Code)
		assert.NotEmpty(t, e.Reason)
	}
	assert.Contains(t, excludedCodes, "M79.11")
}

func TestMapCodesSecondaryHeadacheRule(t *testing.T) {
	result := mapAnswers(t, map[string]interface{}{
		"sound_clicking":      true,
		"func_locking_closed": true,
		"func_opening_limit":  3,
		"assoc_headache":      true,
	}, defaultMapperOptions())

	var codes []string
	for _, c := range result.SecondaryCodes {
		codes = append(codes, c.Code)
	}
	assert.Contains(t, codes, "G44.89")
}

func TestMapCodesSecondaryMyalgiaRule(t *testing.T) {
	result := mapAnswers(t, map[string]interface{}{
		"sound_clicking":      true,
		"func_locking_closed": true,
		"func_opening_limit":  3,
		"pain_jaw":            true,
		"pain_intensity":      2,
		"hist_bruxism":        true,
	}, defaultMapperOptions())

	require.True(t, result.PrimaryCode.Family == FamilyDisc || result.PrimaryCode.Family == FamilyJoint)

	var codes []string
	for _, c := range result.SecondaryCodes {
		codes = append(codes, c.Code)
	}
	assert.Contains(t, codes, "M79.1")
	// The excluded mastication-muscle code never leaks into the secondaries.
	assert.NotContains(t, codes, "M79.11")
}

func TestMapCodesSecondaryDisabledByOption(t *testing.T) {
	opts := defaultMapperOptions()
	opts.IncludeSecondaryCodes = false

	result := mapAnswers(t, map[string]interface{}{
		"sound_clicking":      true,
		"func_locking_closed": true,
		"assoc_headache":      true,
	}, opts)

	assert.Empty(t, result.SecondaryCodes)
}

func TestMapCodesConfidenceStaysInBand(t *testing.T) {
	presentations := []map[string]interface{}{
		{"pain_intensity": 4, "func_opening_limit": 4, "func_chewing_difficulty": 4, "sound_clicking": true, "func_locking_closed": true},
		{"hist_orthodontic": true},
		{"pain_jaw": true, "pain_intensity": 3, "sound_clicking": true},
	}
	for _, values := range presentations {
		result := mapAnswers(t, values, defaultMapperOptions())
		assert.GreaterOrEqual(t, result.MappingConfidence, 50.0)
		assert.LessOrEqual(t, result.MappingConfidence, 95.0)
	}
}

func TestMapCodesConfidenceRewardsCorroboration(t *testing.T) {
	strong := mapAnswers(t, map[string]interface{}{
		"pain_intensity":          4,
		"pain_jaw":                true,
		"func_opening_limit":      4,
		"func_chewing_difficulty": 4,
		"sound_clicking":          true,
		"func_locking_closed":     true,
	}, defaultMapperOptions())
	weak := mapAnswers(t, map[string]interface{}{
		"hist_orthodontic": true,
	}, defaultMapperOptions())

	assert.Greater(t, strong.MappingConfidence, weak.MappingConfidence)
}

func TestMapCodesTieBreaksByCatalogOrder(t *testing.T) {
	values := map[string]interface{}{
		"sound_clicking":      true,
		"func_locking_closed": true,
		"func_opening_limit":  3,
	}

	first := mapAnswers(t, values, defaultMapperOptions())
	// The unilateral and bilateral disc entries tie without a stated
	// laterality; the earliest catalog entry must win every run.
	for i := 0; i < 10; i++ {
		again := mapAnswers(t, values, defaultMapperOptions())
		assert.Equal(t, first.PrimaryCode.Code, again.PrimaryCode.Code)
	}
}

func TestMapCodesDifferentialRankedAndCapped(t *testing.T) {
	opts := defaultMapperOptions()
	opts.IncludeDifferential = true

	result := mapAnswers(t, map[string]interface{}{
		"sound_clicking":      true,
		"func_locking_closed": true,
		"func_opening_limit":  3,
		"pain_jaw":            true,
		"pain_intensity":      2,
	}, opts)

	require.NotEmpty(t, result.Differential)
	assert.LessOrEqual(t, len(result.Differential), 3)
	for i := 1; i < len(result.Differential); i++ {
		assert.GreaterOrEqual(t, result.Differential[i-1].MatchScore, result.Differential[i].MatchScore)
	}
	for _, candidate := range result.Differential {
		assert.NotEqual(t, result.PrimaryCode.Code, candidate.Code.Code)
	}
}

func TestMapCodesJustificationNamesPrimary(t *testing.T) {
	result := mapAnswers(t, map[string]interface{}{
		"sound_clicking":      true,
		"func_locking_closed": true,
		"func_opening_limit":  3,
		"sound_location":      LateralityBilateral,
	}, defaultMapperOptions())

	assert.Contains(t, result.Justification, result.PrimaryCode.Code)
	assert.Contains(t, result.Justification, "bilateral")
}

func TestCheckCodeConflictsLateralityWording(t *testing.T) {
	bilateral, _ := CodeByID("M26.633")
	unilateral, _ := CodeByID("M26.621")

	conflicts := CheckCodeConflicts(MappingResult{
		PrimaryCode:    bilateral,
		SecondaryCodes: []DiagnosticCode{unilateral},
	})

	require.Len(t, conflicts, 2)
	assert.Contains(t, conflicts[0], "joint-pain and disc-disorder")
	assert.Contains(t, conflicts[1], "bilateral and unilateral")
}

func TestCheckCodeConflictsCleanMapping(t *testing.T) {
	primary, _ := CodeByID("M79.11")
	assert.Empty(t, CheckCodeConflicts(MappingResult{PrimaryCode: primary}))
}

func TestBuildClinicalProfileTagsAndLaterality(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"sound_clicking":   true,
		"sound_on_chewing": true,
		"assoc_headache":   true,
		"pain_intensity":   3,
		"pain_location":    LateralityUnilateral,
		"sound_location":   LateralityBilateral,
	})

	profile := BuildClinicalProfile(set, ScoreAllCategories(set))

	// De-duplicated, catalog order.
	assert.Equal(t, []string{"clicking", "headache"}, profile.Tags)
	assert.True(t, profile.PainAnswered)
	assert.Equal(t, 3, profile.PainScore)
	assert.Equal(t, LateralityBilateral, profile.Laterality)
}
