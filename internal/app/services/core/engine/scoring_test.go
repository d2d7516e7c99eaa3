package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAnswerSet(t *testing.T, values map[string]interface{}) *AnswerSet {
	t.Helper()
	raw := make([]RawAnswer, 0, len(values))
	for id, v := range values {
		raw = append(raw, RawAnswer{QuestionID: id, Value: v})
	}
	set, err := ParseAnswerSet(raw)
	require.NoError(t, err)
	return set
}

// allNegativeAnswers answers every question with its lowest value.
func allNegativeAnswers(t *testing.T) *AnswerSet {
	t.Helper()
	values := make(map[string]interface{})
	for _, q := range Questions() {
		switch q.Domain.Kind {
		case DomainBoolean:
			values[q.ID] = false
		case DomainScale:
			values[q.ID] = 0
		case DomainEnum:
			values[q.ID] = LateralityNone
		}
	}
	return mustAnswerSet(t, values)
}

func TestScoreCategoryUnansweredContributeNothing(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_jaw":       true,
		"pain_intensity": 2,
	})

	score := ScoreCategory(set, CategoryPain)

	// Two of six pain questions answered: denominator is answered max only.
	assert.Equal(t, float64(2+4), score.MaxScore)
	assert.Equal(t, float64(2+2), score.RawScore)
	assert.InDelta(t, 66.67, score.Percentage, 0.01)
	assert.Equal(t, InterpretationModerate, score.Interpretation)
}

func TestScoreCategoryEmptyCategoryIsZero(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{"pain_jaw": true})

	score := ScoreCategory(set, CategorySounds)

	assert.Zero(t, score.MaxScore)
	assert.Zero(t, score.Percentage)
	assert.Equal(t, InterpretationNormal, score.Interpretation)
	assert.Empty(t, score.ContributingFactors)
}

func TestScoreCategoryBooleanContributions(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"sound_clicking": true,
		"sound_popping":  false,
	})

	score := ScoreCategory(set, CategorySounds)

	assert.Equal(t, 2.0, score.RawScore)
	assert.Equal(t, 4.0, score.MaxScore)
	assert.Equal(t, []string{"Clicking sound in the joint"}, score.ContributingFactors)
}

func TestScoreCategoryScaleIsProportional(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{"pain_intensity": 2})

	score := ScoreCategory(set, CategoryPain)

	assert.Equal(t, 2.0, score.RawScore) // 2/4 * weight 4
	assert.Equal(t, 4.0, score.MaxScore)
}

func TestScoreCategoryEnumOptionPoints(t *testing.T) {
	bilateral := mustAnswerSet(t, map[string]interface{}{"sound_location": LateralityBilateral})
	unilateral := mustAnswerSet(t, map[string]interface{}{"sound_location": LateralityUnilateral})
	none := mustAnswerSet(t, map[string]interface{}{"sound_location": LateralityNone})

	assert.Equal(t, 3.0, ScoreCategory(bilateral, CategorySounds).RawScore)
	assert.Equal(t, 2.0, ScoreCategory(unilateral, CategorySounds).RawScore)
	assert.Zero(t, ScoreCategory(none, CategorySounds).RawScore)
	// Denominator is the same regardless of the chosen option.
	assert.Equal(t, 3.0, ScoreCategory(none, CategorySounds).MaxScore)
}

func TestScoreCategoryPercentageBounds(t *testing.T) {
	sets := []*AnswerSet{
		allNegativeAnswers(t),
		mustAnswerSet(t, map[string]interface{}{"pain_intensity": 4, "pain_jaw": true}),
		mustAnswerSet(t, map[string]interface{}{"hist_trauma": true}),
	}
	for _, set := range sets {
		for _, category := range Categories() {
			score := ScoreCategory(set, category)
			assert.GreaterOrEqual(t, score.Percentage, 0.0)
			assert.LessOrEqual(t, score.Percentage, 100.0)
			if score.MaxScore == 0 {
				assert.Zero(t, score.Percentage)
			}
		}
	}
}

// Flipping a boolean from false to true never decreases the raw score.
func TestScoreCategoryBooleanMonotonicity(t *testing.T) {
	for _, q := range QuestionsForCategory(CategorySounds) {
		if q.Domain.Kind != DomainBoolean {
			continue
		}
		before := ScoreCategory(mustAnswerSet(t, map[string]interface{}{q.ID: false}), CategorySounds)
		after := ScoreCategory(mustAnswerSet(t, map[string]interface{}{q.ID: true}), CategorySounds)
		assert.GreaterOrEqual(t, after.RawScore, before.RawScore, q.ID)
	}
}

func TestScoreCategoryIsDeterministic(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"pain_jaw":       true,
		"pain_intensity": 3,
		"pain_location":  LateralityBilateral,
	})

	first := ScoreCategory(set, CategoryPain)
	second := ScoreCategory(set, CategoryPain)
	assert.Equal(t, first, second)
}

func TestComposeScoreWeightedBlend(t *testing.T) {
	scores := map[Category]CategoryScore{
		CategoryPain:       {Percentage: 100},
		CategoryFunction:   {Percentage: 50},
		CategorySounds:     {},
		CategoryAssociated: {},
		CategoryHistory:    {},
	}
	weights := DefaultScoringConfig().Weights

	composite := ComposeScore(scores, weights)
	assert.InDelta(t, 100*0.30+50*0.25, composite, 1e-9)
}

func TestComposeScoreDegenerateInput(t *testing.T) {
	scores := map[Category]CategoryScore{}
	composite := ComposeScore(scores, DefaultScoringConfig().Weights)
	assert.Zero(t, composite)
}

func TestInterpretationBands(t *testing.T) {
	cases := []struct {
		pct  float64
		want Interpretation
	}{
		{0, InterpretationNormal},
		{25, InterpretationNormal},
		{25.1, InterpretationMild},
		{50, InterpretationMild},
		{50.1, InterpretationModerate},
		{75, InterpretationModerate},
		{75.1, InterpretationSevere},
		{100, InterpretationSevere},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, interpretPercentage(tc.pct), "pct=%v", tc.pct)
	}
}
