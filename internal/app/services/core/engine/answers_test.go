package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerSetAcceptsNilAsUnanswered(t *testing.T) {
	set, err := ParseAnswerSet([]RawAnswer{
		{QuestionID: "pain_jaw", Value: true},
		{QuestionID: "pain_intensity", Value: nil},
	})
	require.NoError(t, err)

	assert.True(t, set.Answered("pain_jaw"))
	assert.False(t, set.Answered("pain_intensity"))
	assert.Equal(t, 1, set.AnsweredCount())
}

func TestParseAnswerSetRejectsUnknownQuestion(t *testing.T) {
	_, err := ParseAnswerSet([]RawAnswer{{QuestionID: "pain_elbow", Value: true}})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "pain_elbow", inputErr.QuestionID)
}

func TestParseAnswerSetRejectsScaleOutOfRange(t *testing.T) {
	// A 0-10 style submission against the declared 0-4 scale fails fast.
	_, err := ParseAnswerSet([]RawAnswer{{QuestionID: "pain_intensity", Value: 15}})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "pain_intensity", inputErr.QuestionID)
	assert.Contains(t, inputErr.Reason, "0-4")
}

func TestParseAnswerSetRejectsTypeMismatch(t *testing.T) {
	cases := []RawAnswer{
		{QuestionID: "pain_jaw", Value: "yes"},
		{QuestionID: "pain_intensity", Value: true},
		{QuestionID: "pain_intensity", Value: 2.5},
		{QuestionID: "sound_location", Value: 1},
		{QuestionID: "sound_location", Value: "both sides"},
	}
	for _, ra := range cases {
		_, err := ParseAnswerSet([]RawAnswer{ra})
		var inputErr *InputError
		assert.ErrorAs(t, err, &inputErr, "%v", ra)
	}
}

func TestParseAnswerSetAcceptsJSONNumbers(t *testing.T) {
	set, err := ParseAnswerSet([]RawAnswer{{QuestionID: "pain_intensity", Value: float64(3)}})
	require.NoError(t, err)

	v, ok := set.Scale("pain_intensity")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestParseAnswerSetRejectsDuplicates(t *testing.T) {
	_, err := ParseAnswerSet([]RawAnswer{
		{QuestionID: "pain_jaw", Value: true},
		{QuestionID: "pain_jaw", Value: false},
	})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Reason, "duplicate")
}

func TestParseAnswerSetRejectsEmptySubmission(t *testing.T) {
	_, err := ParseAnswerSet(nil)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestAnswersAreListedInCatalogOrder(t *testing.T) {
	set := mustAnswerSet(t, map[string]interface{}{
		"hist_trauma":    true,
		"pain_jaw":       true,
		"sound_clicking": false,
	})

	var ids []string
	for _, a := range set.Answers() {
		ids = append(ids, a.QuestionID)
	}
	assert.Equal(t, []string{"pain_jaw", "sound_clicking", "hist_trauma"}, ids)
}
