package engine

// Interpretation is the fixed 4-band qualitative label applied to any
// percentage in the pipeline.
type Interpretation string

const (
	InterpretationNormal   Interpretation = "normal"
	InterpretationMild     Interpretation = "mild"
	InterpretationModerate Interpretation = "moderate"
	InterpretationSevere   Interpretation = "severe"
)

// interpretPercentage maps a 0-100 percentage onto the shared 4 bands.
// The same cut points are used everywhere a percentage needs a label.
func interpretPercentage(pct float64) Interpretation {
	switch {
	case pct <= 25:
		return InterpretationNormal
	case pct <= 50:
		return InterpretationMild
	case pct <= 75:
		return InterpretationModerate
	default:
		return InterpretationSevere
	}
}

// CategoryScore is the reduction of one category's answered questions.
// Unanswered questions contribute to neither numerator nor denominator, so
// the percentage stays meaningful under partial completion; completeness is
// tracked separately by the confidence estimator.
type CategoryScore struct {
	Category            Category       `json:"category"`
	RawScore            float64        `json:"raw_score"`
	MaxScore            float64        `json:"max_score"`
	Percentage          float64        `json:"percentage"`
	Interpretation      Interpretation `json:"interpretation"`
	ContributingFactors []string       `json:"contributing_factors"`
}

// ScoreCategory is a pure function: the same answer set always scores
// identically.
func ScoreCategory(set *AnswerSet, category Category) CategoryScore {
	score := CategoryScore{Category: category}

	for _, question := range QuestionsForCategory(category) {
		if !set.Answered(question.ID) {
			continue
		}
		contribution := questionContribution(set, question)
		score.RawScore += contribution
		score.MaxScore += question.maxPoints()
		if contribution > 0 {
			score.ContributingFactors = append(score.ContributingFactors, question.Text)
		}
	}

	if score.MaxScore > 0 {
		score.Percentage = score.RawScore / score.MaxScore * 100
	}
	score.Interpretation = interpretPercentage(score.Percentage)
	return score
}

func questionContribution(set *AnswerSet, question Question) float64 {
	switch question.Domain.Kind {
	case DomainBoolean:
		if v, _ := set.Bool(question.ID); v {
			return question.PointWeight
		}
		return 0
	case DomainScale:
		v, _ := set.Scale(question.ID)
		if question.Domain.ScaleMax == 0 {
			return 0
		}
		return float64(v) / float64(question.Domain.ScaleMax) * question.PointWeight
	case DomainEnum:
		opt, _ := set.Option(question.ID)
		points, _ := question.Domain.optionPoints(opt)
		return points
	}
	return 0
}

// ScoreAllCategories scores the five categories independently.
func ScoreAllCategories(set *AnswerSet) map[Category]CategoryScore {
	scores := make(map[Category]CategoryScore, len(Categories()))
	for _, category := range Categories() {
		scores[category] = ScoreCategory(set, category)
	}
	return scores
}

// Weights is the convex combination applied by ComposeScore. It must cover
// every category and sum to 1; NewEngine enforces this at construction.
type Weights map[Category]float64

// ComposeScore combines category percentages into the 0-100 composite score.
// Categories with no answered questions contribute 0 through their 0
// percentage; an entirely unanswered set composes to 0.
func ComposeScore(scores map[Category]CategoryScore, weights Weights) float64 {
	var composite float64
	for _, category := range Categories() {
		composite += scores[category].Percentage * weights[category]
	}
	return clampPercentage(composite)
}

func clampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
