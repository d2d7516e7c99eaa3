package engine

import (
	"fmt"
	"math"
	"time"
)

// ScoringConfig is the single named configuration object for every weight
// and threshold in the pipeline. Behavioural variants of the legacy rule
// sets are expressed here, not as separate code paths.
type ScoringConfig struct {
	Weights         Weights
	Risk            RiskThresholds
	Confidence      ConfidenceConfig
	MatchScoreFloor float64
	FallbackCode    string
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: Weights{
			CategoryPain:       0.30,
			CategoryFunction:   0.25,
			CategorySounds:     0.20,
			CategoryAssociated: 0.15,
			CategoryHistory:    0.10,
		},
		Risk:            DefaultRiskThresholds(),
		Confidence:      DefaultConfidenceConfig(),
		MatchScoreFloor: 0.3,
		FallbackCode:    fallbackDiagnosticCode,
	}
}

// Options are per-run settings supplied by the caller.
type Options struct {
	StrictValidation             bool
	MinimumConfidence            float64
	IncludeSecondaryCodes        bool
	IncludeDifferentialDiagnosis bool
}

type CompositeResult struct {
	CompositeScore             float64  `json:"composite_score"`
	RiskTier                   RiskTier `json:"risk_tier"`
	Confidence                 float64  `json:"confidence"`
	RequiresImmediateAttention bool     `json:"requires_immediate_attention"`
	RedFlags                   []string `json:"red_flags,omitempty"`
}

type QualityMetrics struct {
	Completeness      float64 `json:"completeness"`
	Consistency       float64 `json:"consistency"`
	AnsweredQuestions int     `json:"answered_questions"`
	TotalQuestions    int     `json:"total_questions"`
}

// AssessmentResult is the immutable aggregate handed to the surrounding
// layers (storage, display, export). ComputedAt is the only field excluded
// from result equality.
type AssessmentResult struct {
	ProtocolVariant      ProtocolVariant        `json:"protocol_variant"`
	Validation           *ValidationReport      `json:"validation"`
	CategoryScores       []CategoryScore        `json:"category_scores"`
	Composite            CompositeResult        `json:"composite"`
	Classification       ClinicalClassification `json:"classification"`
	Mapping              MappingResult          `json:"mapping"`
	Recommendations      []string               `json:"recommendations"`
	FollowUp             FollowUpPlan           `json:"follow_up"`
	Quality              QualityMetrics         `json:"quality"`
	ManualReviewRequired bool                   `json:"manual_review_required"`
	ComputedAt           time.Time              `json:"computed_at"`
}

// Engine runs the scoring pipeline. It is a stateless value holding only
// validated configuration; callers construct one per context and may invoke
// Run concurrently without coordination.
type Engine struct {
	cfg ScoringConfig
}

// NewEngine validates the configuration against the static catalogs. Any
// violation is a CatalogError and must abort startup; integrity is never
// re-checked at request time.
func NewEngine(cfg ScoringConfig) (*Engine, error) {
	if err := checkConfigIntegrity(cfg); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

func checkConfigIntegrity(cfg ScoringConfig) error {
	var sum float64
	for _, category := range Categories() {
		weight, ok := cfg.Weights[category]
		if !ok {
			return &CatalogError{Reason: fmt.Sprintf("category %s has no configured weight", category)}
		}
		if weight < 0 {
			return &CatalogError{Reason: fmt.Sprintf("category %s has negative weight %v", category, weight)}
		}
		sum += weight
	}
	if math.Abs(sum-1) > 1e-9 {
		return &CatalogError{Reason: fmt.Sprintf("category weights sum to %v, expected 1", sum)}
	}

	if cfg.Risk.LowMax <= 0 || cfg.Risk.LowMax >= cfg.Risk.ModerateMax || cfg.Risk.ModerateMax >= 100 {
		return &CatalogError{Reason: fmt.Sprintf("risk thresholds %v/%v are not strictly ordered within 0-100", cfg.Risk.LowMax, cfg.Risk.ModerateMax)}
	}

	if math.Abs(cfg.Confidence.CompletenessWeight+cfg.Confidence.ConsistencyWeight-1) > 1e-9 {
		return &CatalogError{Reason: "confidence blend weights must sum to 1"}
	}
	if cfg.Confidence.Baseline < 0 || cfg.Confidence.Baseline > 100 {
		return &CatalogError{Reason: "confidence baseline must be within 0-100"}
	}

	if cfg.MatchScoreFloor <= 0 || cfg.MatchScoreFloor >= 1 {
		return &CatalogError{Reason: "match score floor must be within (0,1)"}
	}
	if _, ok := CodeByID(cfg.FallbackCode); !ok {
		return &CatalogError{Reason: fmt.Sprintf("fallback code %s is not in the code catalog", cfg.FallbackCode)}
	}

	families := make(map[CodeFamily]bool)
	for _, code := range codeCatalog {
		families[code.Family] = true
	}
	for _, code := range codeCatalog {
		for _, excluded := range code.Criteria.Excludes {
			if !families[excluded] {
				return &CatalogError{Reason: fmt.Sprintf("code %s excludes unknown family %s", code.Code, excluded)}
			}
		}
	}
	return nil
}

func (e *Engine) Config() ScoringConfig {
	return e.cfg
}

// Run executes one assessment transaction: validation, the five category
// scorers, composite scoring, confidence estimation, risk classification,
// clinical classification, code mapping and recommendation generation. The
// computation is pure apart from the ComputedAt timestamp; the same answer
// set and options always produce the same result.
func (e *Engine) Run(set *AnswerSet, variant ProtocolVariant, opts Options) (*AssessmentResult, error) {
	if set == nil {
		return nil, &InputError{Reason: "answer set is missing"}
	}
	if !KnownProtocolVariant(variant) {
		return nil, &InputError{Reason: fmt.Sprintf("unknown protocol variant %q", variant)}
	}

	report := Validate(set, variant)
	if opts.StrictValidation && !report.IsValid {
		return nil, &ValidationFailure{Report: report}
	}

	scores := ScoreAllCategories(set)
	composite := ComposeScore(scores, e.cfg.Weights)
	confidence, completeness, consistency := EstimateConfidence(set, e.cfg.Confidence)
	risk := ClassifyRisk(composite, set, e.cfg.Risk)
	classification := Classify(scores, set)
	mapping := MapCodes(classification, set, scores, MapperOptions{
		MatchScoreFloor:       e.cfg.MatchScoreFloor,
		FallbackCode:          e.cfg.FallbackCode,
		IncludeSecondaryCodes: opts.IncludeSecondaryCodes,
		IncludeDifferential:   opts.IncludeDifferentialDiagnosis,
	})
	recommendations, followUp := GenerateRecommendations(risk, scores, mapping)

	ordered := make([]CategoryScore, 0, len(Categories()))
	for _, category := range Categories() {
		ordered = append(ordered, scores[category])
	}

	result := &AssessmentResult{
		ProtocolVariant: variant,
		Validation:      report,
		CategoryScores:  ordered,
		Composite: CompositeResult{
			CompositeScore:             composite,
			RiskTier:                   risk.Tier,
			Confidence:                 confidence,
			RequiresImmediateAttention: risk.RequiresImmediateAttention,
			RedFlags:                   risk.RedFlags,
		},
		Classification:  classification,
		Mapping:         mapping,
		Recommendations: recommendations,
		FollowUp:        followUp,
		Quality: QualityMetrics{
			Completeness:      completeness,
			Consistency:       consistency,
			AnsweredQuestions: set.AnsweredCount(),
			TotalQuestions:    TotalQuestionCount(),
		},
		ComputedAt: time.Now().UTC(),
	}

	// Low confidence never fails the run; the result is flagged for a human
	// instead.
	if opts.MinimumConfidence > 0 &&
		(confidence < opts.MinimumConfidence || mapping.MappingConfidence < opts.MinimumConfidence) {
		result.ManualReviewRequired = true
	}
	return result, nil
}
