package engine

import (
	"fmt"
	"sort"
	"strings"
)

// ClinicalProfile is the derived tag/magnitude set compared against the code
// catalog. Tags come from positively answered symptom questions; magnitudes
// from the pain scale and the functional category percentage.
type ClinicalProfile struct {
	Tags          []string `json:"tags"`
	PainScore     int      `json:"pain_score"`
	PainAnswered  bool     `json:"pain_answered"`
	FunctionalPct float64  `json:"functional_pct"`
	Laterality    string   `json:"laterality,omitempty"`
}

func (p ClinicalProfile) hasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BuildClinicalProfile derives the profile from the raw answers and category
// scores. Tags are collected in catalog declaration order and de-duplicated.
func BuildClinicalProfile(set *AnswerSet, scores map[Category]CategoryScore) ClinicalProfile {
	profile := ClinicalProfile{FunctionalPct: scores[CategoryFunction].Percentage}

	seen := make(map[string]bool)
	for _, question := range questionCatalog {
		if question.Tag == "" || seen[question.Tag] {
			continue
		}
		if set.positive(question.ID) {
			profile.Tags = append(profile.Tags, question.Tag)
			seen[question.Tag] = true
		}
	}

	if pain, ok := set.Scale("pain_intensity"); ok {
		profile.PainScore = pain
		profile.PainAnswered = true
	}
	profile.Laterality = dominantLaterality(set)
	return profile
}

// dominantLaterality reads the two location questions; bilateral wins over
// unilateral when they disagree.
func dominantLaterality(set *AnswerSet) string {
	var unilateral bool
	for _, id := range []string{"pain_location", "sound_location"} {
		switch opt, _ := set.Option(id); opt {
		case LateralityBilateral:
			return LateralityBilateral
		case LateralityUnilateral:
			unilateral = true
		}
	}
	if unilateral {
		return LateralityUnilateral
	}
	return ""
}

type ExcludedCode struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// ScoredCode is a differential-diagnosis candidate with its match score.
type ScoredCode struct {
	Code       DiagnosticCode `json:"code"`
	MatchScore float64        `json:"match_score"`
}

type MappingResult struct {
	PrimaryCode       DiagnosticCode   `json:"primary_code"`
	MatchScore        float64          `json:"match_score"`
	SecondaryCodes    []DiagnosticCode `json:"secondary_codes,omitempty"`
	ExcludedCodes     []ExcludedCode   `json:"excluded_codes,omitempty"`
	MappingConfidence float64          `json:"mapping_confidence"`
	Justification     string           `json:"justification"`
	Differential      []ScoredCode     `json:"differential,omitempty"`
}

// MapperOptions control the optional mapping outputs.
type MapperOptions struct {
	MatchScoreFloor       float64
	FallbackCode          string
	IncludeSecondaryCodes bool
	IncludeDifferential   bool
}

// MapCodes scores every catalog entry against the clinical profile and
// selects the best-match primary code. Ties resolve to the earliest catalog
// entry, so the result is identical run to run.
func MapCodes(classification ClinicalClassification, set *AnswerSet, scores map[Category]CategoryScore, opts MapperOptions) MappingResult {
	profile := BuildClinicalProfile(set, scores)

	scored := make([]ScoredCode, 0, len(codeCatalog))
	best := ScoredCode{MatchScore: -1}
	for _, code := range codeCatalog {
		s := ScoredCode{Code: code, MatchScore: matchScore(code, profile)}
		scored = append(scored, s)
		if s.MatchScore > best.MatchScore {
			best = s
		}
	}

	result := MappingResult{PrimaryCode: best.Code, MatchScore: best.MatchScore}
	if best.MatchScore < opts.MatchScoreFloor {
		fallback, ok := CodeByID(opts.FallbackCode)
		if !ok {
			fallback, _ = CodeByID(fallbackDiagnosticCode)
		}
		result.PrimaryCode = fallback
		result.MatchScore = best.MatchScore
	}

	result.ExcludedCodes = excludedCodes(result.PrimaryCode)
	if opts.IncludeSecondaryCodes {
		result.SecondaryCodes = secondaryCodes(result.PrimaryCode, profile, result.ExcludedCodes)
	}
	result.MappingConfidence = mappingConfidence(result.PrimaryCode, profile)
	result.Justification = buildJustification(result.PrimaryCode, profile, classification)

	if opts.IncludeDifferential {
		result.Differential = differential(scored, result.PrimaryCode)
	}
	return result
}

// matchScore weights pain-threshold satisfaction 40%, functional-threshold
// satisfaction 30% and required-tag overlap 30%, with a laterality bonus.
// Criteria a code does not declare score a neutral half credit; a declared
// laterality that disagrees with the profile costs a small penalty so the
// unspecified code outranks a mismatched sided one.
func matchScore(code DiagnosticCode, profile ClinicalProfile) float64 {
	painSub := 0.5
	if code.Criteria.PainThreshold != nil {
		painSub = 0
		if profile.PainAnswered && profile.PainScore >= *code.Criteria.PainThreshold {
			painSub = 1
		}
	}

	funcSub := 0.5
	if code.Criteria.FunctionalThreshold != nil {
		funcSub = 0
		if profile.FunctionalPct >= *code.Criteria.FunctionalThreshold {
			funcSub = 1
		}
	}

	var tagSub float64
	if n := len(code.Criteria.RequiredTags); n > 0 {
		matched := 0
		for _, tag := range code.Criteria.RequiredTags {
			if profile.hasTag(tag) {
				matched++
			}
		}
		tagSub = float64(matched) / float64(n)
	}

	score := 0.4*painSub + 0.3*funcSub + 0.3*tagSub
	if code.Criteria.Laterality != "" {
		if code.Criteria.Laterality == profile.Laterality {
			score += 0.1
		} else {
			score -= 0.05
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// excludedCodes lists every catalog entry whose exclusions reference the
// primary code's family. The primary itself is never listed.
func excludedCodes(primary DiagnosticCode) []ExcludedCode {
	var excluded []ExcludedCode
	for _, code := range codeCatalog {
		if code.Code == primary.Code {
			continue
		}
		for _, family := range code.Criteria.Excludes {
			if family == primary.Family {
				excluded = append(excluded, ExcludedCode{
					Code:   code.Code,
					Reason: fmt.Sprintf("incompatible with primary diagnosis %s (%s family)", primary.Code, primary.Family),
				})
				break
			}
		}
	}
	return excluded
}

// secondaryCodes applies the fixed, deterministic secondary rules. A code
// already excluded or equal to the primary is never added.
func secondaryCodes(primary DiagnosticCode, profile ClinicalProfile, excluded []ExcludedCode) []DiagnosticCode {
	isExcluded := func(code string) bool {
		for _, e := range excluded {
			if e.Code == code {
				return true
			}
		}
		return false
	}

	var secondary []DiagnosticCode
	add := func(codeID string) {
		if codeID == primary.Code || isExcluded(codeID) {
			return
		}
		for _, existing := range secondary {
			if existing.Code == codeID {
				return
			}
		}
		if code, ok := CodeByID(codeID); ok {
			secondary = append(secondary, code)
		}
	}

	if profile.hasTag("headache") {
		add("G44.89")
	}
	if (primary.Family == FamilyJoint || primary.Family == FamilyDisc) && profile.hasTag("muscle_pain") {
		add("M79.1")
	}
	return secondary
}

// mappingConfidence is an independent 50-95 signal, not the match score.
// It starts at 70, moves with corroborating and contradictory findings, and
// is clamped into the band.
func mappingConfidence(primary DiagnosticCode, profile ClinicalProfile) float64 {
	confidence := 70.0

	if profile.PainAnswered && profile.PainScore >= 3 {
		confidence += 8
	}
	if profile.FunctionalPct > 75 {
		confidence += 7
	}
	jointFamily := primary.Family == FamilyDisc || primary.Family == FamilyJoint
	soundsPresent := profile.hasTag("clicking") || profile.hasTag("popping") || profile.hasTag("crepitus") || profile.hasTag("locking")
	if jointFamily && soundsPresent {
		confidence += 5
	}
	if primary.Family == FamilyMuscle && soundsPresent {
		confidence -= 8
	}
	if jointFamily && profile.PainAnswered && profile.PainScore == 0 {
		confidence -= 6
	}
	if !profile.PainAnswered {
		confidence -= 5
	}

	if confidence < 50 {
		confidence = 50
	}
	if confidence > 95 {
		confidence = 95
	}
	return confidence
}

func buildJustification(primary DiagnosticCode, profile ClinicalProfile, classification ClinicalClassification) string {
	parts := []string{fmt.Sprintf("Selected %s (%s) for a %s presentation classified as %s",
		primary.Code, primary.Description, classification.Severity, classification.Subtype)}

	if primary.Criteria.PainThreshold != nil && profile.PainAnswered && profile.PainScore >= *primary.Criteria.PainThreshold {
		parts = append(parts, fmt.Sprintf("pain intensity %d/%d meets the threshold of %d", profile.PainScore, painScaleMax, *primary.Criteria.PainThreshold))
	}
	if primary.Criteria.FunctionalThreshold != nil && profile.FunctionalPct >= *primary.Criteria.FunctionalThreshold {
		parts = append(parts, fmt.Sprintf("functional limitation %.0f%% exceeds the threshold of %.0f%%", profile.FunctionalPct, *primary.Criteria.FunctionalThreshold))
	}
	var present []string
	for _, tag := range primary.Criteria.RequiredTags {
		if profile.hasTag(tag) {
			present = append(present, tag)
		}
	}
	if len(present) > 0 {
		parts = append(parts, fmt.Sprintf("reported symptoms include %s", strings.Join(present, ", ")))
	}
	if primary.Criteria.Laterality != "" && primary.Criteria.Laterality == profile.Laterality {
		parts = append(parts, fmt.Sprintf("%s presentation is concordant with the code wording", profile.Laterality))
	}
	return strings.Join(parts, "; ") + "."
}

// differential ranks the runners-up by match score, earliest catalog entry
// first on ties, capped at three entries.
func differential(scored []ScoredCode, primary DiagnosticCode) []ScoredCode {
	candidates := make([]ScoredCode, 0, len(scored))
	for _, s := range scored {
		if s.Code.Code != primary.Code {
			candidates = append(candidates, s)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates
}

// CheckCodeConflicts flags combinations the mapper reports but never
// auto-resolves: a pure-joint and a pure-disc code together, or bilateral and
// unilateral wording together.
func CheckCodeConflicts(result MappingResult) []string {
	all := append([]DiagnosticCode{result.PrimaryCode}, result.SecondaryCodes...)

	var hasJoint, hasDisc bool
	var hasBilateral, hasUnilateral bool
	for _, code := range all {
		switch code.Family {
		case FamilyJoint:
			hasJoint = true
		case FamilyDisc:
			hasDisc = true
		}
		switch code.Criteria.Laterality {
		case LateralityBilateral:
			hasBilateral = true
		case LateralityUnilateral:
			hasUnilateral = true
		}
	}

	var conflicts []string
	if hasJoint && hasDisc {
		conflicts = append(conflicts, "joint-pain and disc-disorder codes are present together")
	}
	if hasBilateral && hasUnilateral {
		conflicts = append(conflicts, "bilateral and unilateral code wordings are present together")
	}
	return conflicts
}
