package engine

// FollowUpPlan is the structured directive attached to every result.
type FollowUpPlan struct {
	Timeframe           string   `json:"timeframe"`
	MonitoredParameters []string `json:"monitored_parameters"`
	RedFlags            []string `json:"red_flags"`
}

var tierRecommendations = map[RiskTier][]string{
	RiskLow: {
		"Reassure the patient; current findings do not indicate active TMD requiring intervention.",
		"Provide self-care education: soft diet during flare-ups, avoid extreme jaw movements.",
		"Re-screen at the next routine visit.",
	},
	RiskModerate: {
		"Schedule a clinical TMD examination to confirm the screening findings.",
		"Start conservative management: jaw rest, thermal therapy, habit awareness.",
		"Document baseline mouth opening and pain levels for follow-up comparison.",
	},
	RiskHigh: {
		"Refer to an orofacial pain specialist for comprehensive evaluation.",
		"Initiate a structured pain-management plan pending the specialist visit.",
		"Rule out acute disc displacement before any definitive treatment.",
		"Arrange short-interval follow-up to monitor progression.",
	},
}

// categoryTrigger adds a recommendation when a category percentage crosses
// its threshold. Triggers fire in category declaration order, after the
// tier base items.
type categoryTrigger struct {
	category  Category
	threshold float64
	text      string
}

var categoryTriggers = []categoryTrigger{
	{CategoryPain, 60, "Add targeted pain management: short-course analgesics and jaw-rest guidance."},
	{CategoryFunction, 60, "Refer for orofacial physical therapy to address functional limitation."},
	{CategorySounds, 60, "Consider TMJ imaging (MRI preferred) to characterise the joint sounds."},
	{CategoryAssociated, 50, "Screen for secondary headache and otologic involvement."},
	{CategoryHistory, 50, "Review parafunctional habits; consider an occlusal splint."},
}

var followUpRedFlags = []string{
	"sudden inability to open or close the mouth",
	"pain intensity at the top of the scale",
	"rapidly progressing functional limitation",
	"new facial asymmetry or swelling",
}

// GenerateRecommendations is a deterministic lookup: tier base items first,
// then category-triggered items in category declaration order, then a
// mapper-driven referral when the primary diagnosis is a disc disorder.
func GenerateRecommendations(risk RiskResult, scores map[Category]CategoryScore, mapping MappingResult) ([]string, FollowUpPlan) {
	recommendations := append([]string(nil), tierRecommendations[risk.Tier]...)

	for _, trigger := range categoryTriggers {
		if scores[trigger.category].Percentage > trigger.threshold {
			recommendations = append(recommendations, trigger.text)
		}
	}
	if mapping.PrimaryCode.Family == FamilyDisc {
		recommendations = append(recommendations, "Discuss disc-displacement findings with the patient and plan staged treatment.")
	}

	return recommendations, buildFollowUpPlan(risk, scores)
}

func buildFollowUpPlan(risk RiskResult, scores map[Category]CategoryScore) FollowUpPlan {
	plan := FollowUpPlan{RedFlags: append([]string(nil), followUpRedFlags...)}

	switch risk.Tier {
	case RiskHigh:
		plan.Timeframe = "1-2 weeks"
	case RiskModerate:
		plan.Timeframe = "4-6 weeks"
	default:
		plan.Timeframe = "3 months"
	}

	plan.MonitoredParameters = []string{"pain intensity (0-4)", "maximum mouth opening"}
	if scores[CategorySounds].Percentage > 0 {
		plan.MonitoredParameters = append(plan.MonitoredParameters, "joint sound character and side")
	}
	if scores[CategoryAssociated].Percentage > 0 {
		plan.MonitoredParameters = append(plan.MonitoredParameters, "headache frequency")
	}
	return plan
}
