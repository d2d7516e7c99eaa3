package constvars

const (
	URLParamAssessmentID = "assessment_id"
	URLParamShareToken   = "share_token"
)
