package constvars

const (
	SubmitAssessmentSuccessMessage    = "Successfully processed assessment"
	DryRunAssessmentSuccessMessage    = "Successfully validated assessment submission"
	FindAssessmentSuccessMessage      = "Successfully fetched assessment"
	ListQuestionCatalogSuccessMessage = "Successfully fetched question catalog"
	ListCodeCatalogSuccessMessage     = "Successfully fetched diagnostic code catalog"
)
