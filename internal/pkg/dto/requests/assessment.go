package requests

type SubmittedAnswer struct {
	QuestionID string      `json:"question_id" validate:"required"`
	Value      interface{} `json:"value"`
}

type SubmitAssessment struct {
	ProtocolVariant string            `json:"protocol_variant" validate:"required,protocol_variant"`
	RespondentType  string            `json:"respondent_type" validate:"omitempty,respondent_type"`
	Answers         []SubmittedAnswer `json:"answers" validate:"required,min=1,dive"`
}
