package constvars

// Client-facing messages never expose internals.
const (
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientInvalidAnswer                 = "One or more answers are invalid for the questionnaire"
	ErrClientProtocolNotSatisfied          = "The submission does not satisfy the assessment protocol"
	ErrClientAssessmentNotFound            = "Assessment not found"
	ErrClientShareTokenExpired             = "The shared assessment link is invalid or has expired"
	ErrClientUnknownCatalogCategory        = "Unknown question category"
)

const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse request body as JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal response payload"
	ErrDevInvalidInput           = "invalid input"
	ErrDevServerDeadlineExceeded = "deadline exceeded while processing the request"
	ErrDevAuthTokenMissing       = "authorization token missing"
	ErrDevAuthTokenInvalid       = "authorization token invalid or expired"
	ErrDevInvalidAPIKey          = "invalid api key"
	ErrDevAPIKeyRequired         = "api key required"
	ErrDevAnswerDomainViolation  = "answer violates the question's declared domain"
	ErrDevProtocolValidation     = "protocol validation reported the submission invalid"
	ErrDevAssessmentNotFound     = "assessment document not found"
	ErrDevShareTokenNotFound     = "share token not found or expired"
	ErrDevMongoInsert            = "failed to insert document into mongo"
	ErrDevMongoFind              = "failed to query document from mongo"
	ErrDevRedisSet               = "failed to set redis key"
	ErrDevRedisGet               = "failed to get redis key"
	ErrDevRedisDelete            = "failed to delete redis key"
	ErrDevPublishTelemetry       = "failed to publish telemetry event"
	ErrDevArchiveReport          = "failed to archive assessment report"
)

const ResponseUnknown = "unknown"

// CustomValidationErrorMessages maps validator tags to readable fragments.
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must have at least %s items",
	"max":              "must have at most %s items",
	"oneof":            "must be one of: %s",
	"protocol_variant": "must be either screening or full",
	"respondent_type":  "must be either guest or clinician",
}

// TagsWithParams marks the tags whose message needs the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
