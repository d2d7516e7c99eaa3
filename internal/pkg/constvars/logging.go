package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingAssessmentIDKey    = "assessment_id"
	LoggingProtocolVariantKey = "protocol_variant"
	LoggingRiskTierKey        = "risk_tier"
	LoggingDurationMsKey      = "duration_ms"
	LoggingAnswerCountKey     = "answer_count"
	LoggingShareTokenKey      = "share_token"
	LoggingManualReviewKey    = "manual_review_required"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
)
