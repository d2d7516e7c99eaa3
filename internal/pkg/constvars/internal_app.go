package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_CLINICIAN_KEY  ContextKey = "clinician_subject"
)

const (
	RespondentTypeGuest     = "guest"
	RespondentTypeClinician = "clinician"
)

const (
	ResourceAssessments = "assessments"
	ResourceCatalogs    = "catalogs"
)

const MongoCollectionAssessments = "assessments"

const RedisShareTokenKeyPrefix = "assessment:share:"
