package exceptions

import (
	"net/http"

	"tmdscreen-service/internal/app/services/core/engine"
	"tmdscreen-service/internal/pkg/constvars"
)

func ErrCannotParseJSON(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
}

func ErrCannotMarshalJSON(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
}

func ErrInputValidation(err error, clientMessage string) *CustomError {
	return BuildNewCustomError(err, http.StatusBadRequest, clientMessage, constvars.ErrDevValidationFailed)
}

// ErrAssessmentInput maps an answer domain violation to a 400. The question
// id and reason are safe to surface to the caller.
func ErrAssessmentInput(err *engine.InputError) *CustomError {
	return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidAnswer, constvars.ErrDevAnswerDomainViolation)
}

// ErrProtocolValidation maps a strict-mode validation failure to a 422 and
// carries the full report so the caller can see which rules failed.
func ErrProtocolValidation(failure *engine.ValidationFailure) *CustomError {
	custom := BuildNewCustomError(failure, http.StatusUnprocessableEntity, constvars.ErrClientProtocolNotSatisfied, constvars.ErrDevProtocolValidation)
	return custom.WithData(failure.Report)
}

func ErrUnknownCatalogCategory(category string) *CustomError {
	return BuildNewCustomError(nil, http.StatusBadRequest, constvars.ErrClientUnknownCatalogCategory, "unknown question category "+category)
}

func ErrAssessmentNotFound(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientAssessmentNotFound, constvars.ErrDevAssessmentNotFound)
}

func ErrShareTokenExpired(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientShareTokenExpired, constvars.ErrDevShareTokenNotFound)
}

func ErrTokenMissing(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
}

func ErrTokenInvalid(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalid)
}

func ErrAPIKeyRequired(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAPIKeyRequired)
}

func ErrAPIKeyInvalid(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidAPIKey)
}

func ErrServerDeadlineExceeded(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
}

func ErrMongoInsert(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoInsert)
}

func ErrMongoFind(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFind)
}

func ErrRedisSet(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
}

func ErrRedisGet(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
}

func ErrRedisDelete(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
}

func ErrPublishTelemetry(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishTelemetry)
}

func ErrArchiveReport(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevArchiveReport)
}
