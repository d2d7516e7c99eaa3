package utils

import (
	"tmdscreen-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("protocol_variant", validateProtocolVariant)
	validate.RegisterValidation("respondent_type", validateRespondentType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateProtocolVariant(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "screening" || value == "full"
}

func validateRespondentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RespondentTypeGuest || value == constvars.RespondentTypeClinician
}
