package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"Attendance-Tracker/models"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("attstatus", validateAttendanceStatus)
	Validate.RegisterValidation("team", validateTeam)
}

func validateAttendanceStatus(fl validator.FieldLevel) bool {
	return models.IsValidStatus(fl.Field().String())
}

func validateTeam(fl validator.FieldLevel) bool {
	return models.IsValidTeam(fl.Field().String())
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must have at least %s characters.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must have at most %s characters.", element.Field, err.Param())
			case "email":
				element.Msg = "Invalid email format."
			case "datetime":
				element.Msg = fmt.Sprintf("Field '%s' must match the format '%s'.", element.Field, err.Param())
			case "attstatus":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %v.", element.Field, models.AttendanceStatuses)
			case "team":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %v.", element.Field, models.Teams)
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
