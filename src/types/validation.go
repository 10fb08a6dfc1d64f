package types

import (
	"blacktie/src/config"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var bookableDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.Parse(config.TIME_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	today := time.Now()
	if today.After(datetime) {
		return false
	}
	return true
}

var gtfield validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.Parse(config.TIME_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	field := fl.Parent().FieldByName(fl.Param())
	fieldValue, ok := field.Interface().(string)
	if !ok {
		return false
	}
	fielddatetime, err := time.Parse(config.TIME_PARSE_FORMAT, fieldValue)
	if err != nil {
		return false
	}
	return datetime.After(fielddatetime)
}

// GetValidator returns the shared validator with the booking date rules
// registered.
func GetValidator() *validator.Validate {
	if validate != nil {
		return validate
	}
	v := validator.New()
	v.RegisterValidation("bookabledate", bookableDateValidatorFunc)
	v.RegisterValidation("gtdate", gtfield)
	validate = v
	return v
}
