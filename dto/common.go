package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// BookDate is the "bookdate" binding rule: a YYYY-MM-DD calendar date
var BookDate validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD wire date
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
