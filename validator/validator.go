package validator

import (
	"regexp"

	"stayhub/errors"
)

// ValidateRegistration checks the registration payload beyond binding tags
func ValidateRegistration(username, email, password, password2 string) error {
	if username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username must not be empty", nil)
	}

	if !isValidUsername(username) {
		return errors.NewAppError(errors.ErrCodeValidation, "Username may only contain letters, digits and @/./+/-/_", nil)
	}

	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}

	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}

	if password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}

	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if password != password2 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password fields didn't match.", nil)
	}

	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// letters, digits and @.+-_ only, matching what the frontend accepts
func isValidUsername(username string) bool {
	usernameRegex := regexp.MustCompile(`^[\w.@+-]+$`)
	return usernameRegex.MatchString(username)
}
