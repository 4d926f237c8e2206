package session

import (
	"unicode/utf8"

	dErrors "socialboot/pkg/domain-errors"
)

// MinPasswordLength is the shortest new password the settings page accepts.
const MinPasswordLength = 8

// ValidatePasswordChange checks a settings-page password change before any
// store call. Mismatch is reported before length.
func ValidatePasswordChange(next, confirm string) error {
	if next == "" {
		return dErrors.New(dErrors.CodeMissingFields, "new password is required")
	}
	if next != confirm {
		return dErrors.New(dErrors.CodePasswordMismatch, "New passwords do not match")
	}
	if utf8.RuneCountInString(next) < MinPasswordLength {
		return dErrors.New(dErrors.CodeValidation, "Password must be at least 8 characters long")
	}
	return nil
}
