package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "socialboot/pkg/domain-errors"
)

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name    string
		next    string
		confirm string
		code    dErrors.Code
	}{
		{name: "empty", next: "", confirm: "", code: dErrors.CodeMissingFields},
		{name: "mismatch", next: "longenough1", confirm: "longenough2", code: dErrors.CodePasswordMismatch},
		{name: "mismatch wins over length", next: "short", confirm: "other", code: dErrors.CodePasswordMismatch},
		{name: "too short", next: "short", confirm: "short", code: dErrors.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordChange(tt.next, tt.confirm)
			assert.True(t, dErrors.HasCode(err, tt.code), "got %v", err)
		})
	}

	assert.NoError(t, ValidatePasswordChange("longenough", "longenough"))
}
