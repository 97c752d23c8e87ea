package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{
			name:     "valid password",
			password: "Password1!",
			wantErr:  "",
		},
		{
			name:     "missing uppercase",
			password: "password1!",
			wantErr:  "password must contain at least one uppercase letter",
		},
		{
			name:     "missing lowercase",
			password: "PASSWORD1!",
			wantErr:  "password must contain at least one lowercase letter",
		},
		{
			name:     "missing number",
			password: "Password!",
			wantErr:  "password must contain at least one number",
		},
		{
			name:     "missing special character",
			password: "Password1",
			wantErr:  "password must contain at least one special character",
		},
		{
			name:     "empty password reports uppercase first",
			password: "",
			wantErr:  "password must contain at least one uppercase letter",
		},
		{
			name:     "special outside the allow-list does not count",
			password: "Password1~",
			wantErr:  "password must contain at least one special character",
		},
		{
			name:     "every allow-listed special is accepted",
			password: `Aa1"`,
			wantErr:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			var policyErr *PasswordPolicyError
			assert.ErrorAs(t, err, &policyErr)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
