package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"validation":   {&ValidationError{Fields: []FieldError{{Field: "email", Message: "bad"}}}, http.StatusBadRequest},
		"conflict":     {fmt.Errorf("Signup: %w", ErrConflict), http.StatusBadRequest},
		"credentials":  {ErrInvalidCredentials, http.StatusUnauthorized},
		"deactivated":  {ErrAccountDeactivated, http.StatusUnauthorized},
		"unauthorized": {ErrUnauthenticated, http.StatusUnauthorized},
		"forbidden":    {ErrForbidden, http.StatusForbidden},
		"not found":    {NotFound("Contact not found"), http.StatusNotFound},
		"unexpected":   {errors.New("boom"), http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "email", Message: "Valid email is required"},
		{Field: "password", Message: "Password must be at least 6 characters"},
	}}
	require.Equal(t, "validation failed: email: Valid email is required; password: Password must be at least 6 characters", err.Error())
}

func TestNotFound(t *testing.T) {
	err := NotFound("User not found")
	require.EqualError(t, err, "User not found")
	require.ErrorIs(t, err, ErrNotFound)
}
