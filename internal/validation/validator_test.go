package validation

import (
	"errors"
	"testing"

	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Handle       string   `json:"handle" validate:"required,min=1,max=25"`
	Email        string   `json:"email" validate:"omitempty,email"`
	NumEmployees *int     `json:"numEmployees" validate:"omitempty,gte=0"`
	Equity       *float64 `json:"equity" validate:"omitempty,gte=0,lte=1"`
	LogoURL      *string  `json:"logoUrl" validate:"omitempty,url"`
}

func TestValidateStruct_Valid(t *testing.T) {
	n := 10
	assert.NoError(t, ValidateStruct(&sample{Handle: "c1", NumEmployees: &n}))
}

func TestValidateStruct_CollectsEveryViolation(t *testing.T) {
	n := -1
	equity := 1.5
	logo := "not a url"

	err := ValidateStruct(&sample{Email: "nope", NumEmployees: &n, Equity: &equity, LogoURL: &logo})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, []string{
		"handle is required",
		"email must be a valid email address",
		"numEmployees must be greater than or equal to 0",
		"equity must be less than or equal to 1",
		"logoUrl must be a valid URL",
	}, apiErr.Messages)
}

func TestValidateStruct_StringLength(t *testing.T) {
	err := ValidateStruct(&sample{Handle: "abcdefghijklmnopqrstuvwxyz"})
	require.Error(t, err)
	assert.Equal(t, "handle must be at most 25 characters", err.Error())
}
