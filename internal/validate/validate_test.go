package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitpet/internal/validate"
)

type credentials struct {
	Email    string `json:"email" validate:"required,nospaces,email"`
	Password string `json:"password" validate:"required,min=8,hasdigit,hassymbol"`
}

func TestStructPasswordPolicy(t *testing.T) {
	v := validate.New()

	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"too short", "S1!", "password must be at least 8 characters"},
		{"no digit", "NoDigits!!", "password must contain at least one digit"},
		{"no symbol", "NoSymbol11", "password must contain at least one symbol"},
		{"missing", "", "password is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := v.Struct(credentials{Email: "owner@example.com", Password: tt.password})
			require.NotEmpty(t, violations)
			assert.Equal(t, tt.want, validate.First(violations))
		})
	}
}

func TestStructValidCredentials(t *testing.T) {
	v := validate.New()
	assert.Nil(t, v.Struct(credentials{Email: "owner@example.com", Password: "Str0ng!Pass"}))
}

func TestStructEmailWithSpacesIsPatternViolation(t *testing.T) {
	v := validate.New()

	violations := v.Struct(credentials{Email: "own er@example.com", Password: "Str0ng!Pass"})
	require.NotEmpty(t, violations)
	assert.True(t, violations[0].Pattern)
	assert.Equal(t, "email must not contain spaces", validate.First(violations))
}

func TestFirstPrefersPatternViolations(t *testing.T) {
	v := validate.New()

	// Both fields fail: the email violation is generic and comes first
	// in field order, but the password digit rule is pattern-kind and
	// must win the tie-break.
	violations := v.Struct(credentials{Email: "not-an-email", Password: "NoDigits!!"})
	require.Len(t, violations, 2)
	assert.Equal(t, "password must contain at least one digit", validate.First(violations))
}

func TestFirstFallsBackToFirstViolation(t *testing.T) {
	v := validate.New()

	violations := v.Struct(credentials{Email: "not-an-email", Password: "Str0ng!Pass"})
	require.Len(t, violations, 1)
	assert.Equal(t, "email must be a valid email", validate.First(violations))
}

func TestFirstEmpty(t *testing.T) {
	assert.Equal(t, "", validate.First(nil))
}

type petFields struct {
	Name     string  `json:"name" validate:"required,notblank"`
	WeightKg float64 `json:"weightKg" validate:"gt=0"`
}

func TestStructPetConstraints(t *testing.T) {
	v := validate.New()

	violations := v.Struct(petFields{Name: "   ", WeightKg: 4.5})
	require.NotEmpty(t, violations)
	assert.Equal(t, "name must not be blank", validate.First(violations))

	violations = v.Struct(petFields{Name: "Luna", WeightKg: 0})
	require.NotEmpty(t, violations)
	assert.Equal(t, "weightKg must be greater than 0", validate.First(violations))

	violations = v.Struct(petFields{Name: "Luna", WeightKg: -2})
	require.NotEmpty(t, violations)
	assert.Equal(t, "weightKg must be greater than 0", validate.First(violations))

	assert.Nil(t, v.Struct(petFields{Name: "Luna", WeightKg: 4.5}))
}
