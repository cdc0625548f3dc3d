package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCNPJ(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidCNPJ("12.345.678/0001-95"))
	assert.True(t, IsValidCNPJ("12345678000195"))
	assert.False(t, IsValidCNPJ("1234567800019"))
	assert.False(t, IsValidCNPJ("12.345.678/0001-9X"))
}

func TestIsValidCPF(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidCPF("123.456.789-09"))
	assert.True(t, IsValidCPF("12345678909"))
	assert.False(t, IsValidCPF("123456789"))
}

func TestIsPositiveAmount(t *testing.T) {
	t.Parallel()

	d, ok := IsPositiveAmount("1250.40")
	assert.True(t, ok)
	assert.Equal(t, "1250.4", d.String())

	_, ok = IsPositiveAmount("0")
	assert.False(t, ok)
	_, ok = IsPositiveAmount("-3.50")
	assert.False(t, ok)
	_, ok = IsPositiveAmount("abc")
	assert.False(t, ok)
}

func TestIsNonNegativeAmount(t *testing.T) {
	t.Parallel()

	_, ok := IsNonNegativeAmount("0")
	assert.True(t, ok)
	_, ok = IsNonNegativeAmount("-0.01")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "amount", Message: "amount must be a positive decimal"},
	}
	assert.Equal(t, "name: name is required; amount: amount must be a positive decimal", errs.Error())
	assert.Equal(t, map[string]string{
		"name":   "name is required",
		"amount": "amount must be a positive decimal",
	}, errs.ToMap())
}
