// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decimalFixture struct {
	Amount string `validate:"required,decimal"`
}

func TestDecimalValidator(t *testing.T) {
	valid := []string{"0", "19.99", "1250.00", "5"}
	for _, v := range valid {
		assert.NoError(t, ValidateStruct(&decimalFixture{Amount: v}), v)
	}

	invalid := []string{"19,99", "$19.99", "-5.00", "abc", "1.2.3"}
	for _, v := range invalid {
		assert.Error(t, ValidateStruct(&decimalFixture{Amount: v}), v)
	}
}

type usernameFixture struct {
	Username string `validate:"required,username"`
}

func TestUsernameValidator(t *testing.T) {
	assert.NoError(t, ValidateStruct(&usernameFixture{Username: "jane_doe42"}))
	assert.Error(t, ValidateStruct(&usernameFixture{Username: "ab"}))
	assert.Error(t, ValidateStruct(&usernameFixture{Username: "jane doe"}))
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&decimalFixture{Amount: "abc"})
	require.Error(t, err)

	errors := GetValidationErrors(err)
	require.Len(t, errors, 1)
	assert.Equal(t, "amount", errors[0].Field)
	assert.Equal(t, "decimal", errors[0].Tag)
	assert.NotEmpty(t, errors[0].Message)
}
