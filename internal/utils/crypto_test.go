// internal/utils/crypto_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	number, err := GenerateOrderNumber()
	require.NoError(t, err)

	assert.Len(t, number, 9)
	assert.Regexp(t, `^OR-[0-9]{6}$`, number)
}

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(16, "abc")
	require.NoError(t, err)

	assert.Len(t, s, 16)
	for _, r := range s {
		assert.Contains(t, "abc", string(r))
	}
}
