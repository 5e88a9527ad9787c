package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := security.HashPassword("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, security.VerifyPassword(hash, "admin123"))
	assert.False(t, security.VerifyPassword(hash, "admin124"))
	assert.False(t, security.VerifyPassword("not-a-hash", "admin123"))
}

func TestConstantTimeEquals(t *testing.T) {
	assert.True(t, security.ConstantTimeEquals("admin", "admin"))
	assert.False(t, security.ConstantTimeEquals("admin", "Admin"))
	assert.False(t, security.ConstantTimeEquals("admin", "admin "))
}
