package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeAPIKey(t *testing.T) {
	v := NewAPIKeyValidator()

	assert.Equal(t, "abc123", v.SanitizeAPIKey("  abc123  "))
	assert.Equal(t, "abc123", v.SanitizeAPIKey("abc?&123"))
	assert.Equal(t, "", v.SanitizeAPIKey("   "))
}

func TestIsValidTMDBKey(t *testing.T) {
	v := NewAPIKeyValidator()

	assert.True(t, v.IsValidTMDBKey(strings.Repeat("a1", 16)))
	assert.False(t, v.IsValidTMDBKey("short"))
	assert.False(t, v.IsValidTMDBKey(strings.Repeat("g", 32)))
	assert.False(t, v.IsValidTMDBKey(""))
}

func TestMaskAPIKey(t *testing.T) {
	v := NewAPIKeyValidator()

	assert.Equal(t, "[empty]", v.MaskAPIKey(""))
	assert.Equal(t, "[***]", v.MaskAPIKey("short"))
	assert.Equal(t, "012...def", v.MaskAPIKey("0123456789abcdef"))
}
