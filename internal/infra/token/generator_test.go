package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	tok, err := gen.Generate()
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, tokenEntropyBytes)
}

func TestGenerator_Unique(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for range 64 {
		tok, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[tok]
		assert.False(t, dup, "token collision")
		seen[tok] = struct{}{}
	}
}
