package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "RES-2026-00001", FormatReference("RES", 2026, 1))
	assert.Equal(t, "RES-2026-00042", FormatReference("RES", 2026, 42))
	assert.Equal(t, "RES-2027-123456", FormatReference("RES", 2027, 123456))
}

func TestNewAccessTokenIsUnique(t *testing.T) {
	g := &DBGenerator{}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := g.NewAccessToken()
		assert.Len(t, tok, 36)
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}
