package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Solo los rechazos sintácticos: no tocan la red.
func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	cases := []struct {
		name  string
		email string
	}{
		{"sin arroba", "staff.example.com"},
		{"sin dominio", "staff@"},
		{"sin parte local", "@example.com"},
		{"vacío", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, IsEmailDomainValid(tc.email))
		})
	}
}
