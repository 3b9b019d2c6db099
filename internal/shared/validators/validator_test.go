package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeInner struct {
	Port int `json:"port" validate:"required,max=10"`
}

type probe struct {
	Inner  probeInner `json:"inner"`
	Domain string     `json:"domain" validate:"omitempty,fqdn"`
	Hidden string     `json:"-" validate:"required"`
}

func TestDescribe_UsesTagNames(t *testing.T) {
	t.Parallel()

	err := New("json").Struct(&probe{Inner: probeInner{Port: 11}, Domain: "not a domain"})
	require.Error(t, err)

	assert.ElementsMatch(t, []string{
		"inner.port (max=10)",
		"domain (fqdn)",
		"Hidden (required)",
	}, Describe(err))
}

func TestDescribe_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"boom"}, Describe(errors.New("boom")))
}
