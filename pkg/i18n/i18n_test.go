package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLang(t *testing.T) {
	l := NewLocalizer("en")

	msg := l.Get("en", ERROR_INTERNAL)
	assert.NotEqual(t, ERROR_INTERNAL, msg)

	// unknown ids fall back to the id itself
	assert.Equal(t, "error.some.unknown", l.Get("en", "error.some.unknown"))

	// unknown language falls back to the id
	assert.Equal(t, ERROR_INTERNAL, l.Get("fr", ERROR_INTERNAL))
}
