package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestNop_NoEscribe(t *testing.T) {
	l := Nop().Component("test")
	assert.NotPanics(t, func() { l.Info().Str("k", "v").Msg("ignorado") })
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}
