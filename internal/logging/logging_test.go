package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"loud":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "warn", false)

	log.Info().Msg("hidden")
	log.Warn().Str("name", "reef").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "name=reef")
	assert.False(t, strings.Contains(out, "\x1b["), "no colour codes expected")
}

func TestSampledBursts(t *testing.T) {
	var buf bytes.Buffer
	log := Sampled(Setup(&buf, "debug", false), 1000)

	for i := 0; i < 50; i++ {
		log.Debug().Int("i", i).Msg("frame")
	}
	lines := strings.Count(buf.String(), "frame")
	assert.GreaterOrEqual(t, lines, 5)
	assert.Less(t, lines, 50)
}
