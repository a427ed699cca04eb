package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONWithServiceField(t *testing.T) {
	t.Cleanup(Reset)
	var buf bytes.Buffer

	log := Init(Options{Level: "debug", Service: "accounts", Output: &buf})
	log.Debug().Str("email", "a@x.com").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "accounts", line["service"])
	require.Equal(t, "hello", line["message"])
	require.Equal(t, "debug", line["level"])
}

func TestInit_OnlyOnce(t *testing.T) {
	t.Cleanup(Reset)
	var first, second bytes.Buffer

	Init(Options{Output: &first})
	again := Init(Options{Output: &second})
	again.Info().Msg("x")
	got := Get()
	got.Info().Msg("y")

	require.NotEmpty(t, first.String())
	require.Empty(t, second.String())
}

func TestInit_LevelFilters(t *testing.T) {
	t.Cleanup(Reset)
	var buf bytes.Buffer

	log := Init(Options{Level: "error", Output: &buf})
	log.Info().Msg("dropped")
	require.Empty(t, buf.String())
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	require.Panics(t, func() { Get() })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}
