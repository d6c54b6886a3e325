package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfigDefaults(t *testing.T) {
	cfg, err := BuildConfig(Options{})
	require.NoError(t, err)

	assert.Equal(t, ConsoleUnset, cfg.Console)
	assert.Equal(t, PrettyUnset, cfg.Pretty)
	assert.Equal(t, GroundTypesUnset, cfg.GroundTypes)
	assert.Equal(t, OrderUnset, cfg.Order)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Doctest)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.UseCache)
	assert.Nil(t, cfg.BackendArgs)
	assert.Empty(t, cfg.Kwargs())
}

func TestBuildConfigMapsEveryField(t *testing.T) {
	cfg, err := BuildConfig(Options{
		Console:     "ipython",
		Pretty:      "ascii",
		GroundTypes: "gmpy",
		Order:       "rev-grlex",
		Quiet:       true,
		NoCache:     true,
		Debug:       true,
		Args:        []string{"-colors", "NoColor"},
	})
	require.NoError(t, err)

	assert.Equal(t, ConsoleIPython, cfg.Console)
	assert.Equal(t, PrettyASCII, cfg.Pretty)
	assert.Equal(t, GroundTypesGMPY, cfg.GroundTypes)
	assert.Equal(t, OrderRevGrlex, cfg.Order)
	assert.True(t, cfg.Quiet)
	assert.False(t, cfg.UseCache)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"-colors", "NoColor"}, cfg.BackendArgs)
}

func TestBuildConfigDoctestOverrides(t *testing.T) {
	for _, console := range append([]string{""}, ConsoleChoices...) {
		for _, pretty := range append([]string{""}, PrettyChoices...) {
			cfg, err := BuildConfig(Options{Console: console, Pretty: pretty, Doctest: true})
			require.NoError(t, err)
			assert.Equal(t, PrettyNo, cfg.Pretty, "console=%q pretty=%q", console, pretty)
			assert.Equal(t, ConsolePython, cfg.Console, "console=%q pretty=%q", console, pretty)
			assert.True(t, cfg.Doctest)
		}
	}
}

func TestBuildConfigRejectsUnknownChoice(t *testing.T) {
	_, err := BuildConfig(Options{Pretty: "green"})
	require.Error(t, err)

	var choiceErr *ChoiceError
	require.ErrorAs(t, err, &choiceErr)
	assert.Equal(t, "pretty", choiceErr.Option)
	assert.Equal(t, "green", choiceErr.Value)
	assert.Contains(t, err.Error(), `"unicode", "ascii", "no"`)
}

func TestBuildConfigCopiesArgs(t *testing.T) {
	args := []string{"a", "b"}
	cfg, err := BuildConfig(Options{Args: args})
	require.NoError(t, err)

	args[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, cfg.BackendArgs)
}

func TestKwargs(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []Kwarg
	}{
		{"ipython", Config{Console: ConsoleIPython}, []Kwarg{{"ipython", "True"}}},
		{"python", Config{Console: ConsolePython}, []Kwarg{{"ipython", "False"}}},
		{"unicode", Config{Pretty: PrettyUnicode}, []Kwarg{{"pretty_print", "True"}, {"use_unicode", "True"}}},
		{"ascii", Config{Pretty: PrettyASCII}, []Kwarg{{"pretty_print", "True"}, {"use_unicode", "False"}}},
		{"no pretty", Config{Pretty: PrettyNo}, []Kwarg{{"pretty_print", "False"}}},
		{"order", Config{Order: OrderGrevlex}, []Kwarg{{"order", "'grevlex'"}}},
		{"quiet", Config{Quiet: true}, []Kwarg{{"quiet", "True"}}},
		{"env only", Config{GroundTypes: GroundTypesSymPy, Debug: true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Kwargs())
		})
	}
}
