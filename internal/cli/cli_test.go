package cli

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oleg578/swiftcols"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	opts, shouldExit, err := Parse([]string{"3", "1..2"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, []int{3, 1, 2}, opts.Config.Columns)
	require.Equal(t, " ", opts.Config.OutputSeparator)
	require.Equal(t, swiftcols.DefaultPattern, opts.Config.Separator.String())
	require.False(t, opts.Config.Align)
	require.Equal(t, slog.LevelWarn, opts.LogLevel)
}

func TestParse_InterleavedFlags(t *testing.T) {
	t.Parallel()

	opts, _, err := Parse([]string{"2", "-a", "9..7", "--ofs", ":", "1", "-F,"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, []int{2, 9, 8, 7, 1}, opts.Config.Columns)
	require.True(t, opts.Config.Align)
	require.Equal(t, ":", opts.Config.OutputSeparator)
	require.Equal(t, ",", opts.Config.Separator.String())
}

func TestParse_SeparatorSpellings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		ifs  string
		ofs  string
	}{
		{name: "shortSpaced", args: []string{"-F", ":", "1"}, ifs: ":", ofs: " "},
		{name: "shortJoined", args: []string{"-F:", "1"}, ifs: ":", ofs: " "},
		{name: "long", args: []string{"--ifs", ";", "1"}, ifs: ";", ofs: " "},
		{name: "longEquals", args: []string{"--ifs=;", "1"}, ifs: ";", ofs: " "},
		{name: "longAlias", args: []string{"--input-field-separator", "\t", "1"}, ifs: "\t", ofs: " "},
		{name: "ofsAlias", args: []string{"1", "--output-field-separator", " | "}, ifs: swiftcols.DefaultPattern, ofs: " | "},
		{name: "emptyOfs", args: []string{"1", "--ofs="}, ifs: swiftcols.DefaultPattern, ofs: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			opts, _, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.Equal(t, tc.ifs, opts.Config.Separator.String())
			require.Equal(t, tc.ofs, opts.Config.OutputSeparator)
		})
	}
}

func TestParse_MissingSeparatorValue(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-F", "--ifs", "--input-field-separator", "--ofs", "--output-field-separator", "-aF"} {
		_, _, err := Parse([]string{"1", flag}, &bytes.Buffer{})
		var missing *swiftcols.MissingSeparatorValueError
		require.True(t, errors.As(err, &missing), "flag %s: %v", flag, err)
		require.Equal(t, flag, missing.Flag)
		require.Contains(t, err.Error(), flag)
	}
}

func TestParse_DoubleDashEndsFlags(t *testing.T) {
	t.Parallel()

	// "-F" after "--" is a column literal, not a flag missing its value.
	_, _, err := Parse([]string{"1", "--", "-F"}, &bytes.Buffer{})
	var invalid *swiftcols.InvalidColumnTokenError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "-F", invalid.Token)
}

func TestParse_NoColumns(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-a"}, &bytes.Buffer{})
	require.True(t, errors.Is(err, swiftcols.ErrNoColumnsSpecified))

	_, _, err = Parse(nil, &bytes.Buffer{})
	require.True(t, errors.Is(err, swiftcols.ErrNoColumnsSpecified))
}

func TestParse_InvalidColumn(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"1", "two"}, &bytes.Buffer{})
	var invalid *swiftcols.InvalidColumnTokenError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "two", invalid.Token)
	require.Contains(t, err.Error(), `"two"`)
}

func TestParse_InvalidSeparatorPattern(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-F", "[", "1"}, &bytes.Buffer{})
	var invalid *swiftcols.InvalidSeparatorError
	require.True(t, errors.As(err, &invalid))
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {"--help"}, {"1", "-h"}} {
		out := &bytes.Buffer{}
		opts, shouldExit, err := Parse(args, out)
		require.NoError(t, err)
		require.True(t, shouldExit)
		require.Nil(t, opts)
		require.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--bogus", "1"}, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "swiftcols:")
}

func TestParse_LogLevel(t *testing.T) {
	t.Parallel()

	opts, _, err := Parse([]string{"--log-level", "DEBUG", "1"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, opts.LogLevel)

	_, _, err = Parse([]string{"--log-level", "loud", "1"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestParse_ExplicitWhitespacePattern(t *testing.T) {
	t.Parallel()

	opts, _, err := Parse([]string{"-F", `\s+`, "1"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, opts.Config.Separator.Split("  a b"))
}
