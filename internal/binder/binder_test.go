package binder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/syntax"
	"github.com/moray-shell/moray/internal/usage"
)

func addSig() signature.Signature {
	return signature.New("add").
		Required("lhs", syntax.ShapeNumber, "Left operand").
		Optional("rhs", syntax.ShapeNumber, "Right operand")
}

func requireKind(t *testing.T, err error, kind usage.ErrorKind) {
	t.Helper()
	var uerr *usage.Error
	require.True(t, errors.As(err, &uerr), "expected *usage.Error, got %v", err)
	require.Equal(t, kind, uerr.Kind)
}

func TestBind_Positionals(t *testing.T) {
	b, err := Bind(addSig(), []string{"1", "2"})
	require.NoError(t, err)

	lhs, ok := b.Positional("lhs")
	require.True(t, ok)
	require.Equal(t, "1", lhs)

	rhs, ok := b.Positional("rhs")
	require.True(t, ok)
	require.Equal(t, "2", rhs)
}

func TestBind_OptionalOmitted(t *testing.T) {
	b, err := Bind(addSig(), []string{"1"})
	require.NoError(t, err)

	_, ok := b.Positional("rhs")
	require.False(t, ok)
}

func TestBind_MissingMandatory(t *testing.T) {
	_, err := Bind(addSig(), nil)
	requireKind(t, err, usage.ErrMissingArgument)
}

func TestBind_TooManyArguments(t *testing.T) {
	_, err := Bind(addSig(), []string{"1", "2", "3"})
	requireKind(t, err, usage.ErrTooManyArguments)
}

func TestBind_RestCapturesExtras(t *testing.T) {
	sig := signature.New("echo").Rest(syntax.ShapeAny, "Values to print")

	b, err := Bind(sig, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, b.Rest())
}

func TestBind_RestAfterPositionals(t *testing.T) {
	sig := signature.New("save").
		Required("path", syntax.ShapePath, "Target file").
		Rest(syntax.ShapeAny, "Extra values")

	b, err := Bind(sig, []string{"out.json", "x", "y"})
	require.NoError(t, err)

	path, _ := b.Positional("path")
	require.Equal(t, "out.json", path)
	require.Equal(t, []string{"x", "y"}, b.Rest())
}

func TestBind_Switch(t *testing.T) {
	sig := signature.New("open").Switch("raw", "Skip parsing")

	b, err := Bind(sig, []string{"--raw"})
	require.NoError(t, err)
	require.True(t, b.HasFlag("raw"))
	require.False(t, b.HasFlag("other"))
}

func TestBind_SwitchRejectsValue(t *testing.T) {
	sig := signature.New("open").Switch("raw", "Skip parsing")

	_, err := Bind(sig, []string{"--raw=yes"})
	requireKind(t, err, usage.ErrUnknownFlag)
}

func TestBind_ValueFlagForms(t *testing.T) {
	sig := signature.New("first").Named("count", syntax.ShapeInt, "Rows to keep")

	b, err := Bind(sig, []string{"--count=5"})
	require.NoError(t, err)
	require.Equal(t, 5, b.FlagInt("count", 0))

	b, err = Bind(sig, []string{"--count", "7"})
	require.NoError(t, err)
	require.Equal(t, 7, b.FlagInt("count", 0))
}

func TestBind_MissingFlagValue(t *testing.T) {
	sig := signature.New("first").Named("count", syntax.ShapeInt, "Rows to keep")

	_, err := Bind(sig, []string{"--count"})
	requireKind(t, err, usage.ErrMissingFlagValue)

	_, err = Bind(sig, []string{"--count", "--help"})
	requireKind(t, err, usage.ErrMissingFlagValue)
}

func TestBind_UnknownFlag(t *testing.T) {
	_, err := Bind(addSig(), []string{"--bogus"})
	requireKind(t, err, usage.ErrUnknownFlag)
}

func TestBind_RequiredFlag(t *testing.T) {
	sig := signature.New("fetch").RequiredNamed("url", syntax.ShapeString, "Remote address")

	_, err := Bind(sig, nil)
	requireKind(t, err, usage.ErrMissingFlag)

	b, err := Bind(sig, []string{"--url", "https://example.com"})
	require.NoError(t, err)
	require.Equal(t, "https://example.com", b.FlagString("url", ""))
}

func TestBind_HelpShortCircuits(t *testing.T) {
	// Help wins even though lhs is missing
	b, err := Bind(addSig(), []string{"--help"})
	require.NoError(t, err)
	require.True(t, b.Help())
}

func TestBind_DoubleDashEndsFlags(t *testing.T) {
	sig := signature.New("echo").Rest(syntax.ShapeAny, "Values to print")

	b, err := Bind(sig, []string{"--", "--help", "--raw"})
	require.NoError(t, err)
	require.False(t, b.Help())
	require.Equal(t, []string{"--help", "--raw"}, b.Rest())
}

func TestBind_FlagsInterleavedWithArgs(t *testing.T) {
	sig := signature.New("sort-by").
		Switch("reverse", "Descending order").
		Rest(syntax.ShapeColumnPath, "Columns to sort by")

	b, err := Bind(sig, []string{"name", "--reverse", "size"})
	require.NoError(t, err)
	require.True(t, b.HasFlag("reverse"))
	require.Equal(t, []string{"name", "size"}, b.Rest())
}

func TestBound_FlagDefaults(t *testing.T) {
	sig := signature.New("first").Named("count", syntax.ShapeInt, "Rows to keep")

	b, err := Bind(sig, nil)
	require.NoError(t, err)
	require.Equal(t, 10, b.FlagInt("count", 10))
	require.Equal(t, "none", b.FlagString("count", "none"))
	require.Equal(t, "first", b.Command())
}
