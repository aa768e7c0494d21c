package usage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetExitCode_FromKind(t *testing.T) {
	require.Equal(t, 2, UnknownFlag("ls", "frobnicate").GetExitCode())
	require.Equal(t, 2, MissingArgument("get", "path").GetExitCode())
	require.Equal(t, 1, UnknownCommand("lss").GetExitCode())
	require.Equal(t, 1, DuplicateCommand("ls").GetExitCode())
}

func TestGetExitCode_ExplicitWins(t *testing.T) {
	err := &Error{Kind: ErrUnknownFlag, Message: "boom", ExitCode: 7}
	require.Equal(t, 7, err.GetExitCode())
}

func TestGetExitCode_UnknownKindDefaultsToOne(t *testing.T) {
	err := &Error{Kind: ErrorKind(99), Message: "boom"}
	require.Equal(t, 1, err.GetExitCode())
}

func TestUnknownCommand_Suggestions(t *testing.T) {
	err := UnknownCommand("sortby", "sort-by")
	require.Contains(t, err.Error(), "Did you mean: sort-by?")

	plain := UnknownCommand("zzz")
	require.NotContains(t, plain.Error(), "Did you mean")
}
