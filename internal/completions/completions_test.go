package completions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/syntax"
)

func surfaceSigs() []signature.Signature {
	return []signature.Signature{
		signature.New("commands").Desc("List the builtin shell commands"),
		signature.New("describe").Desc("Show a signature").
			Required("command", syntax.ShapeString, "The command").
			Switch("json", "Print as JSON"),
		signature.New("config get").Desc("Read one config value").
			Required("key", syntax.ShapeString, "The key"),
		signature.New("config set").Desc("Write one config value").
			Required("key", syntax.ShapeString, "The key").
			Required("value", syntax.ShapeString, "The value"),
	}
}

func TestParseShell(t *testing.T) {
	for _, name := range []string{"bash", "zsh"} {
		shell, err := ParseShell(name)
		require.NoError(t, err)
		require.Equal(t, Shell(name), shell)
	}

	_, err := ParseShell("fish")
	require.Error(t, err)
}

func TestGenerateBash(t *testing.T) {
	script := GenerateBash("moray", surfaceSigs())

	require.True(t, strings.HasPrefix(script, "# moray bash completion script"))
	require.Contains(t, script, "_moray_completions()")
	require.Contains(t, script, "complete -F _moray_completions moray")

	// Top-level words: multi-word commands collapse to their first word
	require.Contains(t, script, `"commands describe config"`)

	// config completes its subcommands
	require.Contains(t, script, `"get set"`)

	// describe completes its flags
	require.Contains(t, script, "--json")
	require.Contains(t, script, "--help")
}

func TestGenerateZsh(t *testing.T) {
	script := GenerateZsh("moray", surfaceSigs())

	require.True(t, strings.HasPrefix(script, "#compdef moray"))
	require.Contains(t, script, "'describe:Show a signature'")
	require.Contains(t, script, "compadd get set")
	require.Contains(t, script, "compadd --help --json")

	// Multi-word names never appear as top-level entries
	require.NotContains(t, script, "'config get:")
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, ShellBash, "moray", surfaceSigs()))
	require.Contains(t, buf.String(), "_moray_completions()")

	require.Error(t, Print(&buf, Shell("fish"), "moray", surfaceSigs()))
}

func TestGenerateIsReproducible(t *testing.T) {
	sigs := append(surfaceSigs(),
		signature.New("theme list").Desc("Show themes"),
		signature.New("theme set").Desc("Switch the theme").
			Required("name", syntax.ShapeString, "The theme"))

	bash := GenerateBash("moray", sigs)
	zsh := GenerateZsh("moray", sigs)
	for i := 0; i < 10; i++ {
		require.Equal(t, bash, GenerateBash("moray", sigs))
		require.Equal(t, zsh, GenerateZsh("moray", sigs))
	}

	require.Less(t, strings.Index(bash, "config)"), strings.Index(bash, "theme)"))
}
