package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moray-shell/moray/internal/registry"
	"github.com/moray-shell/moray/internal/signature"
)

func TestAll_NamesUniqueAndDescribed(t *testing.T) {
	seen := make(map[string]bool)
	for _, sig := range All() {
		require.NotEmpty(t, sig.Name)
		require.False(t, seen[sig.Name], "duplicate builtin %q", sig.Name)
		seen[sig.Name] = true

		require.NotEmpty(t, sig.Usage, "builtin %q has no summary", sig.Name)
		require.True(t, sig.Flags.Has(signature.HelpFlagName), "builtin %q lost its help flag", sig.Name)
	}
}

func TestAll_FiltersDeclarePipelineTypes(t *testing.T) {
	for _, sig := range All() {
		if !sig.IsFilter {
			continue
		}
		require.NotNil(t, sig.Input, "filter %q should declare an input type", sig.Name)
		require.NotNil(t, sig.Yields, "filter %q should declare a yield type", sig.Name)
	}
}

func TestRegister_AllInstallCleanly(t *testing.T) {
	r := registry.New()
	require.NoError(t, Register(r))
	require.Equal(t, len(All()), r.Len())

	// Lint has nothing to flag in the shipped set
	require.Empty(t, r.Lint())

	sig, ok := r.Lookup("sort-by")
	require.True(t, ok)
	require.True(t, sig.Flags.Has("reverse"))
}

func TestRegister_SecondInstallFails(t *testing.T) {
	r := registry.New()
	require.NoError(t, Register(r))
	require.Error(t, Register(r))
}
