package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := DefaultOptions()

	// StyleEnabled should be true by default
	require.True(t, opts.StyleEnabled)
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting()

	require.NotNil(t, app.Catalog)
	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
}

func TestClose_NilComponents(t *testing.T) {
	app := NewForTesting()
	app.Catalog = nil

	// Should not panic
	err := Close(app)
	require.NoError(t, err)
}
