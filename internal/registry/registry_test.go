package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moray-shell/moray/internal/pipeline"
	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/syntax"
	"github.com/moray-shell/moray/internal/usage"
)

func TestRegister_PreservesOrder(t *testing.T) {
	r := New()

	for _, name := range []string{"zebra", "apple", "mango"} {
		require.NoError(t, r.Register(signature.New(name)))
	}

	require.Equal(t, []string{"zebra", "apple", "mango"}, r.Names())

	sigs := r.Signatures()
	require.Len(t, sigs, 3)
	require.Equal(t, "zebra", sigs[0].Name)
	require.Equal(t, "mango", sigs[2].Name)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	r := New()

	first := signature.New("ls").Desc("List files")
	require.NoError(t, r.Register(first))

	err := r.Register(signature.New("ls"))
	require.Error(t, err)

	var uerr *usage.Error
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, usage.ErrDuplicateCommand, uerr.Kind)

	// Existing entry untouched
	got, ok := r.Lookup("ls")
	require.True(t, ok)
	require.Equal(t, "List files", got.Usage)
	require.Equal(t, 1, r.Len())
}

func TestLookup_Missing(t *testing.T) {
	r := New()

	_, ok := r.Lookup("nope")
	require.False(t, ok)
	require.False(t, r.Has("nope"))
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	r := New()
	r.MustRegister(signature.New("echo"))

	require.Panics(t, func() {
		r.MustRegister(signature.New("echo"))
	})
}

func TestFindSimilar(t *testing.T) {
	r := New()
	for _, name := range []string{"ls", "cd", "sort-by", "size", "save", "lines"} {
		require.NoError(t, r.Register(signature.New(name)))
	}

	got := r.FindSimilar("sort-bu", 3)
	require.Contains(t, got, "sort-by")

	// Exact matches are not suggestions
	got = r.FindSimilar("ls", 3)
	require.NotContains(t, got, "ls")

	// Nothing close enough
	got = r.FindSimilar("completely-unrelated", 3)
	require.Empty(t, got)
}

func TestFindSimilar_OrderedByDistance(t *testing.T) {
	r := New()
	for _, name := range []string{"save", "size", "save-as"} {
		require.NoError(t, r.Register(signature.New(name)))
	}

	got := r.FindSimilar("sav", 5)
	require.NotEmpty(t, got)
	require.Equal(t, "save", got[0])
}

func TestLint_FilterNoOutput(t *testing.T) {
	r := New()
	r.MustRegister(signature.New("drain").Filter().YieldsType(pipeline.TypeNothing))
	r.MustRegister(signature.New("ok").Filter().YieldsType(pipeline.TypeTable))

	diags := r.Lint()
	require.Len(t, diags, 1)
	require.Equal(t, "drain", diags[0].Command)
	require.Equal(t, "filter-no-output", diags[0].Code)
}

func TestLint_FilterWithoutYieldType(t *testing.T) {
	r := New()
	r.MustRegister(signature.New("drain").Filter())

	diags := r.Lint()
	require.Len(t, diags, 1)
	require.Equal(t, "drain", diags[0].Command)
	require.Equal(t, "filter-no-output", diags[0].Code)
}

func TestLint_OptionalBeforeMandatory(t *testing.T) {
	r := New()
	r.MustRegister(signature.New("cp").
		Optional("src", syntax.ShapePath, "Source path").
		Required("dst", syntax.ShapePath, "Destination path"))

	diags := r.Lint()
	require.Len(t, diags, 1)
	require.Equal(t, "optional-before-mandatory", diags[0].Code)
	require.Contains(t, diags[0].Message, `"dst"`)
}

func TestLint_CleanRegistry(t *testing.T) {
	r := New()
	r.MustRegister(signature.New("add").
		Required("lhs", syntax.ShapeNumber, "Left operand").
		Optional("rhs", syntax.ShapeNumber, "Right operand"))

	require.Empty(t, r.Lint())
}
