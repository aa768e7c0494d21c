package debugdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlatten_Leaves(t *testing.T) {
	require.Equal(t, "", Empty().Flatten())
	require.Equal(t, "ls", Description("ls").Flatten())
	require.Equal(t, "?", Operator("?").Flatten())
	require.Equal(t, " ", Space().Flatten())
}

func TestFlatten_Seq(t *testing.T) {
	doc := Seq(Description("lhs"), Operator("?"), Description("x"))
	require.Equal(t, "lhs?x", doc.Flatten())
}

func TestDelimit(t *testing.T) {
	doc := Delimit("(", Description("Number"), ")")
	require.Equal(t, "(Number)", doc.Flatten())
}

func TestTyped_FlattenOmitsLabel(t *testing.T) {
	doc := Typed("signature", Description("add"))
	require.Equal(t, "add", doc.Flatten())
}

func TestTyped_TreeKeepsLabel(t *testing.T) {
	doc := Typed("signature", Seq(
		Description("add"),
		Space(),
		Description("lhs"),
	))
	require.Equal(t, "(signature add lhs)", doc.Tree())
}

func TestIntersperse_SkipsEmpty(t *testing.T) {
	doc := Intersperse(Space(),
		Description("a"),
		Empty(),
		Description("b"),
		Seq(), // empty seq counts as empty
		Description("c"),
	)
	require.Equal(t, "a b c", doc.Flatten())
}

func TestPreceded(t *testing.T) {
	require.Equal(t, " x", Preceded(Space(), Description("x")).Flatten())
	require.Equal(t, "", Preceded(Space(), Empty()).Flatten())
}

func TestIsEmpty_NestedGroups(t *testing.T) {
	require.True(t, Group(Seq(Empty(), Seq())).IsEmpty())
	require.False(t, Group(Seq(Empty(), Description("x"))).IsEmpty())
}

func TestRender_Styler(t *testing.T) {
	upper := func(kind Kind, text string) string {
		if kind == KindTypeName {
			return strings.ToUpper(text)
		}
		return text
	}

	doc := Seq(TypeName("Number"), Space(), Description("add"))
	require.Equal(t, "NUMBER add", doc.Render(upper))
}

func TestRender_NilStylerFlattens(t *testing.T) {
	doc := Typed("signature", Description("add"))
	require.Equal(t, doc.Flatten(), doc.Render(nil))
}
