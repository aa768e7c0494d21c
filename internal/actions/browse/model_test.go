package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/syntax"
)

func testSigs() []signature.Signature {
	return []signature.Signature{
		signature.New("ls").Desc("List files"),
		signature.New("sort-by").Desc("Sort by the given columns").
			Rest(syntax.ShapeColumnPath, "Columns"),
		signature.New("save").Desc("Save the pipeline to a file"),
	}
}

func sized(m model) model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(model)
}

func keyPress(m model, s string) model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(model)
}

func TestNavigation(t *testing.T) {
	m := sized(newModel(testSigs()))
	require.Equal(t, 0, m.cursor)

	m = keyPress(m, "j")
	require.Equal(t, 1, m.cursor)

	m = keyPress(m, "j")
	m = keyPress(m, "j") // clamped at the end
	require.Equal(t, 2, m.cursor)

	m = keyPress(m, "k")
	require.Equal(t, 1, m.cursor)
}

func TestView_ShowsSelection(t *testing.T) {
	m := sized(newModel(testSigs()))
	m = keyPress(m, "j")

	view := m.View()
	require.Contains(t, view, "> sort-by")
	require.Contains(t, view, "3/3 commands")
}

func TestSearch_FiltersList(t *testing.T) {
	m := sized(newModel(testSigs()))

	m = keyPress(m, "/")
	require.True(t, m.searchMode)

	m = keyPress(m, "s")
	require.Len(t, m.filtered, 3) // every name or summary contains an s

	m = keyPress(m, "a")
	require.Len(t, m.filtered, 1)
	require.Equal(t, "save", m.filtered[0].Name)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	require.False(t, m.searchMode)
}

func TestSearch_EscClears(t *testing.T) {
	m := sized(newModel(testSigs()))

	m = keyPress(m, "/")
	m = keyPress(m, "l")
	m = keyPress(m, "s")
	require.Len(t, m.filtered, 1)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model)
	require.False(t, m.searchMode)
	require.Len(t, m.filtered, 3)
}

func TestQuit(t *testing.T) {
	m := sized(newModel(testSigs()))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}
