package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func rowValue(t *testing.T, rows []Row, name string) string {
	t.Helper()
	for _, r := range rows {
		if r.Name == name {
			return r.Value
		}
	}
	t.Fatalf("no row %q", name)
	return ""
}

func TestInflections(t *testing.T) {
	rows := Inflections(stringx.Default(), "Hanami::Utils::String")

	require.Len(t, rows, 10)
	assert.Equal(t, "hanami/utils/string", rowValue(t, rows, "underscore"))
	assert.Equal(t, "String", rowValue(t, rows, "demodulize"))
	assert.Equal(t, "Hanami", rowValue(t, rows, "namespace"))
	assert.Equal(t, "Hanami::Utils::Strings", rowValue(t, rows, "pluralize"))
}

func TestNewModel(t *testing.T) {
	m := NewModel(WithValue("hanami_view"))

	assert.Equal(t, "hanami_view", m.Value())
	assert.Equal(t, "HanamiView", rowValue(t, m.Rows(), "classify"))
	assert.Equal(t, []string{"hanami_view"}, m.Tokens())
	assert.NotNil(t, m.Init())
}

func TestUpdateOnKeystroke(t *testing.T) {
	m := typeText(t, NewModel(), "book")
	assert.Equal(t, "books", rowValue(t, m.Rows(), "pluralize"))

	m = typeText(t, m, "s/index")
	assert.Equal(t, "books#index", rowValue(t, m.Rows(), `rsub "/" "#"`))
}

func TestTokensOnKeystroke(t *testing.T) {
	m := typeText(t, NewModel(), "Lotus::(Utils|App)")
	assert.Equal(t, []string{"Lotus::Utils", "Lotus::App"}, m.Tokens())

	view := m.View()
	assert.Contains(t, view, "Lotus::Utils")
	assert.Contains(t, view, "Lotus::App")
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := NewModel().Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "key %v should quit", key)
	}
}

func TestClear(t *testing.T) {
	m := typeText(t, NewModel(), "person")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)

	assert.Empty(t, m.Value())
	assert.Empty(t, m.Tokens())
	assert.Equal(t, "", rowValue(t, m.Rows(), "pluralize"))
}

func TestInflectorMsg(t *testing.T) {
	m := NewModel(WithValue("cactus"))
	before := rowValue(t, m.Rows(), "pluralize")

	updated, _ := m.Update(InflectorMsg{Inflector: stringx.NewInflector(stringx.WithUncountable("cactus"))})
	m = updated.(Model)

	assert.NotEqual(t, "cactus", before)
	assert.Equal(t, "cactus", rowValue(t, m.Rows(), "pluralize"))
}

func TestErrMsgAndWindowSize(t *testing.T) {
	updated, _ := NewModel(WithSource("textkit.toml")).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(Model)
	updated, _ = m.Update(ErrMsg{Err: errors.New("reload failed")})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "reload failed")
	assert.Contains(t, view, "config: textkit.toml")
	assert.Contains(t, view, "Inflection preview")

	updated, _ = m.Update(InflectorMsg{Inflector: stringx.Default()})
	assert.NotContains(t, updated.(Model).View(), "reload failed")
}

func TestFooterTruncatesLongSource(t *testing.T) {
	source := "/srv/projects/bookshelf/apps/web/config/textkit/settings/local/textkit.toml"
	updated, _ := NewModel(WithSource(source)).Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	view := updated.(Model).View()

	assert.NotContains(t, view, source)
	assert.Contains(t, view, "config: /srv")
	assert.Contains(t, view, "…")
}
