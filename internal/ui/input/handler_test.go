package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricegrip/internal/ui/input/types"
)

type fakeContext struct {
	hasResults bool
	link       string
	trending   int
	help       bool
	fields     map[types.Mode]string
}

func (c fakeContext) HasResults() bool     { return c.hasResults }
func (c fakeContext) SelectedLink() string { return c.link }
func (c fakeContext) TrendingCount() int   { return c.trending }
func (c fakeContext) Searching() bool      { return false }
func (c fakeContext) ShowingHelp() bool    { return c.help }
func (c fakeContext) FieldText(mode types.Mode) string {
	return c.fields[mode]
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSlashEntersSearchMode(t *testing.T) {
	h := New()

	actions, cmd := h.HandleKey(runes("/"), fakeContext{})

	assert.Empty(t, actions)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "Search: ", h.Prompt())
}

func TestTypingInSearchModeUpdatesText(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeSearch, "", fakeContext{})

	actions, _ := h.HandleKey(runes("q"), fakeContext{})

	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "q", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}

func TestSearchModeKeepsPreviousQueryUntilCleared(t *testing.T) {
	h := New()
	ctx := fakeContext{fields: map[types.Mode]string{types.ModeSearch: "slow"}}

	h.HandleKey(runes("/"), ctx)
	assert.Equal(t, "slow", h.TextInput().Value())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlU}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "", Mode: types.ModeSearch}, actions[0])

	h.HandleKey(runes("fast"), ctx)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "fast", Mode: types.ModeSearch}, actions[0])
}

func TestEnterSubmitsAndReturnsToNormal(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeSearch, "iphone", fakeContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})

	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "iphone", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestEscCancelsPriceEdit(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeMinPrice, "100", fakeContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})

	require.Len(t, actions, 1)
	assert.Equal(t, types.CancelTextAction{Mode: types.ModeMinPrice}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestPriceModeStartsWithCurrentValue(t *testing.T) {
	h := New()
	ctx := fakeContext{fields: map[types.Mode]string{types.ModeMaxPrice: "5000"}}

	h.HandleKey(runes("]"), ctx)

	assert.Equal(t, types.ModeMaxPrice, h.CurrentMode())
	assert.Equal(t, "5000", h.TextInput().Value())
	assert.Equal(t, "Max price: ", h.Prompt())
}

func TestNormalModeKeys(t *testing.T) {
	ctx := fakeContext{hasResults: true, link: "https://a.example", trending: 3}

	tests := []struct {
		key  tea.KeyMsg
		want types.Action
	}{
		{runes("j"), types.NavigateAction{Direction: "down"}},
		{tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{runes("G"), types.NavigateAction{Direction: "end"}},
		{runes("s"), types.CycleStoreAction{Delta: 1}},
		{runes("S"), types.CycleStoreAction{Delta: -1}},
		{runes("t"), types.CycleSortAction{Delta: 1}},
		{runes("r"), types.ResetFiltersAction{}},
		{runes("o"), types.OpenLinkAction{}},
		{tea.KeyMsg{Type: tea.KeyEnter}, types.OpenLinkAction{}},
		{runes("c"), types.CopyLinkAction{}},
		{runes("v"), types.OpenPagerAction{}},
		{runes("2"), types.PickTrendingAction{Index: 1}},
		{runes("?"), types.ToggleHelpAction{}},
		{runes("q"), types.QuitAction{}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.key, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestTrendingDigitOutOfRangeIsIgnored(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("0"), fakeContext{trending: 3})

	assert.Empty(t, actions)
}

func TestProductKeysNeedResults(t *testing.T) {
	h := New()

	for _, k := range []string{"o", "c", "v"} {
		actions, _ := h.HandleKey(runes(k), fakeContext{})
		assert.Empty(t, actions, k)
	}
}

func TestAnyKeyClosesHelp(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("j"), fakeContext{help: true})

	require.Len(t, actions, 1)
	assert.Equal(t, types.ToggleHelpAction{}, actions[0])
}
