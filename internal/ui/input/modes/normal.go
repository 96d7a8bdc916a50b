package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pricegrip/internal/ui/input/types"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode() *NormalMode {
	return &NormalMode{keys: Keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// While the help overlay is open every key closes it, except quit
	if ctx.ShowingHelp() {
		if msg.Type == tea.KeyCtrlC {
			return []types.Action{types.QuitAction{Force: true}}, true
		}
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.FieldText(types.ModeSearch)}}, true

	case key.Matches(msg, m.keys.Trending):
		index := trendingIndex(msg.String())
		if index < ctx.TrendingCount() {
			return []types.Action{types.PickTrendingAction{Index: index}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Store):
		return []types.Action{types.CycleStoreAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.StoreRev):
		return []types.Action{types.CycleStoreAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Sort):
		return []types.Action{types.CycleSortAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.SortRev):
		return []types.Action{types.CycleSortAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.MinPrice):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeMinPrice, Data: ctx.FieldText(types.ModeMinPrice)}}, true

	case key.Matches(msg, m.keys.MaxPrice):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeMaxPrice, Data: ctx.FieldText(types.ModeMaxPrice)}}, true

	case key.Matches(msg, m.keys.Reset):
		return []types.Action{types.ResetFiltersAction{}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.SelectedLink() != "" {
			return []types.Action{types.OpenLinkAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Copy):
		if ctx.HasResults() {
			return []types.Action{types.CopyLinkAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Pager):
		if ctx.HasResults() {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

// trendingIndex maps "1".."9" to 0..8 and "0" to 9
func trendingIndex(k string) int {
	if k == "0" {
		return 9
	}
	return int(k[0] - '1')
}
