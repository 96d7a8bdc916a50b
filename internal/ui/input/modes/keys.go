package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Search   key.Binding
	Store    key.Binding
	StoreRev key.Binding
	Sort     key.Binding
	SortRev  key.Binding
	MinPrice key.Binding
	MaxPrice key.Binding
	Reset    key.Binding
	Open     key.Binding
	Copy     key.Binding
	Pager    key.Binding
	Trending key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// Keys are the default bindings
var Keys = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Store:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next store")),
	StoreRev: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "previous store")),
	Sort:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next sort")),
	SortRev:  key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "previous sort")),
	MinPrice: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "min price")),
	MaxPrice: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "max price")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filters")),
	Open:     key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o/enter", "view product")),
	Copy:     key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy link")),
	Pager:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "table in pager")),
	Trending: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
		key.WithHelp("1-9,0", "search trending"),
	),
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Store, k.Sort, k.MinPrice, k.MaxPrice, k.Open, k.Copy, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay, grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Search, k.Trending, k.Store, k.StoreRev, k.Sort, k.SortRev},
		{k.MinPrice, k.MaxPrice, k.Reset, k.Open, k.Copy, k.Pager},
		{k.Help, k.Quit},
	}
}

// TextKeys are the bindings shown while editing a text field
var TextKeys = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
