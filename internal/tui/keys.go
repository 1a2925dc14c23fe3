package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Edit      key.Binding
	Add       key.Binding
	Remove    key.Binding
	Reset     key.Binding
	Calc      key.Binding
	Clear     key.Binding
	Prev      key.Binding
	Next      key.Binding
	Lang      key.Binding
	History   key.Binding
	Back      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "totals/agents")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		Edit:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add agent")),
		Remove:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove agent")),
		Reset:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset sample")),
		Calc:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calculate")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear results")),
		Prev:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev agent")),
		Next:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next agent")),
		Lang:      key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "IT/ES")),
		History:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Edit, k.Add, k.Calc, k.Lang, k.History, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.Up, k.Down, k.Left, k.Right, k.Edit},
		{k.Add, k.Remove, k.Reset, k.Calc, k.Clear},
		{k.Prev, k.Next, k.Lang, k.History, k.Back, k.Quit},
	}
}

type editKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k editKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Confirm, k.Cancel} }

func (k editKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Confirm, k.Cancel}} }
