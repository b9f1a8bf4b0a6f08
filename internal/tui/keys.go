package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	XVar      key.Binding
	YVar      key.Binding
	State     key.Binding
	Open      key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	FirstDay  key.Binding
	LastDay   key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Clear     key.Binding
	Attrs     key.Binding
	Inspect   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		XVar:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "x var")),
		YVar:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "y var")),
		State:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "state")),
		Open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[ ]", "month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown")),
		FirstDay:  key.NewBinding(key.WithKeys("home")),
		LastDay:   key.NewBinding(key.WithKeys("end")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "legend")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab")),
		Clear:     key.NewBinding(key.WithKeys("esc")),
		Attrs:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "table")),
		Inspect:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.XVar, k.YVar, k.State, k.PrevDay, k.PrevMonth, k.NextFocus, k.Attrs, k.Inspect, k.Open, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
