package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit          key.Binding
	Help          key.Binding
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Left          key.Binding
	Right         key.Binding
	Accept        key.Binding
	Back          key.Binding
	NextField     key.Binding
	PrevField     key.Binding
	Search        key.Binding
	Team          key.Binding
	Position      key.Binding
	Sort          key.Binding
	Reset         key.Binding
	Export        key.Binding
	ToggleMetric  []key.Binding
	BoundPrevStat key.Binding
	BoundNextStat key.Binding
}

// TODO make configurable.
var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "Page Up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "Page Down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Prev Column"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Next Column"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next Field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev Field"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Search"),
	),
	Team: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "Cycle Team"),
	),
	Position: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "Cycle Position"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Sort Column"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reset Filters"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "Export Chart"),
	),
	BoundPrevStat: key.NewBinding(
		key.WithKeys("ctrl+left"),
		key.WithHelp("ctrl ←", "Prev Stat"),
	),
	BoundNextStat: key.NewBinding(
		key.WithKeys("ctrl+right"),
		key.WithHelp("ctrl →", "Next Stat"),
	),
	ToggleMetric: metricBindings("1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-"),
}

func metricBindings(keys ...string) []key.Binding {
	bindings := make([]key.Binding, len(keys))
	for idx, value := range keys {
		bindings[idx] = key.NewBinding(key.WithKeys(value), key.WithHelp(value, "Toggle Metric"))
	}

	return bindings
}
