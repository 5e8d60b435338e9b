package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Help      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Save      key.Binding
	Delete    key.Binding
	Esc       key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	EditRange key.Binding
	Logout    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "наступна вкладка"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "попередня вкладка"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "вихід"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "довідка"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "вгору"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "вниз"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "ліворуч"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "праворуч"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "відкрити"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "зберегти"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "видалити"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "скасувати"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "попередній місяць"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "наступний місяць"),
		),
		EditRange: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "змінити діапазон"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "вийти з акаунта"),
		),
	}
}
