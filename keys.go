package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	ToggleMale   key.Binding
	ToggleFemale key.Binding
	ToggleOn     key.Binding
	ToggleOff    key.Binding
	Reset        key.Binding
	ResetZoom    key.Binding
	CursorLeft   key.Binding
	CursorRight  key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	ZoomWindow   key.Binding
	Command      key.Binding
	OpenHelp     key.Binding
	ExportToDir  key.Binding
	Copy         key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ToggleMale: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle male series"),
	),
	ToggleFemale: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "toggle female series"),
	),
	ToggleOn: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "toggle lights on samples"),
	),
	ToggleOff: key.NewBinding(
		key.WithKeys("O"),
		key.WithHelp("O", "toggle lights off samples"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset everything"),
	),
	ResetZoom: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "reset zoom"),
	),
	CursorLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous sample"),
	),
	CursorRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next sample"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←", "pan window left"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("shift+→", "pan window right"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "shrink window around cursor"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "grow window around cursor"),
	),
	ZoomWindow: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "edit zoom window"),
	),
	Command: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "command (zoom A B, goto H)"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	ExportToDir: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export charts and data"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy stats or hovered sample"),
	),
}

func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenHelp, k.ToggleMale, k.ToggleFemale, k.ToggleOn, k.ToggleOff, k.Reset, k.Quit}
}

func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleMale, k.ToggleFemale, k.ToggleOn, k.ToggleOff},
		{k.Reset, k.ResetZoom, k.ZoomWindow, k.Command},
		{k.CursorLeft, k.CursorRight, k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut},
		{k.ExportToDir, k.Copy, k.OpenHelp, k.Quit},
	}
}

// Legend flattens FullHelp for the help dialog.
func (k Keymap) Legend() []key.Binding {
	var out []key.Binding
	for _, col := range k.FullHelp() {
		out = append(out, col...)
	}
	return out
}
