package main

import "fmt"

type Command int

const (
	CmdNone Command = iota
	CmdLine
	CmdZoomWindow
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdLine
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdLine:
		return "[COMMAND]"
	case CmdZoomWindow:
		return "[WINDOW]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdLine:
		return ":"
	default:
		return ""
	}
}

func (m *model) idleCommandHintsLine() string {
	return ":zoom A B   :goto H   :reset"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ui.command.cmd)
	prompt := m.commandPrompt(m.ui.command.cmd)
	return badge + " " + prompt + m.ui.command.buf
}

func (m *model) commandRightContext() string {
	d := m.data.ctrl.State().TimeDomain
	return fmt.Sprintf("%s–%s h", formatHour(d[0]), formatHour(d[1]))
}
